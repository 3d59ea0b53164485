package texmark

// CheckedProperties carries the auxiliary fields consumers read off a Mark
// beyond its bare range: a duplicate of its Kind, 1-based enumeration
// Number for list items, the open-mark depth at open/close time, and the
// line span the mark covers.
type CheckedProperties struct {
	Kind           MarkKind
	Number         int
	OpenMarksCount int
	FromLine       int
	ToLine         int
}

// Mark is an immutable, closed, position-annotated region of source.
type Mark struct {
	ID   int
	Kind MarkKind

	From        Pos
	ContentFrom Pos
	ContentTo   Pos
	To          Pos

	// ParentID is the id of the innermost mark that was still open when
	// this mark was opened, or 0 if there was none (ids start at 1).
	ParentID int

	Checked CheckedProperties
}

// openMark is a mark still awaiting its close; it lives on State.openMarks.
type openMark struct {
	id          int
	kind        MarkKind
	from        Pos
	contentFrom Pos
	parentID    int
}

// OpenMark is the read-only view of an openMark exposed to callers via
// State.OpenMarks.
type OpenMark struct {
	ID          int
	Kind        MarkKind
	From        Pos
	ContentFrom Pos
	ParentID    int
}

// openMarkAt begins tracking a new open mark of the given kind, nested under
// whatever mark is currently innermost-open (if any). It returns the new
// mark's id.
func (st *State) openMarkAt(kind MarkKind, from, contentFrom Pos) int {
	st.nextID++
	id := st.nextID
	var parentID int
	if n := len(st.openMarks); n > 0 {
		parentID = st.openMarks[n-1].id
	}
	st.openMarks = append(st.openMarks[:len(st.openMarks):len(st.openMarks)], openMark{
		id:          id,
		kind:        kind,
		from:        from,
		contentFrom: contentFrom,
		parentID:    parentID,
	})
	return id
}

// abandonMark discards the innermost open mark without producing a closed
// Mark. It is a no-op if there is no open mark.
func (st *State) abandonMark() {
	if n := len(st.openMarks); n > 0 {
		st.openMarks = st.openMarks[:n-1]
	}
}

// closeMark closes the innermost open mark, recording contentTo (the start
// of the closing delimiter) and to (just past it), and appends the result
// to st.marks. Returns the closed Mark.
func (st *State) closeMark(contentTo, to Pos) Mark {
	n := len(st.openMarks)
	om := st.openMarks[n-1]
	st.openMarks = st.openMarks[:n-1]

	m := Mark{
		ID:          om.id,
		Kind:        om.kind,
		From:        om.from,
		ContentFrom: om.contentFrom,
		ContentTo:   contentTo,
		To:          to,
		ParentID:    om.parentID,
		Checked: CheckedProperties{
			Kind:           om.kind,
			OpenMarksCount: len(st.openMarks),
			FromLine:       om.from.Line,
			ToLine:         to.Line,
		},
	}
	st.marks = append(st.marks[:len(st.marks):len(st.marks)], m)
	return m
}

// innermostOpenKind returns the kind of the innermost currently open mark,
// and whether one exists.
func (st *State) innermostOpenKind() (MarkKind, bool) {
	if n := len(st.openMarks); n > 0 {
		return st.openMarks[n-1].kind, true
	}
	return noMarkKind, false
}

// innermostOpenID returns the id of the innermost currently open mark, and
// whether one exists.
func (st *State) innermostOpenID() (int, bool) {
	if n := len(st.openMarks); n > 0 {
		return st.openMarks[n-1].id, true
	}
	return 0, false
}

// Marks returns the closed marks accumulated so far, ordered by closing
// time (ascending To, per the package invariants).
func (st *State) Marks() []Mark {
	return st.marks
}

// OpenMarks returns the currently open marks, innermost last.
func (st *State) OpenMarks() []OpenMark {
	out := make([]OpenMark, len(st.openMarks))
	for i, om := range st.openMarks {
		out[i] = OpenMark{ID: om.id, Kind: om.kind, From: om.from, ContentFrom: om.contentFrom, ParentID: om.parentID}
	}
	return out
}

// MarkByID returns a closed mark by id, if any closed mark has it.
func (st *State) MarkByID(id int) (Mark, bool) {
	for _, m := range st.marks {
		if m.ID == id {
			return m, true
		}
	}
	return Mark{}, false
}
