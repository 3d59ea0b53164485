package texmark

// stepItemList implements the body tokenizer for itemize/enumerate: at the
// start of a line, \item opens and immediately closes an item mark that
// spans the \item token and has empty content; every item, in itemize and
// enumerate alike, is numbered among its same-kind siblings. Everything else falls
// through to text, so ordinary prose and nested constructs inside list
// items are tokenized normally.
func stepItemList(stream *Stream, st *State) (Style, bool) {
	if stream.AtStartOfLine() {
		if _, ok := stream.MatchRegexp(itemRe, false); ok {
			return openItemMark(stream, st)
		}
	}
	return stepText(stream, st)
}

func openItemMark(stream *Stream, st *State) (Style, bool) {
	envFr := st.peekTop() // the frameEnvironment running this item list
	from := curPos(stream, st)
	stream.MatchString(`\item`, true)
	if r, ok := stream.Peek(); ok && (r == ' ' || r == '\t') {
		stream.Next()
	}
	to := curPos(stream, st)

	kind := KindItem
	if envFr.env.kind == KindEnumerate {
		kind = KindEnumerateItem
	}

	number := countSiblingItems(st, envFr.envMarkID, kind) + 1

	st.openMarkAt(kind, from, to)
	st.closeMark(to, to)
	st.marks[len(st.marks)-1].Checked.Number = number
	return Tag, true
}

// countSiblingItems counts already-closed item marks of the given kind with
// the given list mark as their parent, i.e. the prior siblings of the item
// about to be opened. Equivalent to finding the most recently closed sibling
// and reading its number, since siblings are numbered consecutively from 1.
func countSiblingItems(st *State, listMarkID int, kind MarkKind) int {
	n := 0
	for _, m := range st.marks {
		if m.ParentID == listMarkID && m.Kind == kind {
			n++
		}
	}
	return n
}
