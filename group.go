package texmark

// pushArgFrames pushes the scoped-arg frame(s) for a recognized command,
// given the position of its name's first backslash, per its argShape.
func pushArgFrames(st *State, desc commandDescriptor, from Pos) {
	hasMark := desc.kind != noMarkKind
	switch desc.shape {
	case shapeSimple:
		st.push(frame{
			kind: frameScopedArg, openLit: "{", closeLit: "}",
			delegate: targetText, style: Bracket,
			hasMark: hasMark, markKind: desc.kind, markFrom: from, markFromSet: true,
		})
	case shapeTitling:
		st.push(frame{
			kind: frameScopedArg, openLit: "{", closeLit: "}",
			delegate: targetText, style: Bracket,
			hasMark: hasMark, markKind: desc.kind, markFrom: from, markFromSet: true,
		})
		st.push(frame{
			kind: frameScopedArg, openLit: "[", optional: true, closeLit: "]",
			delegate: targetText, style: Bracket,
		})
	case shapeGraphics:
		st.push(frame{
			kind: frameScopedArg, openLit: "{", closeLit: "}",
			delegate: targetText, style: Bracket,
			hasMark: true, markKind: KindIncludegraphics,
		})
		st.push(frame{
			kind: frameScopedArg, openLit: "[", optional: true, closeLit: "]",
			delegate: targetText, style: Bracket,
			hasMark: true, markKind: KindIncludegraphicsOptional,
		})
	}
}

// tryCommand tries each descriptor's lookahead in order; on the first
// match it consumes the command name (and any trailing whitespace) and
// pushes its argument frame(s).
func tryCommand(cmds []commandDescriptor, stream *Stream, st *State) (Style, bool) {
	for i := range cmds {
		d := &cmds[i]
		if _, ok := stream.MatchRegexp(d.lookahead, false); !ok {
			continue
		}
		from := curPos(stream, st)
		stream.MatchRegexp(d.match, true)
		pushArgFrames(st, *d, from)
		return Tag, true
	}
	return NoStyle, false
}

// pushBraceGroup opens an unmarked "{...}" that recurses into text; the
// opening brace has already been matched but not consumed by the caller.
func pushBraceGroup(stream *Stream, st *State) (Style, bool) {
	stream.Next() // consume "{"
	st.push(frame{kind: frameScopedArg, opened: true, closeLit: "}", delegate: targetText, style: Bracket})
	return Bracket, true
}
