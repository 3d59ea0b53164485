package texmark

// StartState returns the initial state for a fresh document: an empty
// mark history and a single bottom frame implementing the top-level
// sub-tokenizer, which is never popped.
func StartState() State {
	return State{
		line:  -1,
		stack: []frame{{kind: frameTop}},
	}
}

// Token drives one style token out of stream, mutating state to reflect
// whatever was consumed. The host calls it repeatedly against the same
// stream until stream.AtEndOfLine(), then builds a new Stream for the next
// line and continues calling Token with the same state.
func Token(stream *Stream, st *State) Style {
	if stream.AtStartOfLine() {
		st.line++
		if _, ok := stream.MatchRegexp(lineCommentRe, true); ok {
			stream.SkipToEnd()
			return Comment
		}
	}

	for {
		switch st.peekTop().kind {
		case frameTop:
			if style, ok := stepTop(stream, st); ok {
				return style
			}
		case frameEndDocument:
			if style, ok := stepEndDocument(stream, st); ok {
				return style
			}
		default:
			if style, ok := stepFrame(stream, st); ok {
				return style
			}
			st.pop()
			continue
		}
		// The two terminal frame kinds above are never popped; reaching
		// here means one of them returned falsy, which under the stated
		// contract (Token is only called while the stream has remaining
		// input) should not happen. Make defensive forward progress
		// rather than loop forever.
		if stream.AtEndOfLine() {
			return NoStyle
		}
		stream.Next()
		return NoStyle
	}
}

// BlankLine is called by the host instead of Token for a line that is
// empty or all whitespace. It cascades down the frame stack, abandoning
// every frame that does not tolerate blank lines, and stops at the first
// one that does (or at the bottom).
func BlankLine(st *State) {
	st.line++
	for st.depth() > 1 {
		fr := st.peekTop()
		if blanksAllowed(fr) {
			return
		}
		switch fr.kind {
		case frameScopedArg:
			if fr.hasMark && fr.opened {
				st.abandonMark()
			}
		case frameEnvironment:
			if fr.env.hasMark {
				st.abandonMark()
			}
		case frameSeq:
			// mid-sequence: nothing has an open mark of its own yet,
			// beyond what an enclosing frame might hold.
		}
		st.pop()
	}
}
