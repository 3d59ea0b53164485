package texmark

// stepTop implements the top-level sub-tokenizer (the bottom frame, always
// present). It tries top-level-only constructs before falling through to
// text.
func stepTop(stream *Stream, st *State) (Style, bool) {
	if style, ok := tryCommand(titlingCommands, stream, st); ok {
		return style, ok
	}
	if _, ok := stream.MatchRegexp(maketitleRe, false); ok {
		from := curPos(stream, st)
		stream.MatchString(`\maketitle`, true)
		to := curPos(stream, st)
		st.openMarkAt(KindMaketitle, from, to)
		st.closeMark(to, to)
		return Tag, true
	}
	if style, ok := tryCommand(sectioningCommands, stream, st); ok {
		return style, ok
	}
	if style, ok := tryOpenEnv(stream, st, "abstract"); ok {
		return style, ok
	}
	if _, ok := stream.MatchRegexp(endDocumentLAHRe, false); ok {
		from := curPos(stream, st)
		st.push(frame{
			kind: frameSeq, seq: endSeqTokens("document"),
			seqAction: seqOpenEndDocument, seqFrom: from,
		})
		return stepFrame(stream, st)
	}
	return stepText(stream, st)
}
