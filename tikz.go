package texmark

// stepTikz implements the tikzpicture body tokenizer: nested environments
// and commands are recognized and styled but not tracked, since texmark
// does not model TikZ's own picture grammar; everything else is consumed
// one character at a time.
func stepTikz(stream *Stream, st *State) (Style, bool) {
	if style, ok := tryGenericBeginEnd(stream, st); ok {
		return style, ok
	}
	if _, ok := stream.MatchRegexp(genericCommandRe, true); ok {
		return Tag, true
	}
	if _, ok := stream.Next(); ok {
		return NoStyle, true
	}
	return NoStyle, false
}
