package texmark

// stepVerbatimChars implements the body tokenizer shared by the
// verbatim-family environments and the comment environment: runs of
// non-backslash characters batch into a single token of the given style; a
// lone backslash (which has no escaping meaning here) is its own token.
func stepVerbatimChars(stream *Stream, st *State, style Style) (Style, bool) {
	if r, ok := stream.Peek(); ok && r == '\\' {
		stream.Next()
		return style, true
	}
	n := stream.EatWhile(func(r rune) bool { return r != '\\' })
	if n == 0 {
		return NoStyle, false
	}
	return style, true
}
