package texmark

// stepMath implements the math sub-tokenizer used inside all four math
// delimiter pairs and math environments.
func stepMath(stream *Stream, st *State) (Style, bool) {
	if style, ok := tryOpenVerb(stream, st); ok {
		return style, ok
	}
	if style, ok := tryGenericBeginEnd(stream, st); ok {
		return style, ok
	}
	if _, ok := stream.MatchRegexp(genericCommandRe, true); ok {
		return Tag, true
	}
	if r, ok := stream.Peek(); ok {
		switch r {
		case '^', '_', '&', '~':
			stream.Next()
			return Tag, true
		}
	}
	if _, ok := stream.MatchRegexp(numberRe, true); ok {
		return Number, true
	}
	if _, ok := stream.Next(); ok {
		return NoStyle, true
	}
	return NoStyle, false
}
