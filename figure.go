package texmark

// stepFigureContent implements the body tokenizer for the figure
// environment: \caption and \includegraphics are recognized here (they are
// otherwise ordinary, un-marked commands outside a figure); everything
// else falls through to text.
func stepFigureContent(stream *Stream, st *State) (Style, bool) {
	if style, ok := tryCommand([]commandDescriptor{captionCommand}, stream, st); ok {
		return style, ok
	}
	if style, ok := tryOpenIncludegraphics(stream, st); ok {
		return style, ok
	}
	return stepText(stream, st)
}

func tryOpenIncludegraphics(stream *Stream, st *State) (Style, bool) {
	d := includegraphicsCommand
	if _, ok := stream.MatchRegexp(d.lookahead, false); !ok {
		return NoStyle, false
	}
	from := curPos(stream, st)
	stream.MatchRegexp(d.match, true)
	pushArgFrames(st, d, from)
	return Tag, true
}
