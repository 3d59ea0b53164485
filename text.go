package texmark

import "unicode"

// stepText implements the text sub-tokenizer: ordinary prose plus every
// construct that can appear inside it. It is also the fallback every other
// sub-tokenizer delegates to once it has nothing more specific to say.
func stepText(stream *Stream, st *State) (Style, bool) {
	if style, ok := tryCommand(textStyleCommands, stream, st); ok {
		return style, ok
	}
	if style, ok := openMathDelim(stream, st, `\[`, `\]`, KindOuterDisplayMath, nil); ok {
		return style, ok
	}
	if style, ok := openMathDelim(stream, st, `\(`, `\)`, KindInlineMath, nil); ok {
		return style, ok
	}
	if style, ok := tryCommand([]commandDescriptor{refCommand}, stream, st); ok {
		return style, ok
	}
	if style, ok := tryCommand(citationCommands, stream, st); ok {
		return style, ok
	}
	if style, ok := tryCommand(textLateCommands, stream, st); ok {
		return style, ok
	}
	if style, ok := tryOpenAnyOf(stream, st, figureEnvNames); ok {
		return style, ok
	}
	if style, ok := tryOpenAnyOf(stream, st, listEnvOrder); ok {
		return style, ok
	}
	if style, ok := tryOpenAnyOf(stream, st, mathEnvNames); ok {
		return style, ok
	}
	if style, ok := tryOpenVerb(stream, st); ok {
		return style, ok
	}
	if style, ok := tryOpenAnyOf(stream, st, ignoredAndCommentEnvNames); ok {
		return style, ok
	}
	if style, ok := tryOpenEnv(stream, st, "tikzpicture"); ok {
		return style, ok
	}
	if style, ok := tryGenericBeginEnd(stream, st); ok {
		return style, ok
	}
	if _, ok := stream.MatchRegexp(genericCommandRe, true); ok {
		return Tag, true
	}
	if r, ok := stream.Peek(); ok && r == '{' {
		return pushBraceGroup(stream, st)
	}
	if style, ok := openMathDelim(stream, st, `$$`, `$$`, KindDisplayMath, nil); ok {
		return style, ok
	}
	if style, ok := openMathDelim(stream, st, `$`, `$`, KindInlineMath, []string{`$$`}); ok {
		return style, ok
	}
	return otherFallback(stream, st)
}

// openMathDelim attempts to open a math delimiter pair at the cursor.
func openMathDelim(stream *Stream, st *State, open, close string, kind MarkKind, abandon []string) (Style, bool) {
	if !stream.MatchString(open, false) {
		return NoStyle, false
	}
	st.push(frame{
		kind: frameScopedArg, openLit: open, closeLit: close,
		abandonLits: abandon, delegate: targetMath, style: Keyword,
		hasMark: true, markKind: kind,
	})
	return stepFrame(stream, st)
}

// tryOpenVerb matches \verb*?X: a non-star \verb requires a non-letter
// delimiter (so "\verbaXa" is a generic command, not a verb form), while a
// starred \verb* accepts any delimiter.
func tryOpenVerb(stream *Stream, st *State) (Style, bool) {
	m, ok := stream.MatchRegexp(verbRe, false)
	if !ok {
		return NoStyle, false
	}
	star := len(m) > 0 && m[len(m)-1] == '*'
	delim, ok := stream.PeekAt(len([]rune(m)))
	if !ok {
		return NoStyle, false
	}
	if !star && unicode.IsLetter(delim) {
		return NoStyle, false
	}
	stream.MatchString(m, true)
	stream.Next()
	st.push(frame{kind: frameVerb, verbDelim: delim, verbStar: star})
	return Tag, true
}

// otherFallback is the terminal case: brackets are their own Bracket
// tokens, everything else is swept into a plain run.
func otherFallback(stream *Stream, st *State) (Style, bool) {
	r, ok := stream.Peek()
	if !ok {
		return NoStyle, false
	}
	switch r {
	case '{', '}', '[', ']':
		stream.Next()
		return Bracket, true
	}
	stream.Next()
	stream.EatWhile(func(r rune) bool {
		switch r {
		case '{', '}', '[', ']', '\\', '$':
			return false
		default:
			return true
		}
	})
	return NoStyle, true
}
