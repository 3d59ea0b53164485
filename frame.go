package texmark

// target names a sub-tokenizer function that a container frame delegates to
// once it has nothing more specific of its own to say about the cursor.
type target int

const (
	targetNone target = iota
	targetText
	targetMath
	targetVerbatimChars
	targetCommentChars
	targetTikz
	targetItemList
	targetFigureContent
)

func dispatchTarget(t target, stream *Stream, st *State) (Style, bool) {
	switch t {
	case targetText:
		return stepText(stream, st)
	case targetMath:
		return stepMath(stream, st)
	case targetVerbatimChars:
		return stepVerbatimChars(stream, st, String)
	case targetCommentChars:
		return stepVerbatimChars(stream, st, Comment)
	case targetTikz:
		return stepTikz(stream, st)
	case targetItemList:
		return stepItemList(stream, st)
	case targetFigureContent:
		return stepFigureContent(stream, st)
	default:
		panic("texmark: dispatchTarget: no target")
	}
}

// frameKind tags the variant a frame is currently playing.
type frameKind int

const (
	frameTop frameKind = iota
	frameScopedArg
	frameEnvironment
	frameSeq
	frameVerb
	frameEndDocument
)

// seqAction names what happens once a frameSeq finishes consuming its
// literal tokens.
type seqAction int

const (
	seqNone seqAction = iota // pure pass-through styling; nothing tracked
	seqOpenEnv
	seqCloseEnv
	seqOpenEndDocument
)

// seqTok is one literal step of a frameSeq.
type seqTok struct {
	lit   string
	style Style
}

// frame is a tagged variant: exactly one of the field groups below is live,
// selected by kind. A single struct (rather than an interface per kind) is
// used so the stack is a plain []frame with no per-push heap allocation.
type frame struct {
	kind frameKind

	// frameScopedArg: a bracketed region, open literal "opened" once seen.
	// Used for command arguments (required and optional) and for the four
	// math delimiter pairs.
	opened      bool
	openLit     string
	optional    bool // if true, an absent openLit just pops (falsy), no error
	closeLit    string
	abandonLits []string
	allowBlank  bool
	delegate    target
	style       Style
	hasMark     bool
	markKind    MarkKind
	markFrom    Pos
	markFromSet bool
	markID      int

	// frameEnvironment: the body of a \begin{name}...\end{name} construct,
	// already opened (including any mark) by the frameSeq that preceded it.
	env       envDescriptor
	envName   string
	envMarkID int

	// frameSeq: remaining literal tokens of a \begin or \end sequence.
	seq          []seqTok
	seqAction    seqAction
	seqEnv       envDescriptor
	seqEnvName   string
	seqFrom      Pos // position of the sequence's first token ("\begin"/"\end")
	seqContentTo Pos // for seqCloseEnv: position just before "\end"

	// frameVerb: \verb*?DELIM ... DELIM body.
	verbDelim rune
	verbStar  bool
}

func curPos(stream *Stream, st *State) Pos {
	return Pos{Line: st.line, Col: stream.Col()}
}

// stepFrame runs the frame at the top of the stack for one call, returning
// the style to report and whether anything was consumed. A false return
// means the frame has nothing to say here; the driver pops it and retries
// the frame beneath. frameTop and frameEndDocument are handled directly by
// the driver, since they are never popped.
func stepFrame(stream *Stream, st *State) (Style, bool) {
	switch st.peekTop().kind {
	case frameScopedArg:
		return stepScopedArg(stream, st)
	case frameEnvironment:
		return stepEnvironmentBody(stream, st)
	case frameSeq:
		return stepSeq(stream, st)
	case frameVerb:
		return stepVerb(stream, st)
	default:
		panic("texmark: stepFrame: bad frame kind")
	}
}

// blanksAllowed reports whether this frame should be left untouched across
// a blank line (true), or abandoned as part of the BlankLine cascade
// (false).
func blanksAllowed(fr frame) bool {
	switch fr.kind {
	case frameScopedArg:
		return fr.allowBlank
	case frameEnvironment:
		return fr.env.allowBlankLines
	case frameVerb:
		return false
	default:
		return true
	}
}

// stepScopedArg runs a single-delimiter-pair bracketed region: a command
// argument (required or optional) or a math delimiter pair.
func stepScopedArg(stream *Stream, st *State) (Style, bool) {
	fr := st.peekTop()

	if !fr.opened {
		if !stream.MatchString(fr.openLit, true) {
			// An absent optional-argument literal just pops (falsy); a
			// missing required one should not happen, since the command
			// tables only ever push a required-arg frame once the
			// lookahead already proved its open literal follows, but is
			// handled identically rather than treated as fatal.
			return NoStyle, false
		}
		from := curPos(stream, st)
		from.Col -= len([]rune(fr.openLit))
		if fr.markFromSet {
			from = fr.markFrom
		}
		var markID int
		if fr.hasMark {
			markID = st.openMarkAt(fr.markKind, from, curPos(stream, st))
		}
		st.mutateTop(func(f *frame) {
			f.opened = true
			f.markID = markID
		})
		return fr.style, true
	}

	for _, lit := range fr.abandonLits {
		if stream.MatchString(lit, false) {
			if fr.hasMark {
				st.abandonMark()
			}
			return NoStyle, false
		}
	}

	if stream.MatchString(fr.closeLit, true) {
		to := curPos(stream, st)
		contentTo := to
		contentTo.Col -= len([]rune(fr.closeLit))
		if fr.hasMark {
			st.closeMark(contentTo, to)
		}
		st.pop()
		return fr.style, true
	}

	return dispatchTarget(fr.delegate, stream, st)
}

// stepSeq consumes one literal token of a \begin/\end sequence per call.
func stepSeq(stream *Stream, st *State) (Style, bool) {
	fr := st.peekTop()
	tok := fr.seq[0]
	if tok.lit == "{" {
		// The \begin/\end lookaheads allow whitespace before the brace.
		stream.EatWhile(func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\f' || r == '\r' || r == '\n'
		})
	}
	if !stream.MatchString(tok.lit, true) {
		// Lookahead guaranteed this matches; defensively bail rather than
		// spin if it somehow doesn't.
		return NoStyle, false
	}
	remaining := fr.seq[1:]
	if len(remaining) > 0 {
		st.mutateTop(func(f *frame) { f.seq = remaining })
		return tok.style, true
	}

	switch fr.seqAction {
	case seqNone:
		st.pop()
	case seqOpenEnv:
		var id int
		if fr.seqEnv.hasMark {
			id = st.openMarkAt(fr.seqEnv.kind, fr.seqFrom, curPos(stream, st))
		}
		st.replaceTop(frame{
			kind:      frameEnvironment,
			env:       fr.seqEnv,
			envName:   fr.seqEnvName,
			envMarkID: id,
		})
	case seqCloseEnv:
		if fr.seqEnv.hasMark {
			st.closeMark(fr.seqContentTo, curPos(stream, st))
		}
		st.pop()
	case seqOpenEndDocument:
		st.replaceTop(frame{kind: frameEndDocument})
	}
	return tok.style, true
}

// stepEnvironmentBody runs the body of an open environment: the \end
// lookahead, then delegation to the environment's content tokenizer.
func stepEnvironmentBody(stream *Stream, st *State) (Style, bool) {
	fr := st.peekTop()
	if name, ok := matchEndLookahead(stream, fr.envName); ok {
		contentTo := curPos(stream, st)
		st.replaceTop(frame{
			kind:         frameSeq,
			seq:          endSeqTokens(name),
			seqAction:    seqCloseEnv,
			seqEnv:       fr.env,
			seqContentTo: contentTo,
		})
		return stepSeq(stream, st)
	}
	return dispatchTarget(fr.env.target, stream, st)
}

// stepVerb runs a \verb*?DELIM...DELIM body: a lone String-styled token per
// call, ending (without consuming) when DELIM is next.
func stepVerb(stream *Stream, st *State) (Style, bool) {
	fr := st.peekTop()
	if r, ok := stream.Peek(); ok && r == fr.verbDelim {
		stream.Next()
		st.pop()
		return String, true
	}
	if stream.AtEndOfLine() {
		// Unreachable under the documented usage (the host stops calling
		// Token once AtEndOfLine), kept defensive. If DELIM is never found
		// on this line, the frame is simply left on the stack and resumes
		// against the next line's stream as more \verb body.
		return NoStyle, false
	}
	stream.EatWhile(func(r rune) bool { return r != fr.verbDelim })
	return String, true
}

// stepEndDocument is the terminal sub-tokenizer pushed after \end{document}:
// everything from here to the end of the input is Comment.
func stepEndDocument(stream *Stream, st *State) (Style, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, false
	}
	stream.SkipToEnd()
	return Comment, true
}

// matchEndLookahead reports whether the cursor sees \end{name} (consuming
// nothing), requiring the name to match the currently open environment.
func matchEndLookahead(stream *Stream, envName string) (string, bool) {
	if _, ok := stream.MatchRegexp(endLookaheadRe(envName), false); !ok {
		return "", false
	}
	return envName, true
}

func beginSeqTokens(name string) []seqTok {
	return []seqTok{
		{lit: `\begin`, style: Keyword},
		{lit: "{", style: Bracket},
		{lit: name, style: NoStyle},
		{lit: "}", style: Bracket},
	}
}

func endSeqTokens(name string) []seqTok {
	return []seqTok{
		{lit: `\end`, style: Keyword},
		{lit: "{", style: Bracket},
		{lit: name, style: NoStyle},
		{lit: "}", style: Bracket},
	}
}
