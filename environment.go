package texmark

// tryOpenEnv attempts to open a specific, already-known environment by
// name: if \begin{name} is at the cursor (honoring the environment's
// single-line-begin requirement, if any), it pushes the begin-sequence and
// runs its first step immediately.
func tryOpenEnv(stream *Stream, st *State, name string) (Style, bool) {
	desc, ok := envTable[name]
	if !ok {
		return NoStyle, false
	}
	re := beginLookaheadFor(name, desc.matchOnSingleLine)
	if _, ok := stream.MatchRegexp(re, false); !ok {
		return NoStyle, false
	}
	from := curPos(stream, st)
	st.push(frame{
		kind:       frameSeq,
		seq:        beginSeqTokens(name),
		seqAction:  seqOpenEnv,
		seqEnv:     desc,
		seqEnvName: name,
		seqFrom:    from,
	})
	return stepFrame(stream, st)
}

// tryOpenAnyOf attempts each name in order, returning on the first that
// opens.
func tryOpenAnyOf(stream *Stream, st *State, names []string) (Style, bool) {
	for _, name := range names {
		if style, ok := tryOpenEnv(stream, st, name); ok {
			return style, ok
		}
	}
	return NoStyle, false
}

// tryGenericBeginEnd matches any \begin{name} or \end{name} not otherwise
// claimed (an unrecognized environment, or a known one whose gate, such as
// single-line-begin, wasn't satisfied) and styles it without tracking any
// structure: the name's body is tokenized by whatever frame was already
// running.
func tryGenericBeginEnd(stream *Stream, st *State) (Style, bool) {
	if m, ok := stream.MatchRegexp(beginLookahead, false); ok {
		name := beginLookahead.FindStringSubmatch(m)[1]
		st.push(frame{kind: frameSeq, seq: beginSeqTokens(name), seqAction: seqNone})
		return stepFrame(stream, st)
	}
	if m, ok := stream.MatchRegexp(endLookaheadAny, false); ok {
		name := endLookaheadAny.FindStringSubmatch(m)[1]
		st.push(frame{kind: frameSeq, seq: endSeqTokens(name), seqAction: seqNone})
		return stepFrame(stream, st)
	}
	return NoStyle, false
}
