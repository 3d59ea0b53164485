package texmark

import "regexp"

// Stream is a cursor over a single line of source. It has no notion of any
// other line; cross-line behavior lives entirely in State.
type Stream struct {
	runes []rune
	pos   int
	start int
}

// NewStream wraps a single line of text (without its terminating newline,
// if any) for tokenizing.
func NewStream(line string) *Stream {
	return &Stream{runes: []rune(line)}
}

// AtStartOfLine reports whether the cursor has not yet consumed anything.
func (s *Stream) AtStartOfLine() bool { return s.pos == 0 }

// AtEndOfLine reports whether the cursor has reached the end of the line.
func (s *Stream) AtEndOfLine() bool { return s.pos >= len(s.runes) }

// Peek returns the next character without consuming it, or (0, false) at
// end of line.
func (s *Stream) Peek() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.pos], true
}

// PeekAt returns the character n positions ahead of the cursor (0 is the
// same as Peek), or (0, false) if that position is past the end of line.
func (s *Stream) PeekAt(n int) (rune, bool) {
	i := s.pos + n
	if i < 0 || i >= len(s.runes) {
		return 0, false
	}
	return s.runes[i], true
}

// Next consumes and returns the next character, or (0, false) at end of
// line (in which case nothing is consumed).
func (s *Stream) Next() (rune, bool) {
	r, ok := s.Peek()
	if ok {
		s.pos++
	}
	return r, ok
}

// Eat consumes the next character if it equals r.
func (s *Stream) Eat(r rune) bool {
	if c, ok := s.Peek(); ok && c == r {
		s.pos++
		return true
	}
	return false
}

// EatWhile consumes a run of characters matching pred, returning how many
// were consumed.
func (s *Stream) EatWhile(pred func(rune) bool) int {
	n := 0
	for {
		r, ok := s.Peek()
		if !ok || !pred(r) {
			break
		}
		s.pos++
		n++
	}
	return n
}

// MatchString matches a literal anchored at the cursor. If consume is true
// and it matches, the cursor advances past it.
func (s *Stream) MatchString(lit string, consume bool) bool {
	rs := []rune(lit)
	if s.pos+len(rs) > len(s.runes) {
		return false
	}
	for i, r := range rs {
		if s.runes[s.pos+i] != r {
			return false
		}
	}
	if consume {
		s.pos += len(rs)
	}
	return true
}

// MatchRegexp matches re anchored at the cursor (re need not itself start
// with "^"; the match must simply begin at index 0 of the remaining line).
// If consume is true and it matches, the cursor advances past the match.
// Returns the matched text and true on success.
func (s *Stream) MatchRegexp(re *regexp.Regexp, consume bool) (string, bool) {
	rest := string(s.runes[s.pos:])
	loc := re.FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	match := rest[:loc[1]]
	if consume {
		s.pos += len([]rune(match))
	}
	return match, true
}

// SkipToEnd advances the cursor to the end of the line.
func (s *Stream) SkipToEnd() {
	s.pos = len(s.runes)
}

// SkipTo advances the cursor up to (but not past) the next occurrence of
// ch. It fails, leaving the cursor untouched, if ch does not occur again
// on this line.
func (s *Stream) SkipTo(ch rune) bool {
	for i := s.pos; i < len(s.runes); i++ {
		if s.runes[i] == ch {
			s.pos = i
			return true
		}
	}
	return false
}

// MarkStart records the cursor position as the start of the token about to
// be matched; Current then reports the text consumed since this call.
func (s *Stream) MarkStart() { s.start = s.pos }

// Start returns the column recorded by the last MarkStart call.
func (s *Stream) Start() int { return s.start }

// Col returns the cursor's current column.
func (s *Stream) Col() int { return s.pos }

// Current returns the text consumed since the last MarkStart call.
func (s *Stream) Current() string { return string(s.runes[s.start:s.pos]) }

// isSpace classifies LaTeX-relevant whitespace, explicitly including
// non-breaking space per the package's Unicode design note.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', ' ':
		return true
	default:
		return false
	}
}

// blank reports whether the stream, from its current position, contains
// only whitespace to the end of the line.
func (s *Stream) blank() bool {
	for i := s.pos; i < len(s.runes); i++ {
		if !isSpace(s.runes[i]) {
			return false
		}
	}
	return true
}
