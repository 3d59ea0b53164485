package texmark_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/texmark"
)

// tokenizeLines drives state across lines (blank strings trigger BlankLine)
// and returns the per-line style sequence.
func tokenizeLines(state *texmark.State, lines []string) [][]texmark.Style {
	out := make([][]texmark.Style, len(lines))
	for i, line := range lines {
		if line == "" {
			texmark.BlankLine(state)
			continue
		}
		stream := texmark.NewStream(line)
		for !stream.AtEndOfLine() {
			out[i] = append(out[i], texmark.Token(stream, state))
		}
	}
	return out
}

// TestRestartEquivalence covers spec.md §8's restart/resume invariant: the
// state snapshot after any prefix of lines is a valid restart state, and
// tokenizing the remaining lines from a copy of it yields the same styles
// and marks as tokenizing the whole document from scratch. It also checks
// that resuming from a copy never mutates the snapshot it was copied from,
// per state.go's copy-on-write contract.
func TestRestartEquivalence(t *testing.T) {
	docs := map[string][]string{
		"title":             {`\title[Short Title]{Long Title}`},
		"enumerate":         {`\begin{enumerate}`, `\item one`, `\item two`, `\end{enumerate}`},
		"math-across-lines": {`foo $x`, `+y`, `$`, `\section{done}`},
		"blank-abandon":     {`\begin{equation}`, `\alpha`, ``, `\end{equation}`, `\textbf{after}`},
	}
	for name, doc := range docs {
		doc := doc
		t.Run(name, func(t *testing.T) {
			full := texmark.StartState()
			wantStyles := tokenizeLines(&full, doc)

			for k := 0; k <= len(doc); k++ {
				k := k
				t.Run(fmt.Sprintf("resume-after-%d-lines", k), func(t *testing.T) {
					snapshot := texmark.StartState()
					prefixStyles := tokenizeLines(&snapshot, doc[:k])
					prefixMarks := append([]texmark.Mark{}, snapshot.Marks()...)

					resumed := snapshot // value copy: the host's restart handle
					restStyles := tokenizeLines(&resumed, doc[k:])

					gotStyles := append(append([][]texmark.Style{}, prefixStyles...), restStyles...)
					require.Equal(t, wantStyles, gotStyles, "resumed style sequence must match a from-scratch run")
					require.Equal(t, full.Marks(), resumed.Marks(), "resumed marks must match a from-scratch run")

					assert.Equal(t, prefixMarks, snapshot.Marks(), "resuming a copy must not mutate the snapshot it was copied from")
				})
			}
		})
	}
}

// TestClosedMarkInvariants covers spec.md §8's universal mark-list
// invariants: ascending `to`, no duplicate outer/inner ranges, and the
// from/contentFrom/contentTo/to ordering within each mark.
func TestClosedMarkInvariants(t *testing.T) {
	docs := map[string][]string{
		"title":       {`\title[Short Title]{Long Title}`},
		"enumerate":   {`\begin{enumerate}`, `\item one`, `\item two`, `\item three`, `\end{enumerate}`},
		"nested-math": {`\section{test $x$}`},
		"citations":   {`\cite{a} \citep{b} \citet{c}`},
	}
	type rangePair struct{ from, to texmark.Pos }
	for name, doc := range docs {
		doc := doc
		t.Run(name, func(t *testing.T) {
			state := texmark.StartState()
			tokenizeLines(&state, doc)
			marks := state.Marks()
			require.NotEmpty(t, marks)

			seenOuter := map[rangePair]bool{}
			seenInner := map[rangePair]bool{}
			for i, m := range marks {
				assert.True(t, m.From.Less(m.To), "from must be < to: %+v", m)
				assert.False(t, m.To.Less(m.ContentTo), "contentTo must be <= to: %+v", m)
				assert.False(t, m.ContentTo.Less(m.ContentFrom), "contentFrom must be <= contentTo: %+v", m)
				assert.False(t, m.ContentFrom.Less(m.From), "from must be <= contentFrom: %+v", m)

				if i > 0 {
					assert.False(t, m.To.Less(marks[i-1].To), "to must be weakly ascending")
				}

				outer := rangePair{m.From, m.To}
				assert.False(t, seenOuter[outer], "duplicate outer range: %+v", m)
				seenOuter[outer] = true

				inner := rangePair{m.ContentFrom, m.ContentTo}
				assert.False(t, seenInner[inner], "duplicate inner range: %+v", m)
				seenInner[inner] = true
			}
		})
	}
}

// TestForwardProgress covers spec.md §8's forward-progress property: every
// Token call against a non-empty stream consumes at least one character,
// bounding the number of calls needed to drain a line.
func TestForwardProgress(t *testing.T) {
	docs := map[string][]string{
		"plain-text":      {`just some ordinary prose with $x$ and \textbf{bold} in it`},
		"verb":            {`\verb|a whole lot of body text here|`},
		"generic-command": {`\someunknowncommand{with args} and more text`},
		"group-nesting":   {`{a {b {c} d} e}`},
	}
	for name, doc := range docs {
		doc := doc
		t.Run(name, func(t *testing.T) {
			state := texmark.StartState()
			for _, line := range doc {
				stream := texmark.NewStream(line)
				limit := len([]rune(line)) + 10
				for !stream.AtEndOfLine() {
					before := stream.Col()
					texmark.Token(stream, &state)
					after := stream.Col()
					assert.Greater(t, after, before, "Token must make forward progress")
					limit--
					require.GreaterOrEqual(t, limit, 0, "Token loop exceeded expected bound: no forward progress")
				}
			}
		})
	}
}

// TestItemBoundary covers spec.md §8's "\item at column 0 is recognized;
// x \item is not the item form" boundary behavior.
func TestItemBoundary(t *testing.T) {
	state := texmark.StartState()
	tokenizeLines(&state, []string{
		`\begin{itemize}`,
		`\item one`,
		`x \item not an item`,
		`\end{itemize}`,
	})
	n := 0
	for _, m := range state.Marks() {
		if m.Kind == texmark.KindItem {
			n++
		}
	}
	assert.Equal(t, 1, n, "only the start-of-line \\item should open an item mark")
}

// TestMaketitleBoundary covers spec.md §8's "\maketitle is only recognized
// if it ends the line" boundary behavior.
func TestMaketitleBoundary(t *testing.T) {
	for _, tc := range []struct {
		name string
		line string
		want int
	}{
		{"alone", `\maketitle`, 1},
		{"trailing-whitespace", `\maketitle  `, 1},
		{"followed-by-text", `\maketitle please`, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			state := texmark.StartState()
			tokenizeLines(&state, []string{tc.line})
			n := 0
			for _, m := range state.Marks() {
				if m.Kind == texmark.KindMaketitle {
					n++
				}
			}
			assert.Equal(t, tc.want, n)
		})
	}
}

// TestVerbBoundary covers spec.md §8's "\verb*?X...X accepts *; bare
// \verbaXa is a generic command (no-star requires non-letter delimiter)"
// boundary behavior.
func TestVerbBoundary(t *testing.T) {
	t.Run("pipe delimiter", func(t *testing.T) {
		state := texmark.StartState()
		styles := tokenizeLines(&state, []string{`\verb|code|`})
		assert.Equal(t, []texmark.Style{texmark.Tag, texmark.String, texmark.String}, styles[0])
	})
	t.Run("starred letter delimiter", func(t *testing.T) {
		state := texmark.StartState()
		styles := tokenizeLines(&state, []string{`\verb*aXa`})
		assert.Equal(t, []texmark.Style{texmark.Tag, texmark.String, texmark.String}, styles[0])
	})
	t.Run("bare letter delimiter is a generic command", func(t *testing.T) {
		state := texmark.StartState()
		styles := tokenizeLines(&state, []string{`\verbaXa`})
		assert.Equal(t, []texmark.Style{texmark.Tag}, styles[0])
	})
}

// TestTitlingPrefixBoundary covers spec.md §8's "commands with marked
// prefixes (\authorblockN, \titlestyle) must not match \author, \title"
// boundary behavior.
func TestTitlingPrefixBoundary(t *testing.T) {
	state := texmark.StartState()
	tokenizeLines(&state, []string{
		`\titlestyle{Foo}`,
		`\authorblockN{Bar}`,
		`\title{Real Title}`,
	})
	n := 0
	for _, m := range state.Marks() {
		if m.Kind == texmark.KindTitle {
			n++
		}
	}
	assert.Equal(t, 1, n, "only the exact \\title command should open a title mark")
}
