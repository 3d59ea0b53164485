package texmark_test

import (
	"fmt"

	"github.com/jcorbin/texmark"
)

// run tokenizes lines (blank strings trigger BlankLine) and returns the
// style sequence per line alongside the final state.
func run(lines ...string) ([][]texmark.Style, texmark.State) {
	state := texmark.StartState()
	styles := make([][]texmark.Style, len(lines))
	for i, line := range lines {
		if line == "" {
			texmark.BlankLine(&state)
			continue
		}
		stream := texmark.NewStream(line)
		for !stream.AtEndOfLine() {
			styles[i] = append(styles[i], texmark.Token(stream, &state))
		}
	}
	return styles, state
}

func ExampleToken_title() {
	styles, state := run(`\title[Short Title]{Long Title}`)
	fmt.Println(styles[0])
	for _, m := range state.Marks() {
		fmt.Printf("%v from=%v to=%v contentFrom=%v contentTo=%v\n", m.Kind, m.From, m.To, m.ContentFrom, m.ContentTo)
	}
	// Output:
	// [tag bracket none bracket bracket none bracket]
	// title from=(0,0) to=(0,31) contentFrom=(0,20) contentTo=(0,30)
}

func ExampleToken_inlineMathAcrossLines() {
	_, state := run(`foo $x`, `+y`, `$`)
	for _, m := range state.Marks() {
		fmt.Printf("%v from=%v to=%v contentFrom=%v contentTo=%v\n", m.Kind, m.From, m.To, m.ContentFrom, m.ContentTo)
	}
	// Output:
	// inline-math from=(0,4) to=(2,1) contentFrom=(0,5) contentTo=(2,0)
}

func ExampleToken_displayMathAbandonsInline() {
	_, state := run(`foo $x bar $$x$$`)
	n := 0
	for _, m := range state.Marks() {
		if m.Kind == texmark.KindInlineMath {
			n++
		}
	}
	fmt.Println("inline-math count:", n)
	for _, m := range state.Marks() {
		fmt.Printf("%v from=%v to=%v contentFrom=%v contentTo=%v\n", m.Kind, m.From, m.To, m.ContentFrom, m.ContentTo)
	}
	// Output:
	// inline-math count: 0
	// display-math from=(0,11) to=(0,16) contentFrom=(0,13) contentTo=(0,14)
}

func ExampleToken_nestedMathInSection() {
	_, state := run(`\section{test $x$}`)
	for _, m := range state.Marks() {
		fmt.Printf("%v from=%v to=%v\n", m.Kind, m.From, m.To)
	}
	// Output:
	// inline-math from=(0,14) to=(0,17)
	// section from=(0,0) to=(0,18)
}

func ExampleToken_enumerateItemNumber() {
	_, state := run(`\begin{enumerate}`, `\item okok`, `\end{enumerate}`)
	fmt.Println("closed marks:", len(state.Marks()))
	for _, m := range state.Marks() {
		fmt.Printf("%v number=%d\n", m.Kind, m.Checked.Number)
	}
	// Output:
	// closed marks: 2
	// enumerate-item number=1
	// enumerate number=0
}

func ExampleToken_blankLineAbandonsEquation() {
	_, state := run(`\begin{equation}`, `\alpha`, ``, `\end{equation}`)
	fmt.Println("closed marks:", len(state.Marks()))
	// Output:
	// closed marks: 0
}

func ExampleToken_dollarNumber() {
	styles, _ := run(`$1024.00$`)
	fmt.Println(styles[0])
	// Output:
	// [keyword number keyword]
}

func ExampleToken_afterEndDocument() {
	styles, _ := run(`\end{document}`, `\textbf{abc}`)
	fmt.Println(styles[1])
	// Output:
	// [comment]
}
