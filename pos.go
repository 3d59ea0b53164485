package texmark

import "fmt"

// Pos is a position within scanned source: a 0-based line number and a
// 0-based character (not byte) column offset into that line.
type Pos struct {
	Line int
	Col  int
}

// Format supports %v and %+v the way the teacher's scandown types do.
func (p Pos) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		fmt.Fprintf(f, "(%d,%d)", p.Line, p.Col)
	default:
		fmt.Fprintf(f, "!(ERROR invalid format verb %%%s)", string(c))
	}
}

// Less reports whether p sorts strictly before q in (line, col) order.
func (p Pos) Less(q Pos) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}
