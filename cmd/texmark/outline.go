package main

import (
	"fmt"
	"io"

	"github.com/google/renameio"

	"github.com/jcorbin/texmark"
	"github.com/jcorbin/texmark/internal/texui"
)

func (u *ui) serveOutline(req *texui.Request, resp *texui.Response) error {
	paths, err := u.fileArgs(req)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := u.outlineFile(resp, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// outlineFile tokenizes path and atomically writes path+".outline" with one
// indented line per structural mark, mirroring how the teacher's poc command
// replaces its stream file: write the whole rendering to a temporary file,
// then swap it into place via renameio so a reader never observes a
// half-written file.
func (u *ui) outlineFile(resp *texui.Response, path string) (rerr error) {
	state, err := tokenizeFile(path)
	if err != nil {
		return err
	}

	outPath := path + ".outline"
	pf, err := renameio.TempFile("", outPath)
	if err != nil {
		return err
	}
	defer func() {
		if rerr == nil {
			rerr = pf.CloseAtomicallyReplace()
		}
		if cerr := pf.Cleanup(); rerr == nil {
			rerr = cerr
		}
	}()

	writeOutline(pf, state.Marks())
	fmt.Fprintf(resp, "%s: wrote %s\n", path, outPath)
	return nil
}

// writeOutline renders marks as a nested outline. Marks close
// child-before-parent, so a mark's ancestors are not yet known when it is
// visited; depthOf resolves each mark's nesting level via its ParentID
// chain, memoizing as it goes.
func writeOutline(w io.Writer, marks []texmark.Mark) {
	byID := make(map[int]texmark.Mark, len(marks))
	for _, m := range marks {
		byID[m.ID] = m
	}

	depths := make(map[int]int, len(marks))
	var depthOf func(id int) int
	depthOf = func(id int) int {
		if id == 0 {
			return 0
		}
		if d, ok := depths[id]; ok {
			return d
		}
		m, ok := byID[id]
		if !ok {
			return 0
		}
		d := depthOf(m.ParentID) + 1
		depths[id] = d
		return d
	}

	for _, m := range marks {
		d := depthOf(m.ID)
		for i := 0; i < d; i++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintf(w, "%v", m.Kind)
		if m.Checked.Number > 0 {
			fmt.Fprintf(w, " #%d", m.Checked.Number)
		}
		fmt.Fprintf(w, " (lines %d-%d)\n", m.Checked.FromLine+1, m.Checked.ToLine+1)
	}
}
