package main

import (
	"fmt"

	"github.com/jcorbin/texmark/internal/texui"
	"github.com/jcorbin/texmark/internal/texutil"
)

func (u *ui) serveMarks(req *texui.Request, resp *texui.Response) error {
	paths, err := u.fileArgs(req)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := u.marksFile(resp, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func (u *ui) marksFile(resp *texui.Response, path string) error {
	state, err := tokenizeFile(path)
	if err != nil {
		return err
	}

	w := texutil.PrefixWriter(path+": ", resp)
	defer w.Close()

	for _, m := range state.Marks() {
		fmt.Fprintf(w, "%v from=%v to=%v contentFrom=%v contentTo=%v parent=%d",
			m.Kind, m.From, m.To, m.ContentFrom, m.ContentTo, m.ParentID)
		if m.Checked.Number > 0 {
			fmt.Fprintf(w, " number=%d", m.Checked.Number)
		}
		fmt.Fprintln(w)
	}
	return nil
}
