package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jcorbin/texmark"
	"github.com/jcorbin/texmark/internal/texui"
	"github.com/jcorbin/texmark/internal/texutil"
)

func (u *ui) serveTokenize(req *texui.Request, resp *texui.Response) error {
	paths, err := u.fileArgs(req)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := u.tokenizeFile(resp, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// tokenizeFile drives texmark across every line of the named file and
// returns the final State, for callers (marks, outline) that only want the
// accumulated marks rather than a style trace.
func tokenizeFile(path string) (texmark.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return texmark.State{}, err
	}
	defer f.Close()

	state := texmark.StartState()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			texmark.BlankLine(&state)
			continue
		}
		stream := texmark.NewStream(line)
		for !stream.AtEndOfLine() {
			texmark.Token(stream, &state)
		}
	}
	return state, sc.Err()
}

// tokenizeFile writes a per-line style trace to resp (prefixed with path)
// when u.debug is set; it always drives the tokenizer to completion.
func (u *ui) tokenizeFile(resp *texui.Response, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := texutil.PrefixWriter(path+": ", resp)
	defer w.Close()

	state := texmark.StartState()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			texmark.BlankLine(&state)
			continue
		}

		var styles []texmark.Style
		stream := texmark.NewStream(line)
		for !stream.AtEndOfLine() {
			styles = append(styles, texmark.Token(stream, &state))
		}

		if u.debug {
			fmt.Fprint(w, "[")
			for i, s := range styles {
				if i > 0 {
					fmt.Fprint(w, " ")
				}
				fmt.Fprintf(w, "%v", s)
			}
			fmt.Fprintln(w, "]")
		}
	}
	return sc.Err()
}
