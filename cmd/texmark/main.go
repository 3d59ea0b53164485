// Command texmark tokenizes and structurally marks LaTeX source files
// against the texmark package, as a demonstration and smoke-test harness
// for the core library.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jcorbin/texmark/internal/texui"
	"github.com/jcorbin/texmark/internal/texutil"
)

func main() {
	var u ui

	_, defaultFile, err := texutil.FindWDFile("paper.tex")
	if err != nil {
		defaultFile = ""
	}

	flag.BoolVar(&u.debug, "debug", false, "print each style token alongside tokenize output")
	flag.StringVar(&u.defaultFile, "file", defaultFile, "path to a .tex file to use when a subcommand is given no file arguments")
	flag.Parse()

	out := &texutil.ErrWriter{Writer: os.Stdout}
	err = texui.CLIRequest().Serve(out, &u)
	if err == nil {
		err = out.Err
	}
	if err != nil {
		log.Fatalln(err)
	}
}

type ui struct {
	debug       bool
	defaultFile string
}

func (u *ui) ServeUser(req *texui.Request, resp *texui.Response) error {
	if !req.ScanArg() {
		fmt.Fprintf(resp, "usage: texmark <tokenize|marks|outline> [FILE...]\n")
		return nil
	}
	switch verb := req.Arg(); verb {
	case "tokenize":
		return u.serveTokenize(req, resp)
	case "marks":
		return u.serveMarks(req, resp)
	case "outline":
		return u.serveOutline(req, resp)
	default:
		return fmt.Errorf("unrecognized command %q", verb)
	}
}

// fileArgs collects the remaining file path arguments from req, falling
// back to u.defaultFile (discovered via texutil.FindWDFile, or overridden
// by -file) when none are given, the same way cmd/poc defaults to a
// discovered stream.md when invoked with no explicit file.
func (u *ui) fileArgs(req *texui.Request) ([]string, error) {
	var paths []string
	for req.ScanArg() {
		paths = append(paths, req.Arg())
	}
	if len(paths) == 0 {
		if u.defaultFile == "" {
			return nil, fmt.Errorf("no file arguments given, and no default .tex file found")
		}
		paths = []string{u.defaultFile}
	}
	return paths, nil
}
