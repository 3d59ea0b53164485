/* Package texui implements a small semi-structured request/response
framework for the texmark command line tool.

A Request is built from CLI arguments: the first argument is a verb, the
remainder shell-like (optionally quoted) arguments to it. cmd/texmark's
subcommands (tokenize, marks, outline) are dispatched by scanning the verb
off the front of a Request and handling the rest themselves.
*/
package texui

import (
	"bufio"
	"bytes"
	"flag"
	"io"
	"os"
	"time"

	"github.com/jcorbin/texmark/internal/texutil"
)

// Handler is the interface implemented by command line request handlers.
type Handler interface {
	ServeUser(req *Request, resp *Response) error
}

// HandlerFunc is a functional adaptor for Handler.
type HandlerFunc func(req *Request, resp *Response) error

// ServeUser calls the receiver function pointer.
func (f HandlerFunc) ServeUser(req *Request, resp *Response) error { return f(req, resp) }

// Request represents a command line invocation being handled, providing
// error tracking, the time of request, and argument tokenization.
type Request struct {
	err  error
	now  time.Time
	body io.Reader
	cmd  *bufio.Scanner
	arg  *bufio.Scanner
}

// Response represents a response being written by a Handler.
type Response struct {
	texutil.WriteBuffer
}

// CLIRequest builds a Request from the current time and the process's CLI
// arguments (flag.Args() if flags were parsed, else os.Args[1:]).
func CLIRequest() Request {
	now := time.Now()
	args := flag.Args()
	if args == nil {
		args = os.Args[1:]
	}
	return ArgsRequest(now, args)
}

// ArgsRequest builds a Request from a given time and argument strings.
func ArgsRequest(now time.Time, args []string) Request {
	var req Request
	req.now = now
	req.body = bytes.NewReader(texutil.QuotedArgs(args))
	return req
}

// Serve runs the given handler with the receiver request and a new
// Response writing to w. Returns any handler, response, or request error
// (in that order of precedence).
func (req Request) Serve(w io.Writer, handler Handler) (rerr error) {
	if err := req.err; err != nil {
		return err
	}
	defer func() {
		if rerr == nil {
			rerr = req.err
		}
	}()
	var resp Response
	resp.To = w
	defer func() {
		if ferr := resp.Flush(); rerr == nil {
			rerr = ferr
		}
	}()
	return handler.ServeUser(&req, &resp)
}

// Err returns any request scan error encountered.
func (req Request) Err() error { return req.err }

// Now returns the time the request was submitted.
func (req Request) Now() time.Time { return req.now }

// Scan scans the next request line from the body, preparing ScanArg state.
func (req *Request) Scan() bool {
	if req.err == nil {
		if req.cmd == nil {
			if req.cmd == nil && req.body != nil {
				req.cmd = bufio.NewScanner(req.body)
				req.cmd.Split(bufio.ScanLines)
			}
		}
		req.arg = nil
		if req.cmd.Scan() {
			return true
		}
		req.err = req.cmd.Err()
	}
	return false
}

// ScanArg scans the next argument within the current line scanned from
// body.
func (req *Request) ScanArg() bool {
	if req.err == nil {
		if req.arg == nil {
			if req.cmd == nil && !req.Scan() {
				return false
			}
			req.arg = bufio.NewScanner(bytes.NewReader(req.cmd.Bytes()))
			req.arg.Split(texutil.ScanArgs)
		}
		if req.arg.Scan() {
			return true
		}
		req.err = req.arg.Err()
	}
	return false
}

// Command returns the current line scanned from body.
func (req *Request) Command() string {
	if req.cmd == nil {
		return ""
	}
	return req.cmd.Text()
}

// Arg returns the current argument.
func (req *Request) Arg() string {
	if req.arg == nil {
		return ""
	}
	return texutil.UnquoteArg(req.arg.Text())
}
