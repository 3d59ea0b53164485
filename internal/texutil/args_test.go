package texutil_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/jcorbin/texmark/internal/texutil"
)

func TestQuotedArgs(t *testing.T) {
	assert.Equal(t, `hello "john doe"`, string(QuotedArgs([]string{"hello", "john doe"})))
}

func TestScanArgs(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader(`tokenize "my paper.tex" -debug`))
	sc.Split(ScanArgs)
	var got []string
	for sc.Scan() {
		got = append(got, UnquoteArg(sc.Text()))
	}
	assert.NoError(t, sc.Err())
	assert.Equal(t, []string{"tokenize", "my paper.tex", "-debug"}, got)
}
