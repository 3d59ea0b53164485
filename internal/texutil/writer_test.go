package texutil_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/texmark/internal/texutil"
)

func TestPrefixer(t *testing.T) {
	var out bytes.Buffer
	p := PrefixWriter("paper.tex: ", &out)
	_, err := p.WriteString("line one\nline two\n")
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.Equal(t, "paper.tex: line one\npaper.tex: line two\n", out.String())
}

func TestErrWriter(t *testing.T) {
	var out bytes.Buffer
	ew := &ErrWriter{Writer: &out}
	n, err := ew.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", out.String())
}
