package tcsamio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerTokensAndComments(t *testing.T) {
	in := strings.Join([]string{
		"# leading comment line",
		"ALPHA  12\t# trailing comment",
		"",
		"  3.5 BETA# comment glued to token",
		"GAMMA",
	}, "\n")
	sc := NewScanner(strings.NewReader(in), "test")

	tok, err := sc.Token()
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", tok)

	n, err := sc.Int()
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	f, err := sc.Float()
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	toks, err := sc.Strings(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"BETA", "GAMMA"}, toks)

	_, err = sc.Token()
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestScannerLineNumbers(t *testing.T) {
	sc := NewScanner(strings.NewReader("a\nb\nc oops\n"), "f.txt")
	for i := 0; i < 3; i++ {
		_, err := sc.Token()
		require.NoError(t, err)
	}
	_, err := sc.Int()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "f.txt:3")
	assert.Contains(t, err.Error(), `"oops"`)
}

func TestScannerKeyword(t *testing.T) {
	sc := NewScanner(strings.NewReader("EFFORT_DATA CATCH_DATA"), "test")
	require.NoError(t, sc.Keyword("EFFORT_DATA"))
	err := sc.Keyword("EFFORT_DATA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"CATCH_DATA"`)
}

func TestScannerBoolOnOff(t *testing.T) {
	sc := NewScanner(strings.NewReader("TRUE false ON off MAYBE"), "test")
	b, err := sc.Bool()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = sc.Bool()
	require.NoError(t, err)
	assert.False(t, b)
	b, err = sc.OnOff()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = sc.OnOff()
	require.NoError(t, err)
	assert.False(t, b)
	_, err = sc.Bool()
	assert.Error(t, err)
}

func TestWriterScansBack(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Comment("header")
	w.Line("NAME", "the name")
	w.Line(7, "a count")
	w.Values(1, "[1:3]")
	w.Line(FormatBool(true), "")
	w.Line(FormatOnOff(false), "flag")
	w.Line(FormatFloat(0.25), "frac")
	require.NoError(t, w.Err())

	sc := NewScanner(&buf, "roundtrip")
	tok, err := sc.Token()
	require.NoError(t, err)
	assert.Equal(t, "NAME", tok)
	n, err := sc.Int()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	id, err := sc.Int()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	tok, err = sc.Token()
	require.NoError(t, err)
	assert.Equal(t, "[1:3]", tok)
	b, err := sc.Bool()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = sc.OnOff()
	require.NoError(t, err)
	assert.False(t, b)
	f, err := sc.Float()
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)
}
