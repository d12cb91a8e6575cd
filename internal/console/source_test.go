package console_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/termio/internal/console"
)

func TestStdSourceReadLine(t *testing.T) {
	var out bytes.Buffer
	src := console.NewStdSource(strings.NewReader("first\nsecond\r\n\n  padded  \nlast"), &out)

	want := []string{"first", "second", "", "  padded  ", "last"}
	for _, w := range want {
		line, err := src.ReadLine("> ")
		require.NoError(t, err)
		assert.Equal(t, w, line)
	}

	_, err := src.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, strings.Repeat("> ", len(want)+1), out.String())
}

func TestStdSourceWriteLine(t *testing.T) {
	var out bytes.Buffer
	src := console.NewStdSource(strings.NewReader(""), &out)

	require.NoError(t, src.WriteLine("hello"))
	require.NoError(t, src.WriteLine(""))
	assert.Equal(t, "hello\n\n", out.String())
}

func TestStdSourceEndToEnd(t *testing.T) {
	var out bytes.Buffer
	r := console.NewReader(console.NewStdSource(strings.NewReader("x\n12\n"), &out))

	v, err := r.ReadInt("Enter: ", "Wrong")
	require.NoError(t, err)
	assert.Equal(t, 12, v)
	assert.Equal(t, "Enter: Wrong: strconv.ParseInt: parsing \"x\": invalid syntax\nEnter: ", out.String())
}

func TestStdSourceUnterminatedCRLine(t *testing.T) {
	var out bytes.Buffer
	r := console.NewReader(console.NewStdSource(strings.NewReader("QA\r"), &out))

	v, err := r.ReadStringOptions("Department: ", "Wrong", []string{"QA"})
	require.NoError(t, err)
	assert.Equal(t, "QA", v)
	assert.Equal(t, "Department: ", out.String())
}
