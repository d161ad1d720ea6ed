package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", out)
	require.NoError(t, err)

	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Say something\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "Prompt", out)
	require.NoError(t, err)

	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EmptyInputAtEOF(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Prompt", out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	stubPassword(t, "s3cret", nil)
	out := &bytes.Buffer{}

	pw, err := GetPassword(out)
	require.NoError(t, err)

	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter password: ")
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubPassword(t, "", errors.New("not a terminal"))
	out := &bytes.Buffer{}

	_, err := GetPassword(out)
	assert.Error(t, err)
}
