package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, ErrNoInput)
}

func TestGetWithDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetWithDefault(rdr("\n"), "Price", "1.99", &out)
	require.NoError(t, err)
	assert.Equal(t, "1.99", got)
	assert.Equal(t, "Price [1.99]: ", out.String())

	got, err = GetWithDefault(rdr("  2.50 \n"), "Price", "1.99", &out)
	require.NoError(t, err)
	assert.Equal(t, "2.50", got)
}

func TestGetID(t *testing.T) {
	var out bytes.Buffer

	id, err := GetID(rdr("42\n"), "Item id", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, in := range []string{"abc\n", "0\n", "-3\n"} {
		_, err = GetID(rdr(in), "Item id", &out)
		require.Error(t, err, in)
	}
}

func TestConfirm(t *testing.T) {
	tests := map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false}
	for in, want := range tests {
		got, err := Confirm(rdr(in), "Save?", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out, "Passphrase")
	require.NoError(t, err)
	assert.Equal(t, []byte("pw"), pw)
	assert.Equal(t, "Passphrase: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out, "Passphrase")
	require.Error(t, err)
}
