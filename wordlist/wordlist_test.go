package wordlist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-passkit/wordlist"
)

func TestLists_CaseInsensitive(t *testing.T) {
	l := wordlist.New([]string{"Password", " qwerty ", ""}, []string{"Alice", "BOB"})

	assert.True(t, l.IsCommon("password"))
	assert.True(t, l.IsCommon("PASSWORD"))
	assert.True(t, l.IsCommon("QWERTY"))
	assert.False(t, l.IsCommon("letmein"))
	assert.False(t, l.IsCommon(""))

	assert.True(t, l.IsName("alice"))
	assert.True(t, l.IsName("Bob"))
	assert.False(t, l.IsName("alice1"))

	assert.Equal(t, 2, l.CommonCount())
	assert.Equal(t, 2, l.NameCount())
}

func TestLists_NilAndEmpty(t *testing.T) {
	var nilLists *wordlist.Lists
	for _, l := range []*wordlist.Lists{nilLists, wordlist.Empty()} {
		assert.False(t, l.IsCommon("password"))
		assert.False(t, l.IsName("alice"))
		assert.Zero(t, l.CommonCount())
		assert.Zero(t, l.NameCount())
	}
}

func TestLists_CopiesInput(t *testing.T) {
	in := []string{"secret"}
	l := wordlist.New(in, nil)
	in[0] = "changed"
	assert.True(t, l.IsCommon("secret"))
	assert.False(t, l.IsCommon("changed"))
}

func TestRead(t *testing.T) {
	got, err := wordlist.Read(strings.NewReader("\ufeff123456\r\npassword\n\n  iloveyou  \nJürgen\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"123456", "password", "iloveyou", "Jürgen"}, got)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestRead_Error(t *testing.T) {
	_, err := wordlist.Read(errReader{})
	assert.EqualError(t, err, "disk gone")
}
