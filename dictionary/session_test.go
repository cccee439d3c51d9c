package dictionary

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dnsoa/go/assert"
	"github.com/rs/zerolog"

	"github.com/sAspen/UncompressedTrie/trie"
)

func newSession(opts Options) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return New(trie.New(), &out, opts), &out
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "inserts and queries",
			input: "3\nab\nac\na\nab ac a b\n",
			want: "ab (ab)\n" +
				"ac (a(b)(c))\n" +
				"a PREFIX\n" +
				"ab YES\n" +
				"ac YES\n" +
				"a NO\n" +
				"b NO\n",
		},
		{
			name:  "duplicate",
			input: "2 abc abc abc",
			want: "abc (abc)\n" +
				"abc PREFIX\n" +
				"abc YES\n",
		},
		{
			name:  "terminal changes after extension",
			input: "2 a ab a ab",
			want: "a (a)\n" +
				"ab (ab)\n" +
				"a NO\n" +
				"ab YES\n",
		},
		{
			name:  "no inserts",
			input: "0 q",
			want:  "q NO\n",
		},
		{
			name:  "no queries",
			input: "2\tb\ta",
			want: "b (b)\n" +
				"a (a)(b)\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, out := newSession(Options{})
			assert.NoError(t, s.Run(context.Background(), strings.NewReader(test.input)))
			assert.Equal(t, test.want, out.String())
		})
	}
}

func TestRunStats(t *testing.T) {
	s, _ := newSession(Options{})
	assert.NoError(t, s.Run(context.Background(), strings.NewReader("3 ab ac ab ab a zz")))
	assert.Equal(t, Stats{Inserted: 2, Prefixes: 1, Queries: 3, Found: 1}, s.Stats())
	assert.Equal(t, 3, s.Trie().Len())
}

func TestRunBadInput(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"", ErrMissingCount},
		{"   \n", ErrMissingCount},
		{"two ab ac", ErrBadCount},
		{"-1 ab", ErrBadCount},
		{"3 ab ac", ErrShortInput},
		{"2 ab Ac", trie.ErrUnsupportedChar},
		{"1 ab a-b", trie.ErrUnsupportedChar},
	}
	for _, test := range tests {
		s, _ := newSession(Options{})
		err := s.Run(context.Background(), strings.NewReader(test.input))
		if !errors.Is(err, test.err) {
			t.Errorf("Run(%q) = %v, want %v", test.input, err, test.err)
		}
	}
}

func TestRunShortInputMessage(t *testing.T) {
	s, out := newSession(Options{})
	err := s.Run(context.Background(), strings.NewReader("3 ab"))
	assert.Equal(t, "dictionary: input ended before all inserts were read: got 1 of 3", err.Error())
	assert.Equal(t, "ab (ab)\n", out.String())
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, out := newSession(Options{})
	err := s.Run(ctx, strings.NewReader("1 ab ab"))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, "", out.String())
}

func TestSkipInvalid(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	s, out := newSession(Options{SkipInvalid: true, Logger: &logger})

	assert.NoError(t, s.Run(context.Background(), strings.NewReader("3 ab A1 ac ab X")))
	assert.Equal(t, "ab (ab)\n"+
		"ac (a(b)(c))\n"+
		"ab YES\n", out.String())
	assert.Equal(t, 2, s.Stats().Skipped)
	assert.Contains(t, logs.String(), `"word":"A1"`)
	assert.Contains(t, logs.String(), `"message":"skipping word"`)
	assert.Contains(t, logs.String(), `"message":"session done"`)
}

func TestFoldCase(t *testing.T) {
	s, out := newSession(Options{FoldCase: true})
	assert.NoError(t, s.Run(context.Background(), strings.NewReader("2 Ab AC ab Ac STRASSE")))
	assert.Equal(t, "ab (ab)\n"+
		"ac (a(b)(c))\n"+
		"ab YES\n"+
		"ac YES\n"+
		"strasse NO\n", out.String())
}

func TestInsertFind(t *testing.T) {
	s, out := newSession(Options{})
	assert.NoError(t, s.Insert("ab"))
	assert.NoError(t, s.Insert("a"))
	assert.NoError(t, s.Find("ab"))
	assert.NoError(t, s.Find("zz"))
	assert.Equal(t, "ab (ab)\na PREFIX\nab YES\nzz NO\n", out.String())

	err := s.Find("")
	assert.True(t, errors.Is(err, trie.ErrEmptyKey))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	s := New(trie.New(), failWriter{}, Options{})
	err := s.Insert("ab")
	assert.Error(t, err)
	assert.Equal(t, "dictionary: write: disk full", err.Error())
}
