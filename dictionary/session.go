// Package dictionary drives a trie from a token stream: a count N, N words
// to insert, then queries until the input ends. Every call writes exactly one
// line to the session's output.
package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/sAspen/UncompressedTrie/trie"
)

const (
	prefixMark = "PREFIX"
	foundMark  = "YES"
	missMark   = "NO"
)

var (
	ErrMissingCount = errors.New("dictionary: missing insert count")
	ErrBadCount     = errors.New("dictionary: insert count is not a non-negative integer")
	ErrShortInput   = errors.New("dictionary: input ended before all inserts were read")
)

type Options struct {
	// FoldCase case-folds every token before it reaches the trie.
	FoldCase bool
	// SkipInvalid logs and skips tokens the trie rejects instead of
	// stopping the session.
	SkipInvalid bool
	Logger      *zerolog.Logger
}

type Stats struct {
	Inserted int
	Prefixes int
	Queries  int
	Found    int
	Skipped  int
}

type Session struct {
	trie  *trie.Trie
	out   io.Writer
	opts  Options
	log   zerolog.Logger
	fold  cases.Caser
	buf   []byte
	stats Stats
}

func New(t *trie.Trie, out io.Writer, opts Options) *Session {
	s := &Session{
		trie: t,
		out:  out,
		opts: opts,
		log:  zerolog.Nop(),
		buf:  make([]byte, 0, 256),
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	}
	if opts.FoldCase {
		s.fold = cases.Fold()
	}
	return s
}

func (s *Session) Trie() *trie.Trie {
	return s.trie
}

func (s *Session) Stats() Stats {
	return s.stats
}

// Insert adds word to the trie and writes "<word> <rendering>", or
// "<word> PREFIX" when nothing new was created.
func (s *Session) Insert(word string) error {
	key := s.normalize(word)
	created, err := s.trie.Insert(key)
	if err != nil {
		return s.reject("insert", word, err)
	}
	b := append(s.buf[:0], key...)
	b = append(b, ' ')
	if created {
		s.stats.Inserted++
		b = s.trie.AppendRender(b)
	} else {
		s.stats.Prefixes++
		b = append(b, prefixMark...)
	}
	s.log.Debug().Str("word", key).Bool("created", created).Msg("insert")
	return s.writeLine(b)
}

// Find looks word up and writes "<word> YES" or "<word> NO".
func (s *Session) Find(word string) error {
	key := s.normalize(word)
	found, err := s.trie.Find(key)
	if err != nil {
		return s.reject("find", word, err)
	}
	s.stats.Queries++
	b := append(s.buf[:0], key...)
	b = append(b, ' ')
	if found {
		s.stats.Found++
		b = append(b, foundMark...)
	} else {
		b = append(b, missMark...)
	}
	s.log.Debug().Str("word", key).Bool("found", found).Msg("find")
	return s.writeLine(b)
}

// Run consumes whitespace separated tokens from r until EOF or ctx is done.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("dictionary: read count: %w", err)
		}
		return ErrMissingCount
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return fmt.Errorf("%w: %q", ErrBadCount, sc.Text())
	}
	s.log.Debug().Int("count", n).Msg("reading inserts")

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("dictionary: read insert %d: %w", i+1, err)
			}
			return fmt.Errorf("%w: got %d of %d", ErrShortInput, i, n)
		}
		if err := s.Insert(sc.Text()); err != nil {
			return err
		}
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Find(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("dictionary: read query: %w", err)
	}

	s.log.Info().
		Int("inserted", s.stats.Inserted).
		Int("prefixes", s.stats.Prefixes).
		Int("queries", s.stats.Queries).
		Int("found", s.stats.Found).
		Int("skipped", s.stats.Skipped).
		Int("nodes", s.trie.Len()).
		Msg("session done")
	return nil
}

func (s *Session) normalize(word string) string {
	if s.opts.FoldCase {
		return s.fold.String(word)
	}
	return word
}

func (s *Session) reject(op, word string, err error) error {
	if s.opts.SkipInvalid && isKeyError(err) {
		s.stats.Skipped++
		s.log.Warn().Err(err).Str("op", op).Str("word", word).Msg("skipping word")
		return nil
	}
	return fmt.Errorf("dictionary: %s %q: %w", op, word, err)
}

func (s *Session) writeLine(b []byte) error {
	b = append(b, '\n')
	s.buf = b
	if _, err := s.out.Write(b); err != nil {
		return fmt.Errorf("dictionary: write: %w", err)
	}
	return nil
}

func isKeyError(err error) bool {
	return errors.Is(err, trie.ErrEmptyKey) || errors.Is(err, trie.ErrUnsupportedChar)
}
