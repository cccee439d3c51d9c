package trie

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey        = errors.New("trie: empty key")
	ErrUnsupportedChar = errors.New("trie: unsupported character")
)

// CharError reports a key containing a byte outside 'a'..'z'.
type CharError struct {
	Key    string
	Offset int
	Char   byte
}

func (e *CharError) Error() string {
	return fmt.Sprintf("%v %q at offset %d in %q", ErrUnsupportedChar, e.Char, e.Offset, e.Key)
}

func (e *CharError) Unwrap() error {
	return ErrUnsupportedChar
}

func validate(k string) error {
	if k == "" {
		return ErrEmptyKey
	}
	for i := 0; i < len(k); i++ {
		if c := k[i]; c < 'a' || c > 'z' {
			return &CharError{Key: k, Offset: i, Char: c}
		}
	}
	return nil
}
