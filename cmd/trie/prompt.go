package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/sAspen/UncompressedTrie/dictionary"
	"github.com/sAspen/UncompressedTrie/internal/config"
	"github.com/sAspen/UncompressedTrie/trie"
)

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// prompt answers find queries typed on the terminal until EOF or interrupt.
func prompt(ctx context.Context, t *trie.Trie, stdin *os.File, stdout io.Writer, cfg *config.Config, logger *zerolog.Logger) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "find> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          stdout,
	})
	if err != nil {
		return fmt.Errorf("open prompt: %w", err)
	}
	defer rl.Close()

	s := dictionary.New(t, rl.Stdout(), dictionary.Options{
		FoldCase:    cfg.FoldCase,
		SkipInvalid: true,
		Logger:      logger,
	})
	for ctx.Err() == nil {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("read prompt: %w", err)
		}
		for _, word := range strings.Fields(line) {
			if err := s.Find(word); err != nil {
				return err
			}
		}
	}
	return nil
}
