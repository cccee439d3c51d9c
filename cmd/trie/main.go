// Command trie indexes the first N words of an input file and answers
// membership queries for the rest, writing one report line per word.
//
//	trie [flags] <input> <output>
//
// The input starts with the count N followed by whitespace separated words.
// Either path may be "-" for standard input or output.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/sAspen/UncompressedTrie/dictionary"
	"github.com/sAspen/UncompressedTrie/internal/config"
	"github.com/sAspen/UncompressedTrie/trie"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := config.Flags("trie")
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: trie [flags] <input> <output>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, config.ErrUsage) {
			fs.Usage()
			return exitUsage
		}
		return exitFailure
	}

	lvl, _ := cfg.Log.ParseLevel()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(lvl).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, cfg, &logger, stdin, stdout); err != nil {
		logger.Error().Err(err).Str("input", cfg.Input).Str("output", cfg.Output).Msg("trie failed")
		return exitFailure
	}
	return exitOK
}

func execute(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, stdin io.Reader, stdout io.Writer) error {
	in, closeIn, err := openInput(cfg.Input, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cfg.Output, stdout)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	t := trie.New()
	s := dictionary.New(t, w, dictionary.Options{
		FoldCase:    cfg.FoldCase,
		SkipInvalid: cfg.SkipInvalid,
		Logger:      logger,
	})
	runErr := s.Run(ctx, in)
	if err := w.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("flush %s: %w", cfg.Output, err)
	}
	if err := closeOut(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close %s: %w", cfg.Output, err)
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Interactive {
		if !isTerminal(stdin) {
			logger.Warn().Msg("stdin is not a terminal, skipping interactive mode")
			return nil
		}
		return prompt(ctx, t, stdin.(*os.File), stdout, cfg, logger)
	}
	return nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == config.Stdio {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("file %s could not be found or cannot be read: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == config.Stdio {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("file %s could not be created: %w", path, err)
	}
	return f, f.Close, nil
}
