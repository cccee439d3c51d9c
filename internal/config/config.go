package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "TRIE"

// Stdio names standard input or output in place of a file path.
const Stdio = "-"

var ErrUsage = errors.New("usage")

// Config holds everything the trie command needs to run one session
type Config struct {
	Input       string    `mapstructure:"input"`
	Output      string    `mapstructure:"output"`
	FoldCase    bool      `mapstructure:"fold_case"`
	SkipInvalid bool      `mapstructure:"skip_invalid"`
	Interactive bool      `mapstructure:"interactive"`
	HistoryFile string    `mapstructure:"history_file"`
	Log         LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Flags returns the command line flags understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "Config file (yaml, json or toml)")
	fs.Bool("fold-case", false, "Case-fold every word before indexing")
	fs.Bool("skip-invalid", false, "Skip words outside a-z instead of failing")
	fs.BoolP("interactive", "i", false, "Prompt for more queries after the input is processed")
	fs.String("history-file", "", "Readline history file for interactive mode")
	fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	return fs
}

// Load builds the configuration from defaults, an optional config file, the
// environment (TRIE_*), parsed flags and the two positional arguments, in
// increasing order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"fold_case":    "fold-case",
		"skip_invalid": "skip-invalid",
		"interactive":  "interactive",
		"history_file": "history-file",
		"log.level":    "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	switch args := fs.Args(); len(args) {
	case 0:
	case 2:
		v.Set("input", args[0])
		v.Set("output", args[1])
	default:
		return nil, fmt.Errorf("%w: expected <input> <output>, got %d arguments", ErrUsage, len(args))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("fold_case", false)
	v.SetDefault("skip_invalid", false)
	v.SetDefault("interactive", false)
	v.SetDefault("history_file", "")
	v.SetDefault("log.level", "info")
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Input == "" || c.Output == "" {
		return fmt.Errorf("%w: input and output are required", ErrUsage)
	}
	if c.Interactive && c.Input == Stdio {
		return fmt.Errorf("%w: interactive mode needs stdin, input must be a file", ErrUsage)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

func (c *LogConfig) ParseLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return lvl, nil
}
