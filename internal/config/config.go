// Package config loads CLI settings from a TOML file and REALISER_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "REALISER_"

// Config holds the CLI settings. Zero values are replaced by Default.
type Config struct {
	// Lexicon lists doublestar patterns of YAML lexicon files.
	Lexicon   []string `toml:"lexicon"`
	Formatter string   `toml:"formatter"`
	Language  string   `toml:"language"`
	Debug     bool     `toml:"debug"`
	Seed      uint64   `toml:"seed"`
	LogLevel  string   `toml:"log_level"`
	LogFormat string   `toml:"log_format"`

	// Seeded is set when a seed came from the file or the environment.
	Seeded bool `toml:"-"`
	// BadSeed holds a REALISER_SEED value that did not parse.
	BadSeed string `toml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Formatter: "text",
		Language:  "de",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path, when non-empty, over the defaults and applies environment
// overrides. Unknown keys in the file are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("config: %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
		cfg.Seeded = meta.IsDefined("seed")
	}

	cfg.applyEnv()
	cfg.normalise()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := env("LEXICON"); v != "" {
		c.Lexicon = splitList(v)
	}
	c.Formatter = envOr("FORMATTER", c.Formatter)
	c.Language = envOr("LANGUAGE", c.Language)
	c.Debug = envBool("DEBUG", c.Debug)
	if v := env("SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.BadSeed = v
		} else {
			c.Seed = n
			c.Seeded = true
			c.BadSeed = ""
		}
	}
	c.LogLevel = envOr("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOr("LOG_FORMAT", c.LogFormat)
}

func (c *Config) normalise() {
	def := Default()
	c.Formatter = strings.ToLower(strings.TrimSpace(c.Formatter))
	if c.Formatter == "" {
		c.Formatter = def.Formatter
	}
	if strings.TrimSpace(c.Language) == "" {
		c.Language = def.Language
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
}

// Validate reports settings the CLI cannot act on.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config: log_format %q must be text or json", c.LogFormat))
	}
	if _, err := c.Tag(); err != nil {
		errs = append(errs, err)
	}
	if c.BadSeed != "" {
		errs = append(errs, fmt.Errorf("config: %sSEED %q must be an unsigned integer", EnvPrefix, c.BadSeed))
	}
	for _, pattern := range c.Lexicon {
		if strings.TrimSpace(pattern) == "" {
			errs = append(errs, errors.New("config: lexicon patterns must not be empty"))
			break
		}
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Tag parses Language as a BCP 47 tag.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("config: language %q: %w", c.Language, err)
	}
	return tag, nil
}

// Logger builds a slog logger writing to w. Debug mode lowers the level so
// trace snapshots are emitted.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	if c.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}

func envOr(key, fallback string) string {
	if v := env(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := env(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
