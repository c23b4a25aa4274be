// Package config loads tool settings for the piece-table drivers from a
// small JSON file, with environment variable overrides. Missing files
// and missing keys fall back to defaults, so a config file is never
// required to run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidConfig indicates the configuration file is not valid JSON.
	ErrInvalidConfig = errors.New("invalid config file")

	// ErrInvalidValue indicates a setting holds a value outside its range.
	ErrInvalidValue = errors.New("invalid config value")
)

// Default values applied when a setting is absent.
const (
	DefaultMaxUndoEntries = 1000
	DefaultMaxAddBytes    = 0 // unlimited
)

// EnvPrefix is prepended to setting names for environment overrides,
// e.g. PIECETABLE_MAX_UNDO_ENTRIES.
const EnvPrefix = "PIECETABLE_"

// Config holds the driver settings.
type Config struct {
	// MaxUndoEntries bounds the undo stack. Zero or negative falls back
	// to the default.
	MaxUndoEntries int

	// MaxAddBytes caps append storage growth. Zero means unlimited.
	MaxAddBytes int

	// InitialFile is loaded into the buffer at startup when set.
	InitialFile string
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MaxUndoEntries: DefaultMaxUndoEntries,
		MaxAddBytes:    DefaultMaxAddBytes,
	}
}

// Load reads the configuration at path. A missing file is not an
// error; defaults are returned. Environment overrides apply on top of
// whatever the file provides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file, defaults plus env only.
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if !gjson.ValidBytes(data) {
			return cfg, fmt.Errorf("%w: %s", ErrInvalidConfig, path)
		}
		if v := gjson.GetBytes(data, "max_undo_entries"); v.Exists() {
			cfg.MaxUndoEntries = int(v.Int())
		}
		if v := gjson.GetBytes(data, "max_add_bytes"); v.Exists() {
			cfg.MaxAddBytes = int(v.Int())
		}
		if v := gjson.GetBytes(data, "initial_file"); v.Exists() {
			cfg.InitialFile = v.String()
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks setting ranges.
func (c Config) Validate() error {
	if c.MaxUndoEntries < 0 {
		return fmt.Errorf("%w: max_undo_entries %d", ErrInvalidValue, c.MaxUndoEntries)
	}
	if c.MaxAddBytes < 0 {
		return fmt.Errorf("%w: max_add_bytes %d", ErrInvalidValue, c.MaxAddBytes)
	}
	return nil
}

// Write saves the configuration to path as formatted JSON.
func Write(path string, cfg Config) error {
	out := "{}"
	var err error
	if out, err = sjson.Set(out, "max_undo_entries", cfg.MaxUndoEntries); err != nil {
		return err
	}
	if out, err = sjson.Set(out, "max_add_bytes", cfg.MaxAddBytes); err != nil {
		return err
	}
	if cfg.InitialFile != "" {
		if out, err = sjson.Set(out, "initial_file", cfg.InitialFile); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(out+"\n"), 0o644)
}

// applyEnv overrides settings from PIECETABLE_* variables. Unparsable
// values are ignored rather than failing startup.
func applyEnv(cfg *Config) {
	if v, ok := envInt("MAX_UNDO_ENTRIES"); ok {
		cfg.MaxUndoEntries = v
	}
	if v, ok := envInt("MAX_ADD_BYTES"); ok {
		cfg.MaxAddBytes = v
	}
	if v := os.Getenv(EnvPrefix + "INITIAL_FILE"); v != "" {
		cfg.InitialFile = v
	}
}

func envInt(name string) (int, bool) {
	s := os.Getenv(EnvPrefix + name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
