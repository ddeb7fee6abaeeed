package app

import (
	"fmt"

	"github.com/specialistvlad/eectag/internal/tag"
	"github.com/specialistvlad/eectag/internal/tagstore"
)

// Config holds everything one run of the tag writer needs.
type Config struct {
	TagName    string
	ConfigFile string // opaque, never opened
	Program    string // opaque, never executed
	Args       []string

	LogFormat string
	LogLevel  string
	WriteMode tagstore.WriteMode
}

// NewConfig validates cfg and returns a copy of it. Every failure is an
// ErrArgument: it happens before any side effect.
func NewConfig(cfg Config) (*Config, error) {
	if err := tag.ValidateName(cfg.TagName); err != nil {
		return nil, err
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("%w: invalid log-format %q: must be 'text' or 'json'", tag.ErrArgument, cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", tag.ErrArgument, cfg.LogLevel)
	}

	if _, err := tagstore.ParseWriteMode(string(cfg.WriteMode)); err != nil {
		return nil, fmt.Errorf("%w: %w", tag.ErrArgument, err)
	}

	return &cfg, nil
}
