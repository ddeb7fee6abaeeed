package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/eectag/internal/tag"
	"github.com/specialistvlad/eectag/internal/tagstore"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	valid := Config{
		TagName:    "build",
		ConfigFile: "cfg.toml",
		Program:    "app",
		Args:       []string{"-v"},
		LogFormat:  "json",
		LogLevel:   "info",
		WriteMode:  tagstore.WriteAtomic,
	}

	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "Empty tag name", mutate: func(c *Config) { c.TagName = "" }},
		{name: "Tag name with separator", mutate: func(c *Config) { c.TagName = "a/b" }},
		{name: "Parent directory tag name", mutate: func(c *Config) { c.TagName = ".." }},
		{name: "Bad log format", mutate: func(c *Config) { c.LogFormat = "yaml" }},
		{name: "Bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }},
		{name: "Bad write mode", mutate: func(c *Config) { c.WriteMode = "append" }},
	}

	got, err := NewConfig(valid)
	require.NoError(t, err)
	if diff := cmp.Diff(&valid, got); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tc.mutate(&cfg)
			_, err := NewConfig(cfg)
			require.ErrorIs(t, err, tag.ErrArgument)
		})
	}
}
