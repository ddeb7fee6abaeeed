// Package settings loads the optional HCL settings file. The file is
// evaluated with an "env" object holding the process environment, so values
// can be taken from variables:
//
//	log_level  = env.EEC_LOG_LEVEL
//	log_format = "json"
//	write_mode = "atomic"
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/eectag/internal/ctxlog"
	"github.com/specialistvlad/eectag/internal/tag"
	"github.com/zclconf/go-cty/cty"
)

// Settings are the values read from a settings file. An empty field was not
// set in the file.
type Settings struct {
	LogLevel  string
	LogFormat string
	WriteMode string
}

// fileRoot is the schema of a settings file. Unknown attributes and blocks
// are rejected by gohcl.
type fileRoot struct {
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	WriteMode *string `hcl:"write_mode,optional"`
}

// Load parses and evaluates the settings file at path. Any failure, including
// a missing file, is an ErrConfiguration.
func Load(ctx context.Context, path string, env map[string]string) (Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("%w: failed to parse settings file %s: %w", tag.ErrConfiguration, path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &root)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("%w: failed to decode settings file %s: %w", tag.ErrConfiguration, path, diags)
	}

	s := Settings{
		LogLevel:  deref(root.LogLevel),
		LogFormat: deref(root.LogFormat),
		WriteMode: deref(root.WriteMode),
	}
	logger.Debug("Settings file loaded.", "settings", s)
	return s, nil
}

// EnvMap converts an os.Environ style list into a map. Later duplicates win.
func EnvMap(environ []string) map[string]string {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
