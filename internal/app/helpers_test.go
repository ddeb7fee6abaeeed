package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/eectag/internal/home"
	"github.com/specialistvlad/eectag/internal/tag"
	"github.com/specialistvlad/eectag/internal/tagstore"
	"github.com/stretchr/testify/require"
)

// setupAppTest creates an App whose home directory is a fresh temp dir. It
// returns the app, its confirmation output and its log output.
func setupAppTest(t *testing.T, cfg Config) (*App, home.Dirs, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.WriteMode == "" {
		cfg.WriteMode = tagstore.WriteTruncate
	}
	config, err := NewConfig(cfg)
	require.NoError(t, err)

	homeDir := t.TempDir()
	dirs := home.Dirs{Home: homeDir, Storage: filepath.Join(homeDir, home.StorageDirName)}

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	testApp, err := NewApp(out, logs, config, dirs)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("EEC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, dirs, out, logs
}

func readTag(t *testing.T, path string) tag.Record {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	record, err := tag.Decode(data)
	require.NoError(t, err)
	return record
}
