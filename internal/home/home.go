// Package home resolves the per-user storage directory for tag files from a
// single environment variable.
package home

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/specialistvlad/eectag/internal/tag"
)

// StorageDirName is the directory under the home directory that holds tags.
const StorageDirName = ".eec"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Dirs is the resolved location of the tag storage. It is computed once at
// startup and passed to whatever needs it.
type Dirs struct {
	Home    string
	Storage string
}

// EnvVar returns the environment variable the home directory is read from on
// the given GOOS.
func EnvVar(goos string) string {
	if goos == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

// Resolve reads the home directory for the running platform and derives the
// storage directory from it.
func Resolve(lookup LookupFunc) (Dirs, error) {
	return ResolveFor(runtime.GOOS, lookup)
}

// ResolveFor is Resolve for an explicit GOOS. An unset or empty variable is
// an ErrConfiguration. Nothing is created on disk.
func ResolveFor(goos string, lookup LookupFunc) (Dirs, error) {
	key := EnvVar(goos)
	value, ok := lookup(key)
	if !ok || value == "" {
		return Dirs{}, fmt.Errorf("%w: cannot determine user home directory: %s is not set", tag.ErrConfiguration, key)
	}
	return Dirs{
		Home:    value,
		Storage: filepath.Join(value, StorageDirName),
	}, nil
}
