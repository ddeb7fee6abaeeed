package tagstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/eectag/internal/ctxlog"
	"github.com/specialistvlad/eectag/internal/tag"
)

// WriteMode selects how a tag file is replaced.
type WriteMode string

const (
	// WriteTruncate creates or truncates the tag file in place. A failed
	// write can leave an empty or partial file behind.
	WriteTruncate WriteMode = "truncate"
	// WriteAtomic writes a temporary file next to the target and renames it
	// over the target, so readers see either the old or the new record.
	WriteAtomic WriteMode = "atomic"
)

// ParseWriteMode converts a settings or flag value into a WriteMode.
func ParseWriteMode(s string) (WriteMode, error) {
	switch m := WriteMode(s); m {
	case WriteTruncate, WriteAtomic:
		return m, nil
	}
	return "", fmt.Errorf("unknown write mode %q: must be %q or %q", s, WriteTruncate, WriteAtomic)
}

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Store writes tag files under a single directory.
type Store struct {
	dir  string
	mode WriteMode
}

// New returns a Store rooted at dir. The directory is not created until the
// first Save.
func New(dir string, mode WriteMode) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: storage directory is required", tag.ErrConfiguration)
	}
	if _, err := ParseWriteMode(string(mode)); err != nil {
		return nil, fmt.Errorf("%w: %w", tag.ErrConfiguration, err)
	}
	return &Store{dir: dir, mode: mode}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file a tag with the given name is stored in.
func (s *Store) Path(name string) (string, error) {
	if err := tag.ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, tag.FileName(name)), nil
}

// Save encodes record and writes it under name, replacing any existing tag
// of that name. It returns the absolute path of the written file.
func (s *Store) Save(ctx context.Context, name string, record tag.Record) (string, error) {
	logger := ctxlog.FromContext(ctx)

	path, err := s.Path(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: create storage directory %s: %w", tag.ErrStorage, s.dir, err)
	}
	logger.Debug("Storage directory ready.", "dir", s.dir)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: resolve absolute path of %s: %w", tag.ErrStorage, path, err)
	}

	data, err := tag.Encode(record)
	if err != nil {
		return "", err
	}
	logger.Debug("Record encoded.", "bytes", len(data))

	switch s.mode {
	case WriteAtomic:
		err = writeFileAtomic(abs, data, filePerm)
	default:
		err = writeFileTruncate(abs, data, filePerm)
	}
	if err != nil {
		return "", fmt.Errorf("%w: write %s: %w", tag.ErrStorage, abs, err)
	}
	logger.Debug("Tag file written.", "path", abs, "mode", s.mode)

	return abs, nil
}
