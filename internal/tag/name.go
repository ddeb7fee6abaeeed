package tag

import (
	"fmt"
	"strings"
)

// Extension is appended to a tag name to form its file name.
const Extension = ".tag"

// ValidateName reports whether name can be used as the stem of a tag file.
// A name must be a single plain path component: it may not be empty, be "."
// or "..", or contain a path separator or a NUL byte. Both '/' and '\' are
// rejected on every platform so the same name behaves the same everywhere.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: tag name must not be empty", ErrArgument)
	case name == "." || name == "..":
		return fmt.Errorf("%w: tag name %q is reserved", ErrArgument, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: tag name %q must not contain a path separator", ErrArgument, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: tag name %q must not contain a NUL byte", ErrArgument, name)
	}
	return nil
}

// FileName returns the file name a tag is stored under. It does not validate
// name; call ValidateName first.
func FileName(name string) string {
	return name + Extension
}
