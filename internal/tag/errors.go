package tag

import "errors"

// The error kinds a tag write can fail with. They are wrapped with
// fmt.Errorf, so callers classify failures with errors.Is.
var (
	// ErrArgument is returned for missing or malformed command-line input,
	// including tag names that cannot be used as a plain file name.
	ErrArgument = errors.New("invalid argument")

	// ErrConfiguration is returned when the environment or a settings file
	// does not provide what the tool needs, such as the home directory.
	ErrConfiguration = errors.New("configuration error")

	// ErrStorage is returned when the storage directory or a tag file cannot
	// be created or written.
	ErrStorage = errors.New("storage error")

	// ErrSerialization is returned when a record cannot be encoded or decoded.
	ErrSerialization = errors.New("serialization error")
)
