package tag

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serializes r into its on-disk form. Every string must be valid
// UTF-8; anything else is an ErrSerialization rather than a lossy write.
func Encode(r Record) ([]byte, error) {
	if err := checkUTF8(r); err != nil {
		return nil, err
	}
	if r.Args == nil {
		r.Args = []string{}
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(&r); err != nil {
		return nil, fmt.Errorf("%w: encode record: %w", ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// Decode is the inverse of Encode. Trailing bytes after the record are
// rejected.
func Decode(data []byte) (Record, error) {
	rd := bytes.NewReader(data)
	dec := msgpack.NewDecoder(rd)

	var r Record
	if err := dec.Decode(&r); err != nil {
		return Record{}, fmt.Errorf("%w: decode record: %w", ErrSerialization, err)
	}
	if rd.Len() != 0 {
		return Record{}, fmt.Errorf("%w: decode record: %d trailing bytes", ErrSerialization, rd.Len())
	}
	if r.Args == nil {
		r.Args = []string{}
	}
	return r, nil
}

func checkUTF8(r Record) error {
	if !utf8.ValidString(r.ConfigFile) {
		return fmt.Errorf("%w: config file path %q is not valid UTF-8", ErrSerialization, r.ConfigFile)
	}
	if !utf8.ValidString(r.Program) {
		return fmt.Errorf("%w: program path %q is not valid UTF-8", ErrSerialization, r.Program)
	}
	for i, arg := range r.Args {
		if !utf8.ValidString(arg) {
			return fmt.Errorf("%w: argument %d (%q) is not valid UTF-8", ErrSerialization, i, arg)
		}
	}
	return nil
}
