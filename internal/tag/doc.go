// Package tag defines the record persisted for a named tag, the rules a tag
// name must follow to be usable as a file name, and the binary codec used to
// store records on disk.
//
// A Record is encoded as a positional msgpack array:
//
//	[config_file, program, [arg, ...]]
//
// There is no version header. A change to the record shape must add an
// explicit leading version element rather than rely on positional
// compatibility.
package tag
