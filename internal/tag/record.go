package tag

// Record is the association stored under a tag name. The name itself is not
// part of the record; it is the stem of the file the record is written to.
type Record struct {
	_msgpack struct{} `msgpack:",as_array"`

	// ConfigFile is the configuration file path, stored verbatim.
	ConfigFile string
	// Program is the executable path, stored verbatim.
	Program string
	// Args are the arguments some other tool passes to Program, in order.
	Args []string
}

// NewRecord builds a Record from command-line input. Paths are kept exactly
// as given. Args is copied, and a nil slice becomes an empty one so that an
// empty argument list survives a round trip as an empty list.
func NewRecord(configFile, program string, args []string) Record {
	copied := make([]string, len(args))
	copy(copied, args)
	return Record{
		ConfigFile: configFile,
		Program:    program,
		Args:       copied,
	}
}
