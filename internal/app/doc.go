// Package app contains the tag writer itself. It defines the App struct, its
// configuration, and the linear run that resolves the storage directory,
// builds the record, writes it and reports the stored path, decoupled from
// the CLI entrypoint.
package app
