// Package tagstore writes encoded tag records into the storage directory,
// one file per tag named "<name>.tag". Writing the same name again replaces
// the previous file completely.
package tagstore
