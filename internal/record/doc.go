// Package record defines the Record type exchanged throughout recordio:
// a mapping from string keys to JSON-representable values. The top-level
// value read from or written to disk is always a Record, never a bare
// scalar or array.
package record
