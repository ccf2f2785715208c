package recordfile

import (
	"recordio/internal/logging"
	"recordio/internal/record"
)

// FileIO reads and writes record files. The zero value is not usable;
// construct with New.
type FileIO struct {
	log logging.Logger
}

// New returns a FileIO logging through log. A nil log discards
// diagnostics.
func New(log logging.Logger) *FileIO {
	if log == nil {
		log = logging.Nop()
	}
	return &FileIO{log: log}
}

// ReadOptions control Read and LoadInto.
type ReadOptions struct {
	// Encoding is the IANA name of the file's text encoding.
	// Empty means UTF-8.
	Encoding string

	// Default is returned by Read when the file cannot produce a valid
	// record. Nil means no default was supplied.
	Default record.Record
}

// WriteOptions control Write.
type WriteOptions struct {
	// Encoding is the IANA name of the output text encoding.
	// Empty means UTF-8.
	Encoding string

	// Indent is the indent width in spaces. Values <= 0 mean the
	// default of 4.
	Indent int

	// EscapeASCII escapes runes above 0x7F as \uXXXX sequences. When
	// false (the default) non-ASCII text is written literally.
	EscapeASCII bool
}

const defaultIndent = 4

func (o WriteOptions) indent() int {
	if o.Indent <= 0 {
		return defaultIndent
	}
	return o.Indent
}
