package charset

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultName is the encoding assumed when none is given.
const DefaultName = "utf-8"

// ErrInvalidBytes is returned when input bytes are not valid under the
// chosen encoding.
var ErrInvalidBytes = errors.New("bytes not valid for encoding")

func lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultName
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		// The index knows the name but has no implementation for it.
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// Decode converts b from the named encoding to UTF-8.
func Decode(name string, b []byte) ([]byte, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		if !utf8.Valid(b) {
			return nil, ErrInvalidBytes
		}
		return b, nil
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBytes, err)
	}
	return out, nil
}

// Encode converts UTF-8 text to the named encoding.
func Encode(name string, b []byte) ([]byte, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return b, nil
	}
	out, err := enc.NewEncoder().Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("encode to %q: %w", name, err)
	}
	return out, nil
}
