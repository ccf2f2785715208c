package recordfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"recordio/internal/charset"
	"recordio/internal/record"
)

// Write serializes rec to the file at path and reports success. Parent
// directories are created as needed. The record is serialized to a
// buffer before the destination is touched, so a marshal failure never
// leaves a partial file. The write itself is a single call and is not
// atomic.
func (f *FileIO) Write(rec record.Record, path string, opts WriteOptions) bool {
	if rec == nil {
		f.log.Errorf("write: nil record")
		return false
	}
	if path == "" {
		f.log.Errorf("write: empty path")
		return false
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			f.log.Errorf("write %s: create directory %s: %v", path, dir, err)
			return false
		}
	}

	text, err := marshal(rec, opts)
	if err != nil {
		f.log.Errorf("write %s: not serializable: %v", path, err)
		return false
	}

	out, err := charset.Encode(opts.Encoding, text)
	if err != nil {
		f.log.Errorf("write %s: %v", path, err)
		return false
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		f.log.Errorf("write %s: %v", path, err)
		return false
	}
	f.log.Infof("wrote %s", path)
	return true
}

// marshal renders rec as indented JSON. HTML escaping is off so output
// stays readable; EscapeASCII optionally rewrites non-ASCII runes as
// \uXXXX sequences after the fact.
func marshal(rec record.Record, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", opts.indent()))
	if err := enc.Encode(map[string]any(rec)); err != nil {
		return nil, err
	}
	if opts.EscapeASCII {
		return escapeNonASCII(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// escapeNonASCII rewrites runes above 0x7F as \uXXXX escapes. Valid
// JSON output only carries such runes inside strings, so the rewrite
// is position-independent. Runes outside the BMP become surrogate
// pairs.
func escapeNonASCII(b []byte) []byte {
	var out bytes.Buffer
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r < utf8.RuneSelf {
			out.WriteByte(b[0])
		} else {
			for _, u := range utf16.Encode([]rune{r}) {
				fmt.Fprintf(&out, `\u%04x`, u)
			}
		}
		b = b[size:]
	}
	return out.Bytes()
}
