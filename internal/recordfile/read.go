package recordfile

import (
	"bytes"
	"encoding/json"
	"os"

	"recordio/internal/charset"
	"recordio/internal/record"
)

// Read loads the record file at path. On any failure it returns
// opts.Default, with two exceptions: a file that is empty (or all
// whitespace) and a file whose top-level value is not an object both
// yield an empty record when no default was supplied. Read never
// panics; the log carries the reason for every fallback.
func (f *FileIO) Read(path string, opts ReadOptions) record.Record {
	if path == "" {
		f.log.Errorf("read: empty path")
		return opts.Default
	}

	info, err := os.Stat(path)
	if err != nil {
		f.log.Errorf("read %s: %v", path, err)
		return opts.Default
	}
	if info.IsDir() {
		f.log.Errorf("read %s: path is a directory", path)
		return opts.Default
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		f.log.Errorf("read %s: %v", path, err)
		return opts.Default
	}

	text, err := charset.Decode(opts.Encoding, raw)
	if err != nil {
		f.log.Errorf("read %s: %v", path, err)
		return opts.Default
	}

	if len(bytes.TrimSpace(text)) == 0 {
		f.log.Warnf("read %s: file is empty", path)
		if opts.Default != nil {
			return opts.Default
		}
		return record.Record{}
	}

	var v any
	if err := json.Unmarshal(text, &v); err != nil {
		f.log.Errorf("read %s: parse error: %v", path, err)
		return opts.Default
	}

	m, ok := v.(map[string]any)
	if !ok {
		f.log.Warnf("read %s: top-level value is %T, not an object", path, v)
		if opts.Default != nil {
			return opts.Default
		}
		return record.Record{}
	}
	return record.Record(m)
}
