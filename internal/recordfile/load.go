package recordfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"recordio/internal/charset"
	"recordio/internal/record"
)

var errTopLevelShape = errors.New("top-level value is not an object")

// LoadInto parses the record file at path and behaves in one of two
// modes depending on target.
//
// Return mode (target == nil): the parsed record and true are
// returned. On any failure the result is an empty record and false.
//
// Merge mode (target != nil): every parsed key is copied into target,
// overwriting collisions, and (target, true) is returned. On any
// failure target is left untouched and ok is false; parsing completes
// before the first mutation, so the merge is all-or-nothing.
func (f *FileIO) LoadInto(path string, target record.Record, opts ReadOptions) (rec record.Record, ok bool) {
	parsed, err := f.load(path, opts.Encoding)
	if err != nil {
		var syntaxErr *json.SyntaxError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			f.log.Errorf("load %s: file not found", path)
		case errors.As(err, &syntaxErr):
			f.log.Errorf("load %s: parse error: %v", path, err)
		case errors.Is(err, errTopLevelShape):
			f.log.Errorf("load %s: type error: %v", path, err)
		default:
			f.log.Errorf("load %s: unexpected error: %v", path, err)
		}
		if target == nil {
			return record.Record{}, false
		}
		return nil, false
	}

	if target == nil {
		return parsed, true
	}
	target.Merge(parsed)
	return target, true
}

func (f *FileIO) load(path, encName string) (record.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := charset.Decode(encName, raw)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(text, &v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w (got %T)", errTopLevelShape, v)
	}
	return record.Record(m), nil
}
