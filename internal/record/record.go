package record

import "maps"

// Record is a structured record: string keys mapped to
// JSON-representable values (strings, numbers, booleans, nil, nested
// maps and slices). A nil Record means "no record"; an empty Record is
// a valid, empty record.
type Record map[string]any

// Merge copies every key of src into r. Keys already present in r are
// overwritten; keys only in r are preserved.
func (r Record) Merge(src Record) {
	maps.Copy(r, src)
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}
