package sealed

import (
	"encoding/json"
	"os"
	"path/filepath"

	"recordio/internal/record"
)

// Write seals rec with passphrase and writes the envelope to path,
// creating parent directories as needed.
func Write(rec record.Record, path, passphrase string) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	blob, err := seal(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, blob, 0o600)
}

// Read opens the envelope at path and returns the decrypted record.
func Read(path, passphrase string) (record.Record, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return nil, err
	}
	var rec record.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}
