package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"recordio/internal/record"
)

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <key=value>...",
		Short: "Set keys in a record file (read-modify-write)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			// A missing or unreadable file starts a fresh record.
			rec := appCtx.Files.Read(path, readOptions())
			if rec == nil {
				rec = record.Record{}
			}

			for _, pair := range args[1:] {
				key, val, err := parsePair(pair)
				if err != nil {
					return err
				}
				rec[key] = val
			}

			if !appCtx.Files.Write(rec, path, writeOptions()) {
				return fmt.Errorf("cannot write %s", path)
			}
			return nil
		},
	}
}

// parsePair splits "key=value" and decodes value as a JSON literal,
// falling back to a plain string when it isn't one. So `n=3` stores a
// number, `ok=true` a boolean, and `name=Ada` the string "Ada".
func parsePair(pair string) (string, any, error) {
	key, raw, found := strings.Cut(pair, "=")
	if !found || key == "" {
		return "", nil, fmt.Errorf("invalid pair %q (want key=value)", pair)
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return key, raw, nil
	}
	return key, v, nil
}
