package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"recordio/internal/record"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a record file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := appCtx.Files.Read(args[0], readOptions())
			if rec == nil {
				return fmt.Errorf("cannot read %s", args[0])
			}
			return printJSON(rec)
		},
	}
}

// printJSON pretty-prints v to stdout with the active indent width and
// HTML escaping off.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indentWidth))
	return enc.Encode(v)
}

// asRecord converts a raw value back to a Record for printing nested
// objects uniformly.
func asRecord(v any) (record.Record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return record.Record(m), true
}
