package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print a single value from a record file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := appCtx.Files.Read(args[0], readOptions())
			if rec == nil {
				return fmt.Errorf("cannot read %s", args[0])
			}
			v, ok := rec[args[1]]
			if !ok {
				return fmt.Errorf("%s: no key %q", args[0], args[1])
			}
			if nested, ok := asRecord(v); ok {
				return printJSON(nested)
			}
			fmt.Println(v)
			return nil
		},
	}
}
