package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"recordio/internal/sealed"
)

func openCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Decrypt a sealed record file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			rec, err := sealed.Read(args[0], passphrase)
			if err != nil {
				return err
			}
			if out == "" {
				return printJSON(rec)
			}
			if !appCtx.Files.Write(rec, out, writeOptions()) {
				return fmt.Errorf("cannot write %s", out)
			}
			fmt.Printf("Opened %s -> %s\n", args[0], out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: print to stdout)")
	return cmd
}
