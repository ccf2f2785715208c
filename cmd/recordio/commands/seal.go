package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"recordio/internal/sealed"
)

func sealCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "seal <file>",
		Short: "Encrypt a record file with a passphrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			rec := appCtx.Files.Read(args[0], readOptions())
			if rec == nil {
				return fmt.Errorf("cannot read %s", args[0])
			}
			if out == "" {
				out = args[0] + ".enc"
			}
			if err := sealed.Write(rec, out, passphrase); err != nil {
				return err
			}
			fmt.Printf("Sealed %s -> %s\n", args[0], out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <file>.enc)")
	return cmd
}
