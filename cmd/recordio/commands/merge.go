package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <target> <source>...",
		Short: "Merge record files into a target file",
		Long: "Merge loads the target record file (a missing target starts empty),\n" +
			"merges each source file into it in order (later keys win), and\n" +
			"writes the result back to the target path.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := appCtx.Files.LoadInto(args[0], nil, readOptions())

			for _, src := range args[1:] {
				if _, ok := appCtx.Files.LoadInto(src, target, readOptions()); !ok {
					return fmt.Errorf("cannot load %s", src)
				}
			}

			if !appCtx.Files.Write(target, args[0], writeOptions()) {
				return fmt.Errorf("cannot write %s", args[0])
			}
			return nil
		},
	}
}
