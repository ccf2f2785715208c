package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"recordio/internal/app"
	"recordio/internal/recordfile"
)

var (
	home       string
	passphrase string
	verbose    bool

	encodingName string
	indentWidth  int
	escapeASCII  bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "recordio",
		Short: "Safe reader and writer for JSON record files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".recordio")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			if encodingName == "" {
				encodingName = cfg.Encoding
			}
			if indentWidth <= 0 {
				indentWidth = cfg.Indent
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return appCtx.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.recordio)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for seal/open")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().StringVar(&encodingName, "encoding", "", "text encoding of record files (default utf-8)")
	root.PersistentFlags().IntVar(&indentWidth, "indent", 0, "indent width for writes (default 4)")
	root.PersistentFlags().BoolVar(&escapeASCII, "escape-ascii", false, "escape non-ASCII characters in output")

	root.AddCommand(showCmd(), getCmd(), setCmd(), mergeCmd(), sealCmd(), openCmd())
	return root.Execute()
}

func readOptions() recordfile.ReadOptions {
	return recordfile.ReadOptions{Encoding: encodingName}
}

func writeOptions() recordfile.WriteOptions {
	return recordfile.WriteOptions{
		Encoding:    encodingName,
		Indent:      indentWidth,
		EscapeASCII: escapeASCII,
	}
}
