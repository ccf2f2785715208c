// Package commands defines the recordio CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - show   Print a record file
//   - get    Print a single value from a record file
//   - set    Set keys in a record file (read-modify-write)
//   - merge  Merge record files into a target file
//   - seal   Encrypt a record file with a passphrase
//   - open   Decrypt a sealed record file
//
// # Implementation
//
// The root command loads the YAML config from the recordio home
// directory and builds the logger and file codec before any subcommand
// runs, so handlers share one app context. Formatting flags
// (--encoding, --indent, --escape-ascii) override the config file.
package commands
