// Package app wires application dependencies for the CLI.
//
// It loads the YAML configuration from the recordio home directory and
// builds the logger and file codec from Config, exposing them via the
// Wire struct for commands to use.
package app
