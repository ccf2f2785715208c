package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the optional config file inside Home.
const ConfigFile = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string `yaml:"-"`        // config directory, e.g. $HOME/.recordio
	LogLevel string `yaml:"logLevel"` // debug, info, warn, error
	LogFile  string `yaml:"logFile"`  // optional log file name inside Home
	Encoding string `yaml:"encoding"` // default text encoding for record files
	Indent   int    `yaml:"indent"`   // default indent width for writes
}

// DefaultConfig returns the configuration used when no config file
// exists.
func DefaultConfig(home string) Config {
	return Config{
		Home:     home,
		LogLevel: "info",
		Indent:   4,
	}
}

// LoadConfig reads <home>/config.yaml. A missing file is not an error
// and yields DefaultConfig.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)
	b, err := os.ReadFile(filepath.Join(home, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Indent <= 0 {
		cfg.Indent = 4
	}
	return cfg, nil
}
