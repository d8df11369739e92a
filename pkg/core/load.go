// pkg/core/load.go
package core

import (
	"os"

	manifest "github.com/joeydtaylor/steeze-api/pkg/manifest"
	toml "github.com/pelletier/go-toml/v2"
)

// LoadConfig reads and validates a TOML manifest. A missing file yields the
// validated zero config so the server can start on defaults.
func LoadConfig(path string) (manifest.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return manifest.Config{}, err
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (manifest.Config, error) {
	var cfg manifest.Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return manifest.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return manifest.Config{}, err
	}
	return cfg, nil
}
