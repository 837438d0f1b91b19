// Package config loads optional tool settings from a YAML file.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no config file is named explicitly.
const DefaultPath = ".bumpmig.yaml"

// DefaultExtension is the migration file extension assumed when the
// config does not set one.
const DefaultExtension = ".py"

// Config holds the settings a config file may provide. Flags override
// all of them.
type Config struct {
	// Extension of migration files, stripped to form dependency stems.
	Extension string `yaml:"extension"`

	// DatabaseURL points at the database holding the migration
	// bookkeeping table. A value wrapped in %% reads the named
	// environment variable instead.
	DatabaseURL string `yaml:"database_url"`

	// App restricts bookkeeping lookups to one application's
	// migrations. Empty means all.
	App string `yaml:"app"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Extension: DefaultExtension}
}

// Load reads a config file. A missing file at the default path yields
// the defaults; a missing file named explicitly is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "could not read config file %s", path)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse config file %s", path)
	}

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}

	if strings.HasPrefix(cfg.DatabaseURL, "%%") && strings.HasSuffix(cfg.DatabaseURL, "%%") {
		cfg.DatabaseURL = os.Getenv(strings.ReplaceAll(cfg.DatabaseURL, "%%", ""))
	}

	return cfg, nil
}
