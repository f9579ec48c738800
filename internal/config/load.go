// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. LSMAT_SHELL_SEED.
const EnvPrefix = "LSMAT"

// FileName is the config file looked up when no explicit path is given.
const FileName = "lsmat.toml"

// Load reads configuration. With an empty path the first lsmat.toml found in
// the working directory, then in $HOME/.lsmat, is used; a missing file is not
// an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := NewViper()

	if path == "" {
		path = findConfig()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates the settings held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(err, "check "+FileName+" and "+EnvPrefix+"_* environment variables")
	}

	return &cfg, nil
}

// NewViper returns a viper instance with defaults and env binding applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// findConfig returns the first existing config file path, or "".
func findConfig() string {
	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".lsmat", FileName))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
