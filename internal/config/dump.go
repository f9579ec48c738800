// SPDX-License-Identifier: MIT

package config

import (
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Dump renders cfg as TOML, in the same layout Load accepts.
func Dump(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}

	return data, nil
}
