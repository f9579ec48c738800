// SPDX-License-Identifier: MIT

// Package config loads lsmat settings from defaults, an optional TOML file
// and LSMAT_* environment variables, in that order of precedence.
package config

import "github.com/cockroachdb/errors"

// Config is the complete lsmat configuration.
type Config struct {
	Shell ShellConfig `mapstructure:"shell" toml:"shell"`
	Log   LogConfig   `mapstructure:"log" toml:"log"`
}

// ShellConfig controls the interactive command shell.
type ShellConfig struct {
	Prompt      string `mapstructure:"prompt" toml:"prompt"`
	Precision   int    `mapstructure:"precision" toml:"precision"`         // default PREC for disp/dispnzt when omitted
	MaxMatrices int    `mapstructure:"max_matrices" toml:"max_matrices"`   // identifier table capacity
	MaxIdentLen int    `mapstructure:"max_ident_len" toml:"max_ident_len"` // longest accepted identifier
	Seed        int64  `mapstructure:"seed" toml:"seed"`                   // fillrand seed; 0 draws from the clock
}

// LogConfig controls diagnostic logging (always written to stderr).
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity"`
}

// Validate rejects settings the shell cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Shell.Precision < 0:
		return errors.Newf("shell.precision must be >= 0, got %d", c.Shell.Precision)
	case c.Shell.MaxMatrices <= 0:
		return errors.Newf("shell.max_matrices must be > 0, got %d", c.Shell.MaxMatrices)
	case c.Shell.MaxIdentLen <= 0:
		return errors.Newf("shell.max_ident_len must be > 0, got %d", c.Shell.MaxIdentLen)
	case c.Log.Verbosity < 0:
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
