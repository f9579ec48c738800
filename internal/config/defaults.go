// SPDX-License-Identifier: MIT

package config

import "github.com/spf13/viper"

// Defaults mirrored by Default(); keep the two in sync.
const (
	DefaultPrompt      = "lsmat > "
	DefaultPrecision   = 3
	DefaultMaxMatrices = 512
	DefaultMaxIdentLen = 15
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("shell.prompt", DefaultPrompt)
	v.SetDefault("shell.precision", DefaultPrecision)
	v.SetDefault("shell.max_matrices", DefaultMaxMatrices)
	v.SetDefault("shell.max_ident_len", DefaultMaxIdentLen)
	v.SetDefault("shell.seed", 0)

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// Default returns the built-in configuration without touching files or env.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt:      DefaultPrompt,
			Precision:   DefaultPrecision,
			MaxMatrices: DefaultMaxMatrices,
			MaxIdentLen: DefaultMaxIdentLen,
		},
	}
}
