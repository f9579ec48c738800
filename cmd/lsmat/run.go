// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lsmat/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a command script",
	Long: `Run the shell commands in <file>, one per line, without a prompt.

The session ends at the end of the file, on "quit" or on the first FATAL
error. Exit status is 1 when it ended on a FATAL error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "failed to open script %s", args[0])
		}
		defer f.Close()
		logger.Infow("running script", logger.FieldScript, args[0])

		return runShell(cmd.Context(), f, cmd.OutOrStdout(), false)
	},
}
