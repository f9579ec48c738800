// SPDX-License-Identifier: MIT

// Command lsmat is an interactive shell over sparse two-dimensional matrices.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lsmat/internal/config"
	"github.com/katalvlaran/lsmat/internal/logger"
	"github.com/katalvlaran/lsmat/internal/shell"
)

// cfg is the effective configuration, loaded once in PersistentPreRunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "lsmat",
	Short: "Sparse matrix shell",
	Long: `lsmat - a command shell over sparse two-dimensional matrices.

Reads commands from standard input, one per line. Type "help" inside the
shell for the command list.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (LSMAT_* prefix, e.g. LSMAT_SHELL_SEED)
3. Config file (--config, ./lsmat.toml or ~/.lsmat/lsmat.toml)
4. Default values

Examples:
  lsmat                     # interactive session
  lsmat run script.lsm      # run a script
  lsmat -vv run script.lsm  # with debug logs on stderr
  lsmat config              # show effective configuration`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { logger.Cleanup() },
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), isTerminal(cmd.InOrStdin()))
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default ./lsmat.toml or ~/.lsmat/lsmat.toml)")
	pf.CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	pf.Bool("json", false, "Write logs as JSON")
	pf.Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity, _ = cmd.Flags().GetCount("verbose")
	}
	if cmd.Flags().Changed("json") {
		cfg.Log.JSON, _ = cmd.Flags().GetBool("json")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		pterm.DisableColor()
	}

	if err = logger.Initialize(cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Debugw("configuration loaded", "verbosity", logger.LevelName(cfg.Log.Verbosity))

	return nil
}

// runShell runs one session over in and reports how it ended.
func runShell(ctx context.Context, in io.Reader, out io.Writer, interactive bool) error {
	sh := shell.New(cfg.Shell,
		shell.WithOutput(out),
		shell.WithLogger(logger.ComponentLogger("shell")),
		shell.WithInteractive(interactive))

	return sh.Run(ctx, in)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	// The shell already printed FATAL on stdout.
	if !errors.Is(err, shell.ErrFatal) {
		fmt.Fprintln(os.Stderr, pterm.Red("Error: ")+err.Error())
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintln(os.Stderr, "Hint: "+hints)
		}
	}
	logger.Errorw("lsmat exited with error", logger.FieldError, err)
	logger.Cleanup()
	os.Exit(1)
}
