// SPDX-License-Identifier: MIT

// Package shell is the line-oriented command interpreter for lsmat. It owns a
// table of named sparse matrices and maps each command onto the public API of
// package matrix.
//
// Output contract (stdout):
//   - a successful command prints its own output followed by "OK\t<elapsed>";
//   - a recoverable failure prints "ERROR: <reason>" and the session continues;
//   - an unrecoverable failure prints "FATAL: <reason>" and the session ends.
//
// Diagnostics go to the zap logger, never to the command output.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/katalvlaran/lsmat/internal/config"
	"github.com/katalvlaran/lsmat/internal/logger"
)

// MaxLineLen is the longest command line accepted, in bytes. Longer lines
// are reported and skipped.
const MaxLineLen = 1 << 20

// Shell is one interpreter session. Not safe for concurrent use.
type Shell struct {
	cfg         config.ShellConfig
	out         io.Writer
	log         *zap.SugaredLogger
	mlog        *zap.Logger // handed to every matrix the session creates
	reg         *registry
	rng         *rand.Rand
	session     uuid.UUID
	interactive bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithOutput sets the command output sink (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *Shell) { s.out = w }
}

// WithLogger sets the diagnostics logger (default no-op).
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// WithInteractive turns the prompt on.
func WithInteractive(on bool) Option {
	return func(s *Shell) { s.interactive = on }
}

// New creates a session with an empty identifier table.
func New(cfg config.ShellConfig, opts ...Option) *Shell {
	s := &Shell{
		cfg:     cfg,
		out:     os.Stdout,
		log:     zap.NewNop().Sugar(),
		reg:     newRegistry(cfg.MaxMatrices, cfg.MaxIdentLen),
		session: uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
	s.log = s.log.With(logger.FieldSessionID, s.session.String())
	s.mlog = s.log.Desugar().Named("matrix")

	return s
}

// Session returns the session identifier attached to every log line.
func (s *Shell) Session() uuid.UUID { return s.session }

// Run reads commands from in until quit, a fatal error, end of input or ctx
// cancellation. Every matrix is destroyed before Run returns.
// Returns an error marked ErrFatal when the session ended on a fatal command.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.log.Infow("session started", "interactive", s.interactive)
	defer s.close()

	r := bufio.NewReader(in)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.interactive {
			fmt.Fprint(s.out, s.cfg.Prompt)
		}
		line, tooLong, err := readLine(r, MaxLineLen)
		if err != nil {
			if s.interactive {
				fmt.Fprintln(s.out)
			}
			if errors.Is(err, io.EOF) {
				return nil
			}

			return errors.Wrap(err, "read command")
		}
		lineNo++
		if tooLong {
			s.printError(userErrorf("Line too long (%d bytes max)", MaxLineLen))
			s.log.Warnw("line dropped", logger.FieldLine, lineNo)

			continue
		}
		err = s.Exec(line)
		switch {
		case err == nil:
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, ErrFatal):
			s.log.Errorw("session aborted", logger.FieldLine, lineNo, logger.FieldError, err)

			return err
		}
	}
}

// readLine returns the next input line without its terminator. A line longer
// than limit is drained to its end and reported with tooLong set. io.EOF is
// returned only when no line is left.
func readLine(r *bufio.Reader, limit int) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
		started bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				return string(buf), tooLong, nil
			}

			return "", false, err
		}
		started = true
		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// Exec runs a single command line and prints its result. It returns nil for
// success and for recoverable errors (already printed); errQuit or an error
// marked ErrFatal when the session must end.
func (s *Shell) Exec(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		s.printError(errors.WithHint(errors.Wrap(err, "Invalid syntax"), hintHelp))

		return nil
	}
	if len(args) == 0 {
		return nil
	}

	cmd, ok := lookup(args[0])
	if !ok {
		s.printError(errors.WithHint(errors.New("Invalid command"), hintHelp))

		return nil
	}

	start := time.Now()
	err = cmd.run(s, args[1:])
	elapsed := time.Since(start)
	s.log.Debugw("command",
		logger.FieldCommand, cmd.name,
		logger.FieldDurationMS, float64(elapsed.Microseconds())/1000,
		logger.FieldError, err)

	switch {
	case err == nil:
		fmt.Fprintf(s.out, "%s\t%s\n", pterm.Green("OK"), formatElapsed(elapsed))

		return nil
	case errors.Is(err, errQuit):
		return err
	case errors.Is(err, ErrFatal):
		fmt.Fprintf(s.out, "%s %s\n", pterm.Red("FATAL:"), message(err))

		return err
	default:
		s.printError(err)

		return nil
	}
}

// close releases every matrix of the session.
func (s *Shell) close() {
	fmt.Fprintf(s.out, "%s Cleaning up and quitting\n", pterm.Cyan("INFO:"))
	n := s.reg.destroyAll()
	s.log.Infow("session closed", "destroyed", n)
}

func (s *Shell) printError(err error) {
	fmt.Fprintf(s.out, "%s %s\n", pterm.Yellow("ERROR:"), message(err))
}

// formatElapsed renders d as seconds with nanosecond digits, e.g. 0.000012345s.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%d.%09ds", int64(d/time.Second), int64(d%time.Second))
}
