// SPDX-License-Identifier: MIT

package shell

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Session-control sentinels. A handler returns an error marked with one of
// these to end the session; every other error is reported and the session
// continues.
var (
	// ErrFatal marks errors that end the session after printing "FATAL:".
	ErrFatal = errors.New("fatal")

	// errQuit ends the session quietly (quit command).
	errQuit = errors.New("quit")
)

const hintHelp = "type help to learn more"

// userErrorf builds a recoverable error shown as "ERROR: <msg>".
func userErrorf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// errMissingArgs is the shared "wrong argument count" error.
func errMissingArgs() error {
	return errors.WithHint(errors.New("Missing arguments"), hintHelp)
}

// fatalf builds a session-ending error shown as "FATAL: <msg>".
func fatalf(cause error, format string, args ...interface{}) error {
	var err error
	if cause == nil {
		err = errors.Newf(format, args...)
	} else {
		err = errors.Wrapf(cause, format, args...)
	}

	return errors.Mark(err, ErrFatal)
}

// message renders err for the user: the message chain, then any hints, all
// joined with "; ".
func message(err error) string {
	msg := err.Error()
	if hints := errors.FlattenHints(err); hints != "" {
		msg += "; " + strings.ReplaceAll(hints, "\n--\n", "; ")
	}

	return msg
}
