// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/katalvlaran/lsmat/internal/logger"
	"github.com/katalvlaran/lsmat/matrix"
)

// command binds a name to its handler and usage line.
type command struct {
	name    string
	usage   string
	summary string
	run     func(s *Shell, args []string) error
}

// commands lists every command in help order. Filled in init to break the
// help -> commands initialization cycle.
var (
	commands []command
	byName   map[string]*command
)

func init() {
	commands = []command{
		{"new", "new <ID> <DIM0> <DIM1>", "create an empty DIM0×DIM1 matrix", cmdNew},
		{"fillrand", "fillrand <ID>", "fill every cell with a uniform value in [0,1)", cmdFillRand},
		{"fillident", "fillident <ID>", "overwrite a square matrix with the identity", cmdFillIdent},
		{"set", "set <ID> <I0> <I1> <VAL>", "store VAL at (I0,I1); 0 deletes", cmdSet},
		{"eval", "eval <DEST>=<EXPR>", "EXPR is A+B, A-B, A*B or A.T; DEST must be new", cmdEval},
		{"shapeof", "shapeof <ID>", "print (rows,cols)", cmdShapeOf},
		{"disp", "disp <ID> [PREC]", "print the full matrix", cmdDisp},
		{"dispnzt", "dispnzt <ID> [PREC]", "print stored entries as (i,j): v", cmdDispNZT},
		{"dbg_nodes", "dbg_nodes <ID>", "count stored cells by walking the row lists", cmdDbgNodes},
		{"dbg_mem", "dbg_mem", "print heap and process memory", cmdDbgMem},
		{"del", "del <ID>", "destroy a matrix and free its identifier", cmdDel},
		{"quit", "quit", "end the session", cmdQuit},
		{"help", "help", "list commands", cmdHelp},
	}
	byName = make(map[string]*command, len(commands))
	for k := range commands {
		byName[commands[k].name] = &commands[k]
	}
}

func lookup(name string) (*command, bool) {
	c, ok := byName[name]

	return c, ok
}

// wantArgs enforces an exact argument count.
func wantArgs(args []string, n int) error {
	if len(args) != n {
		return errMissingArgs()
	}

	return nil
}

func cmdNew(s *Shell, args []string) error {
	if err := wantArgs(args, 3); err != nil {
		return err
	}
	name := args[0]
	if err := s.reg.validate(name); err != nil {
		return err
	}
	rows, err1 := strconv.Atoi(args[1])
	cols, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil || rows <= 0 || cols <= 0 {
		return userErrorf("Invalid dimension size")
	}

	m, err := matrix.NewSparse(rows, cols, matrix.WithLogger(s.mlog))
	if err != nil {
		return fatalf(err, "Matrix creation failed")
	}
	if err = s.reg.add(name, m); err != nil {
		m.Destroy()

		return err
	}
	s.log.Debugw("matrix created", logger.FieldIdent, name, logger.FieldRows, rows, logger.FieldCols, cols)

	return nil
}

func cmdFillRand(s *Shell, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	m, err := s.reg.get(args[0])
	if err != nil {
		return err
	}
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = m.Set(i, j, s.rng.Float64()); err != nil {
				return fatalf(err, "Matrix element set failed")
			}
		}
	}

	return nil
}

func cmdFillIdent(s *Shell, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	m, err := s.reg.get(args[0])
	if err != nil {
		return err
	}
	rows, cols := m.Shape()
	if rows != cols {
		return userErrorf("Not a square matrix")
	}
	if err = m.Zero(); err != nil {
		return fatalf(err, "Matrix zeroing failed")
	}
	for i := 0; i < rows; i++ {
		if err = m.Set(i, i, 1); err != nil {
			return fatalf(err, "Matrix element set failed")
		}
	}

	return nil
}

func cmdSet(s *Shell, args []string) error {
	if err := wantArgs(args, 4); err != nil {
		return err
	}
	i, err1 := strconv.Atoi(args[1])
	j, err2 := strconv.Atoi(args[2])
	v, err3 := strconv.ParseFloat(args[3], 64)
	if err := errors.CombineErrors(errors.CombineErrors(err1, err2), err3); err != nil {
		return errors.Wrap(err, "Invalid number")
	}
	m, err := s.reg.get(args[0])
	if err != nil {
		return err
	}
	if err = m.Set(i, j, v); err != nil {
		return errors.WithHint(errors.Wrap(err, "Failed to set value"),
			fmt.Sprintf("valid indices are 0..%d and 0..%d", m.Rows()-1, m.Cols()-1))
	}

	return nil
}

func cmdEval(s *Shell, args []string) error {
	if len(args) == 0 {
		return errMissingArgs()
	}
	dest, e, err := parseAssignment(strings.Join(args, ""))
	if err != nil {
		return err
	}
	if err = s.reg.validate(dest); err != nil {
		return err
	}

	a, err := s.reg.get(e.lhs)
	if err != nil {
		return err
	}
	var b *matrix.Sparse
	if e.op != opTranspose {
		if b, err = s.reg.get(e.rhs); err != nil {
			return err
		}
	}

	res, err := e.apply(a, b)
	switch matrix.StatusOf(err) {
	case matrix.StatusOK:
	case matrix.StatusShapeMismatch:
		return userErrorf("Inconsistent shapes for '%c': (%d,%d) and (%d,%d)",
			e.op, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	default:
		s.log.Errorw("arithmetic failed", logger.FieldStatus, matrix.StatusOf(err).String(), logger.FieldError, err)

		return fatalf(err, "General arithmetic error")
	}
	if err = s.reg.add(dest, res); err != nil {
		res.Destroy()

		return err
	}
	s.log.Debugw("matrix evaluated", logger.FieldIdent, dest, logger.FieldNNZ, res.NNZ())

	return nil
}

func cmdShapeOf(s *Shell, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	m, err := s.reg.get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "(%d,%d)\n", m.Rows(), m.Cols())

	return nil
}

// matrixAndPrecision parses "<ID> [PREC]".
func (s *Shell) matrixAndPrecision(args []string) (*matrix.Sparse, int, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, 0, errMissingArgs()
	}
	prec := s.cfg.Precision
	if len(args) == 2 {
		p, err := strconv.Atoi(args[1])
		if err != nil || p < 0 {
			return nil, 0, userErrorf("Invalid PREC; non-negative integer wanted")
		}
		prec = p
	}
	m, err := s.reg.get(args[0])
	if err != nil {
		return nil, 0, err
	}

	return m, prec, nil
}

func cmdDisp(s *Shell, args []string) error {
	m, prec, err := s.matrixAndPrecision(args)
	if err != nil {
		return err
	}
	rows, cols := m.Shape()
	row := make([]float64, cols)
	var b strings.Builder
	for i := 0; i < rows; i++ {
		clear(row)
		entries, lerr := m.Line(matrix.Row, i)
		if lerr != nil {
			return fatalf(lerr, "Matrix read failed")
		}
		for _, e := range entries {
			row[e.Col] = e.Value
		}
		b.Reset()
		for _, v := range row {
			b.WriteString(strconv.FormatFloat(v, 'f', prec, 64))
			b.WriteByte(' ')
		}
		fmt.Fprintln(s.out, b.String())
	}

	return nil
}

func cmdDispNZT(s *Shell, args []string) error {
	m, prec, err := s.matrixAndPrecision(args)
	if err != nil {
		return err
	}
	for e := range m.NonZero() {
		fmt.Fprintf(s.out, "(%d,%d): %.*f\n", e.Row, e.Col, prec, e.Value)
	}

	return nil
}

func cmdDbgNodes(s *Shell, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	m, err := s.reg.get(args[0])
	if err != nil {
		return err
	}
	n := 0
	m.Do(func(int, int, float64) bool {
		n++

		return true
	})
	fmt.Fprintln(s.out, n)

	return nil
}

func cmdDbgMem(s *Shell, args []string) error {
	if err := wantArgs(args, 0); err != nil {
		return err
	}
	st := readMem()
	fmt.Fprintf(s.out, "Allocated: %dB\n", st.heap)
	if st.rssErr != nil {
		s.log.Warnw("process memory unavailable", logger.FieldError, st.rssErr)

		return nil
	}
	fmt.Fprintf(s.out, "RSS: %dB\n", st.rss)
	s.log.Debugw("memory sampled", logger.FieldHeap, st.heap, logger.FieldRSS, st.rss)

	return nil
}

func cmdDel(s *Shell, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}

	return s.reg.remove(args[0])
}

func cmdQuit(_ *Shell, _ []string) error { return errQuit }

func cmdHelp(s *Shell, _ []string) error {
	for _, c := range commands {
		fmt.Fprintf(s.out, "%-26s %s\n", c.usage, pterm.Gray(c.summary))
	}

	return nil
}
