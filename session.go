package lispcalc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Policy decides what a Session does after a line fails.
type Policy int

const (
	// AbortOnError stops at the first failing line with status 1.
	AbortOnError Policy = iota
	// ContinueOnError reports the failure and moves on to the next line.
	ContinueOnError
)

// Session reads lines, evaluates each one on its own and prints the results.
type Session struct {
	Out    io.Writer
	Err    io.Writer
	Prompt string
	Policy Policy

	// FilePath labels diagnostics when the input comes from a file.
	FilePath string
}

// NewSession returns a session writing results to out and diagnostics to
// errOut. Nil writers mean stdout and stderr.
func NewSession(out, errOut io.Writer) *Session {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Session{
		Out: out,
		Err: errOut,
	}
}

// RunLine lexes, parses and evaluates one line. The boolean is false when
// the line held no form. ErrExit is passed through as is, and in that case
// the tree is not released.
func (s *Session) RunLine(line string) (int64, bool, error) {
	lex, err := NewLexer(line)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Loc.FilePath = s.FilePath
		}
		return 0, false, err
	}
	lex.FilePath = s.FilePath

	expr, err := NewParser(lex).Parse()
	if err != nil || expr == nil {
		return 0, false, err
	}

	v, err := NewEvaluator(s.Out).Eval(expr)
	if errors.Is(err, ErrExit) {
		return 0, true, err
	}
	expr.Release()
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// Run processes r line by line and returns the exit status: 0 at the end of
// input or on (exit), 1 when a line fails under AbortOnError or r cannot be
// read.
func (s *Session) Run(r io.Reader) int {
	scanner := bufio.NewScanner(r)
	for {
		if s.Prompt != "" {
			fmt.Fprint(s.Out, s.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		v, ok, err := s.RunLine(scanner.Text() + "\n")
		switch {
		case errors.Is(err, ErrExit):
			return 0
		case err != nil:
			fmt.Fprintln(s.Err, err)
			if s.Policy == AbortOnError {
				return 1
			}
		case ok:
			fmt.Fprintln(s.Out, v)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(s.Err, err)
		return 1
	}
	return 0
}
