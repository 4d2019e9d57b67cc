package lispcalc

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("String not closed")
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrLineTooLong        = errors.New("line too long")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrNotANumber         = errors.New("not a number")
	ErrNotAString         = errors.New("not a string")
	ErrUnknownForm        = errors.New("unknown form head")
	ErrEmptyExpression    = errors.New("empty expression")
	ErrMissingOperand     = errors.New("missing operand")
	ErrArity              = errors.New("wrong number of arguments")

	// ErrExit is returned by the evaluator when it meets (exit). It is not a
	// failure: the host is expected to stop at once with status 0.
	ErrExit = errors.New("exit")
)

// Stage names the layer that produced an Error.
type Stage int

const (
	StageLex Stage = iota
	StageParse
	StageEval
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageEval:
		return "eval"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Error is a lex, parse or eval failure at a location in the line.
type Error struct {
	Stage  Stage
	Loc    Location
	Err    error
	Detail string
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = e.Detail
	}
	return fmt.Sprintf("%s: ERROR: %s", e.Loc, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func lexError(loc Location, err error, format string, args ...interface{}) error {
	return &Error{Stage: StageLex, Loc: loc, Err: err, Detail: detail(format, args)}
}

func parseError(loc Location, err error, format string, args ...interface{}) error {
	return &Error{Stage: StageParse, Loc: loc, Err: err, Detail: detail(format, args)}
}

func evalError(loc Location, err error, format string, args ...interface{}) error {
	return &Error{Stage: StageEval, Loc: loc, Err: err, Detail: detail(format, args)}
}

func detail(format string, args []interface{}) string {
	if format == "" {
		return ""
	}
	return fmt.Sprintf(format, args...)
}
