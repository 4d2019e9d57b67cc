package lispcalc

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Op is an arithmetic operation.
type Op int

const (
	OpPlus Op = iota
	OpMinus
	OpStar
	OpSlash
)

func (op Op) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpStar:
		return "*"
	case OpSlash:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// PrintOK is the value of a print form.
const PrintOK = 1

func charToOperator(c byte) (Op, bool) {
	switch c {
	case '+':
		return OpPlus, true
	case '-':
		return OpMinus, true
	case '*':
		return OpStar, true
	case '/':
		return OpSlash, true
	}
	return 0, false
}

// doOperation applies op to x and y. Division truncates toward zero.
func doOperation(x, y int64, op Op) (int64, error) {
	switch op {
	case OpPlus:
		return x + y, nil
	case OpMinus:
		return x - y, nil
	case OpStar:
		return x * y, nil
	case OpSlash:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	}
	return 0, fmt.Errorf("invalid operation: %v", op)
}

// Evaluator walks expression trees. It keeps no state between lines besides
// where print writes to.
type Evaluator struct {
	out io.Writer
}

// NewEvaluator returns an evaluator printing to out, or to stdout if out is
// nil.
func NewEvaluator(out io.Writer) *Evaluator {
	if out == nil {
		out = os.Stdout
	}
	return &Evaluator{out: out}
}

// Eval evaluates a tree as returned by Parse. It returns ErrExit, unwrapped,
// when the line asks the program to stop.
func (ev *Evaluator) Eval(e *Expr) (int64, error) {
	if e == nil {
		return 0, evalError(Location{}, ErrEmptyExpression, "")
	}
	return ev.evalExpression(e)
}

func (ev *Evaluator) evalExpression(e *Expr) (int64, error) {
	switch left := e.Left.(type) {
	case *Expr:
		if left == nil {
			return 0, evalError(e.Loc, ErrEmptyExpression, "")
		}
		if e.Right != nil {
			return 0, evalError(e.Loc, ErrUnknownForm, "unknown form head %s", left)
		}
		return ev.evalExpression(left)
	case Token:
		return ev.evalForm(left, e.Right)
	}
	return 0, evalError(e.Loc, ErrEmptyExpression, "")
}

func (ev *Evaluator) evalForm(head Token, args *Expr) (int64, error) {
	switch head.Type {
	case Operator:
		if op, ok := charToOperator(head.Text[0]); ok {
			return ev.evalOperation(head, args, op)
		}
	case Symbol:
		switch head.Text {
		case "print":
			return ev.evalPrint(head, args)
		case "exit":
			return 0, ErrExit
		}
	}
	return 0, evalError(head.Loc, ErrUnknownForm, "unknown form head `%s`", head.Spelling())
}

// evalOperation folds op over the operands from left to right.
func (ev *Evaluator) evalOperation(head Token, args *Expr, op Op) (int64, error) {
	if args == nil {
		return 0, evalError(head.Loc, ErrMissingOperand, "operator `%s` needs at least one operand", op)
	}
	result, err := ev.operand(args)
	if err != nil {
		return 0, err
	}
	for cell := args.Right; cell != nil; cell = cell.Right {
		v, err := ev.operand(cell)
		if err != nil {
			return 0, err
		}
		result, err = doOperation(result, v, op)
		if err != nil {
			return 0, evalError(cell.Loc, err, "")
		}
	}
	return result, nil
}

func (ev *Evaluator) operand(cell *Expr) (int64, error) {
	switch left := cell.Left.(type) {
	case Token:
		if left.Type != Number {
			return 0, evalError(left.Loc, ErrNotANumber, "Expected `number` but got %s", left.Type)
		}
		n, err := strconv.ParseInt(left.Text, 10, 64)
		if err != nil {
			return 0, evalError(left.Loc, ErrNotANumber, "number %s out of range", left.Text)
		}
		return n, nil
	case *Expr:
		if left == nil {
			return 0, evalError(cell.Loc, ErrEmptyExpression, "")
		}
		return ev.evalExpression(left)
	}
	return 0, evalError(cell.Loc, ErrEmptyExpression, "")
}

func (ev *Evaluator) evalPrint(head Token, args *Expr) (int64, error) {
	if n := args.Len(); n != 1 {
		return 0, evalError(head.Loc, ErrArity, "print takes exactly one string, got %d arguments", n)
	}
	tok, ok := args.Leaf()
	if !ok {
		return 0, evalError(args.Loc, ErrNotAString, "Expected `string` but got a list")
	}
	if tok.Type != String {
		return 0, evalError(tok.Loc, ErrNotAString, "Expected `string` but got %s", tok.Type)
	}
	if _, err := fmt.Fprintln(ev.out, tok.Text); err != nil {
		return 0, err
	}
	return PrintOK, nil
}
