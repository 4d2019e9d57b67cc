package lispcalc

import (
	"strings"
)

// Term is what a cell holds on its left: a Token or a nested *Expr.
type Term interface {
	term()
}

// Expr is one cell of a list. Left is the element, Right the rest of the
// list, nil at its end. A nested form is an element whose Left is an *Expr;
// a nil *Expr there stands for ().
type Expr struct {
	Loc   Location
	Left  Term
	Right *Expr
}

func (*Expr) term() {}

// Leaf returns the token held on the left, if any.
func (e *Expr) Leaf() (Token, bool) {
	tok, ok := e.Left.(Token)
	return tok, ok
}

// Len returns the number of cells in the list starting at e.
func (e *Expr) Len() int {
	n := 0
	for ; e != nil; e = e.Right {
		n++
	}
	return n
}

// Release tears the tree down, nested forms and list tails alike, and
// returns the number of cells it visited. The tree is unusable afterwards.
func (e *Expr) Release() int {
	if e == nil {
		return 0
	}
	n := 1
	switch left := e.Left.(type) {
	case *Expr:
		n += left.Release()
	case Token:
	}
	n += e.Right.Release()
	e.Left = nil
	e.Right = nil
	return n
}

// String renders the list starting at e, e.g. "(+ 1 (* 2 3))".
func (e *Expr) String() string {
	var b strings.Builder
	e.buildString(&b)
	return b.String()
}

func (e *Expr) buildString(b *strings.Builder) {
	b.WriteByte('(')
	for cell := e; cell != nil; cell = cell.Right {
		switch left := cell.Left.(type) {
		case Token:
			b.WriteString(left.Spelling())
		case *Expr:
			left.buildString(b)
		}
		if cell.Right != nil {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(')')
}
