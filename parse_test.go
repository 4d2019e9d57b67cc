package lispcalc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "(+ 1 2)",
			want:  "((+ 1 2))",
		},
		{
			input: "(+ 1 (* 2 3))\n",
			want:  "((+ 1 (* 2 3)))",
		},
		{
			input: `(print "hi")`,
			want:  `((print "hi"))`,
		},
		{
			input: "()",
			want:  "(())",
		},
		{
			input: "((+ 1 2))",
			want:  "(((+ 1 2)))",
		},
		{
			input: "  ( +  (- 3 1) (/ 8 2)\t4 )  \n",
			want:  "((+ (- 3 1) (/ 8 2) 4))",
		},
		{
			input: "(exit)",
			want:  "((exit))",
		},
	}
	for _, test := range tests {
		expr, err := Parse(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		got := expr.String()
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseBlank(t *testing.T) {
	for _, input := range []string{"", "\n", "   \t\n"} {
		expr, err := Parse(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
		}
		if expr != nil {
			t.Errorf("want no expression for %q but got %v", input, expr)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
		msg   string
	}{
		{"(+ 1 2", ErrUnexpectedToken, "6: ERROR: Expected `)` but got end of file"},
		{"(+ 1 (* 2 3)\n", ErrUnexpectedToken, "12: ERROR: Expected `)` but got end of line"},
		{"(+ 1 2) 3", ErrUnexpectedToken, "8: ERROR: Expected `end of line or end of file` but got number"},
		{"(+ 1 2))", ErrUnexpectedToken, "7: ERROR: Expected `end of line or end of file` but got )"},
		{"+ 1 2", ErrUnexpectedToken, "0: ERROR: Expected `( or end of line or end of file` but got operator"},
		{")", ErrUnexpectedToken, "0: ERROR: Expected `( or end of line or end of file` but got )"},
		{`("abc)`, ErrUnterminatedString, "1: ERROR: String not closed"},
		{"(+ 1 ?)", ErrUnexpectedChar, "5: ERROR: unexpected character '?'"},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: want %v but got %v", test.input, test.err, err)
			continue
		}
		if err.Error() != test.msg {
			t.Errorf("%q: want %q but got %q", test.input, test.msg, err.Error())
		}
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(+ 1 2)\n", "((+ 1 2))"},
		{"(+ 1 2) 3\n", "((+ 1 2) 3)"},
		{"+ 1", "(+ 1)"},
		{")", "()"},
		{"", "()"},
	}
	for _, test := range tests {
		lex, err := NewLexer(test.input)
		if err != nil {
			t.Fatal(err)
		}
		expr, err := NewParser(lex).ParseExpression()
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got := expr.String(); got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func tok(row int, typ TokenType, text string) Token {
	return Token{Loc: at(row), Type: typ, Text: text}
}

func TestParseTree(t *testing.T) {
	expr, err := Parse("(- 7 (+ 1 2))")
	if err != nil {
		t.Fatal(err)
	}
	want := &Expr{
		Loc: at(0),
		Left: &Expr{
			Loc:  at(1),
			Left: tok(1, Operator, "-"),
			Right: &Expr{
				Loc:  at(3),
				Left: tok(3, Number, "7"),
				Right: &Expr{
					Loc: at(5),
					Left: &Expr{
						Loc:  at(6),
						Left: tok(6, Operator, "+"),
						Right: &Expr{
							Loc:  at(8),
							Left: tok(8, Number, "1"),
							Right: &Expr{
								Loc:  at(10),
								Left: tok(10, Number, "2"),
							},
						},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, expr); diff != "" {
		t.Error(diff)
	}
}

func TestRelease(t *testing.T) {
	tests := []struct {
		input string
		cells int
	}{
		{"(- 7 (+ 1 2))", 7},
		{"(+ 1 2 3 4)", 6},
		{"()", 1},
		{"(+ (- (* 1 2)) 3)", 9},
	}
	for _, test := range tests {
		expr, err := Parse(test.input)
		if err != nil {
			t.Fatal(err)
		}
		if got := expr.Release(); got != test.cells {
			t.Errorf("%q: released %d cells, expected %d", test.input, got, test.cells)
		}
		if expr.Left != nil || expr.Right != nil {
			t.Errorf("%q: root still holds children after release", test.input)
		}
	}
	var empty *Expr
	if n := empty.Release(); n != 0 {
		t.Errorf("nil tree released %d cells", n)
	}
}
