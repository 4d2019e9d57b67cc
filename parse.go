package lispcalc

// Parser builds expression trees from the tokens of one line.
type Parser struct {
	lex   *Lexer
	depth int
}

func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse reads the single top-level form of the line and returns it wrapped
// in one cell, as the evaluator expects. A blank line gives a nil *Expr and
// no error. Anything after the closing paren other than the end of the line
// is an error.
func (p *Parser) Parse() (*Expr, error) {
	open, err := p.lex.ExpectToken(NewTokenSet(OpenParen, EOL, EOF))
	if err != nil {
		return nil, err
	}
	if open.Type != OpenParen {
		return nil, nil
	}

	p.depth++
	form, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.lex.ExpectToken(NewTokenSet(EOL, EOF)); err != nil {
		return nil, err
	}
	return &Expr{Loc: open.Loc, Left: form}, nil
}

// ParseExpression parses list elements up to and including the closing
// paren of the current list, returning the first cell or nil for an empty
// list. Each opening paren starts a nested form in the left of a cell.
// Called on a fresh line it reads "(+ 1 2)" as a one-cell list holding the
// form, the same shape Parse returns, except that elements after the form
// are kept in the tail instead of being rejected.
func (p *Parser) ParseExpression() (*Expr, error) {
	tok, err := p.lex.NextToken()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case CloseParen:
		if p.depth > 0 {
			p.depth--
		}
		return nil, nil
	case OpenParen:
		p.depth++
		nested, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		rest, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		return &Expr{Loc: tok.Loc, Left: nested, Right: rest}, nil
	case Number, Operator, Symbol, String:
		rest, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		return &Expr{Loc: tok.Loc, Left: tok, Right: rest}, nil
	}

	if p.depth > 0 {
		return nil, parseError(tok.Loc, ErrUnexpectedToken, "Expected `%s` but got %s",
			NewTokenSet(CloseParen), tok.Type)
	}
	return nil, nil
}

// Parse lexes and parses a single line.
func Parse(line string) (*Expr, error) {
	lex, err := NewLexer(line)
	if err != nil {
		return nil, err
	}
	return NewParser(lex).Parse()
}
