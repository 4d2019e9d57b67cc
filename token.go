package lispcalc

import (
	"strconv"
	"strings"
)

// Location is where a token was found. Row holds the byte offset of the
// token within the line; Col is not tracked.
type Location struct {
	FilePath string
	Row      int
	Col      int
}

func (l Location) String() string {
	if l.FilePath != "" {
		return l.FilePath + ":" + strconv.Itoa(l.Row)
	}
	return strconv.Itoa(l.Row)
}

type TokenType int

const (
	OpenParen TokenType = iota
	CloseParen
	Number
	Operator
	EOL
	EOF
	Symbol
	String

	numTokenTypes
)

var tokenTypeNames = [numTokenTypes]string{
	OpenParen:  "(",
	CloseParen: ")",
	Number:     "number",
	Operator:   "operator",
	EOL:        "end of line",
	EOF:        "end of file",
	Symbol:     "symbol",
	String:     "string",
}

func (t TokenType) String() string {
	if t < 0 || t >= numTokenTypes {
		return "TokenType(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenTypeNames[t]
}

// TokenSet is a set of token types, used to describe what the lexer is
// allowed to produce next.
type TokenSet struct {
	bits uint16
}

func NewTokenSet(types ...TokenType) TokenSet {
	var s TokenSet
	for _, t := range types {
		s.bits |= 1 << uint(t)
	}
	return s
}

// Has reports whether t is a member of the set.
func (s TokenSet) Has(t TokenType) bool {
	if t < 0 || t >= numTokenTypes {
		return false
	}
	return s.bits&(1<<uint(t)) != 0
}

// Types returns the members in declaration order.
func (s TokenSet) Types() []TokenType {
	var types []TokenType
	for t := TokenType(0); t < numTokenTypes; t++ {
		if s.Has(t) {
			types = append(types, t)
		}
	}
	return types
}

// String renders the set as a disjunction, e.g. "number or operator".
func (s TokenSet) String() string {
	var names []string
	for _, t := range s.Types() {
		names = append(names, t.String())
	}
	return strings.Join(names, " or ")
}

// MaxTokenText is the longest text a token can carry.
const MaxTokenText = 255

type Token struct {
	Loc  Location
	Type TokenType
	Text string
}

// Spelling returns the token as it was written in the source.
func (t Token) Spelling() string {
	if t.Type == String {
		return `"` + t.Text + `"`
	}
	return t.Text
}

func (t Token) String() string {
	switch t.Type {
	case EOL, EOF:
		return t.Type.String()
	}
	return t.Spelling()
}

func (Token) term() {}
