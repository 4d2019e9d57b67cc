package lispcalc

import (
	"strings"
)

// MaxLineLength is the capacity of the line buffer, not counting the
// terminating newline.
const MaxLineLength = 255

// Lexer hands out the tokens of a single line one at a time.
type Lexer struct {
	// FilePath is copied into the location of every token.
	FilePath string

	text   string
	cursor int
}

// NewLexer returns a lexer over line. A trailing newline, if present, is
// lexed as the end of line; lines without one end at the end of file.
func NewLexer(line string) (*Lexer, error) {
	if n := len(strings.TrimSuffix(line, "\n")); n > MaxLineLength {
		return nil, lexError(Location{Row: MaxLineLength}, ErrLineTooLong,
			"line too long: %d characters, at most %d allowed", n, MaxLineLength)
	}
	return &Lexer{text: line}, nil
}

// Pos returns the offset of the next unread character.
func (l *Lexer) Pos() int {
	return l.cursor
}

func (l *Lexer) loc(pos int) Location {
	return Location{FilePath: l.FilePath, Row: pos}
}

// peek returns the current character, or 0 past the end of the buffer.
func (l *Lexer) peek() byte {
	if l.cursor >= len(l.text) {
		return 0
	}
	return l.text[l.cursor]
}

// stripWhitespace skips blanks. A newline counts as a blank unless it is the
// last character of the buffer, where it marks the end of the line.
func (l *Lexer) stripWhitespace() {
	for l.cursor < len(l.text) {
		c := l.text[l.cursor]
		if c == '\n' && l.cursor == len(l.text)-1 {
			return
		}
		if !isSpace(c) {
			return
		}
		l.cursor++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isAlnum(c byte) bool {
	return isLetter(c) || isDigit(c)
}

// accum consumes the longest run of characters satisfying valid.
func (l *Lexer) accum(valid func(byte) bool) string {
	start := l.cursor
	for l.cursor < len(l.text) && valid(l.text[l.cursor]) {
		l.cursor++
	}
	return l.text[start:l.cursor]
}

// NextToken scans the next token. Once the end of the buffer is reached it
// keeps returning EOF.
func (l *Lexer) NextToken() (Token, error) {
	l.stripWhitespace()

	start := l.cursor
	tok := Token{Loc: l.loc(start)}

	c := l.peek()
	switch {
	case c == 0:
		tok.Type = EOF
	case c == '\n':
		l.cursor++
		tok.Type = EOL
	case c == '"':
		l.cursor++
		for l.peek() != '"' {
			if l.peek() == 0 {
				return Token{}, lexError(tok.Loc, ErrUnterminatedString, "")
			}
			l.cursor++
		}
		tok.Type = String
		tok.Text = l.text[start+1 : l.cursor]
		l.cursor++
	case c == '(':
		l.cursor++
		tok.Type = OpenParen
		tok.Text = "("
	case c == ')':
		l.cursor++
		tok.Type = CloseParen
		tok.Text = ")"
	case c == '+' || c == '-' || c == '*' || c == '/':
		l.cursor++
		tok.Type = Operator
		tok.Text = string(c)
	case isDigit(c):
		tok.Type = Number
		tok.Text = l.accum(isDigit)
	case isLetter(c):
		tok.Type = Symbol
		tok.Text = l.accum(isAlnum)
	default:
		return Token{}, lexError(tok.Loc, ErrUnexpectedChar, "unexpected character %q", c)
	}
	return tok, nil
}

// ExpectToken scans the next token and fails unless its type is in want.
func (l *Lexer) ExpectToken(want TokenSet) (Token, error) {
	tok, err := l.NextToken()
	if err != nil {
		return Token{}, err
	}
	if !want.Has(tok.Type) {
		return Token{}, parseError(tok.Loc, ErrUnexpectedToken,
			"Expected `%s` but got %s", want, tok.Type)
	}
	return tok, nil
}
