package tokens

import (
	"fmt"
)

// LexError reports a character sequence that is not a Rust token.
type LexError struct {
	Offset int
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// joined lists the multi-character puncts kept as single tokens. ">>" is
// deliberately absent so nested generic arguments close one level at a time.
var joined = map[string]bool{
	"::": true,
	"->": true,
	"=>": true,
}

const singlePuncts = "#[](){}<>,;:.=&*+-!?@$/%^|~"

// lexer scans Rust source text into tokens.
type lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

// Lex tokenizes src. Comments and whitespace are dropped.
func Lex(src string) (Stream, error) {
	s, _, err := LexWithOffsets(src)
	return s, err
}

// MustLex is like Lex but panics on error.
func MustLex(src string) Stream {
	s, err := Lex(src)
	if err != nil {
		panic(err)
	}

	return s
}

// LexWithOffsets tokenizes src and also returns the byte offset of each token.
func LexWithOffsets(src string) (Stream, []int, error) {
	l := &lexer{input: src}
	l.readChar()

	var (
		out     Stream
		offsets []int
	)

	for {
		if err := l.skipTrivia(); err != nil {
			return nil, nil, err
		}

		if l.ch == 0 && l.position >= len(l.input) {
			return out, offsets, nil
		}

		start := l.position

		tok, err := l.next()
		if err != nil {
			return nil, nil, err
		}

		out = append(out, tok)
		offsets = append(offsets, start)
	}
}

// readChar reads the next character and advances the position
func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++
}

func (l *lexer) peekChar() byte {
	return l.peekAt(0)
}

func (l *lexer) peekAt(n int) byte {
	if l.readPosition+n >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition+n]
}

func (l *lexer) errorf(offset int, format string, args ...any) error {
	return &LexError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// skipTrivia skips whitespace and comments.
func (l *lexer) skipTrivia() error {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			start := l.position
			l.readChar()
			l.readChar()

			depth := 1
			for depth > 0 {
				switch {
				case l.ch == 0 && l.position >= len(l.input):
					return l.errorf(start, "unterminated block comment")
				case l.ch == '/' && l.peekChar() == '*':
					depth++
					l.readChar()
				case l.ch == '*' && l.peekChar() == '/':
					depth--
					l.readChar()
				}
				l.readChar()
			}
		default:
			return nil
		}
	}
}

func (l *lexer) next() (Token, error) {
	start := l.position

	switch {
	case l.ch == 'r' && l.peekChar() == '#' && isIdentStart(l.peekAt(1)):
		l.readChar()
		l.readChar()

		return Ident("r#" + l.readIdentifier()), nil

	case l.ch == 'r' && (l.peekChar() == '"' || (l.peekChar() == '#' && (l.peekAt(1) == '#' || l.peekAt(1) == '"'))):
		l.readChar()
		return l.readRawString(start)

	case l.ch == 'b' && l.peekChar() == '"':
		l.readChar()
		return l.readQuoted(start, '"')

	case l.ch == 'b' && l.peekChar() == '\'':
		l.readChar()
		return l.readQuoted(start, '\'')

	case isIdentStart(l.ch):
		return Ident(l.readIdentifier()), nil

	case isDigit(l.ch):
		return Literal(l.readNumber()), nil

	case l.ch == '"':
		return l.readQuoted(start, '"')

	case l.ch == '\'':
		// 'a is a lifetime unless it is closed like a char literal: 'a'
		if isIdentStart(l.peekChar()) {
			end := l.readPosition
			for end < len(l.input) && isIdentContinue(l.input[end]) {
				end++
			}

			if end >= len(l.input) || l.input[end] != '\'' {
				l.readChar()
				return Lifetime(l.readIdentifier()), nil
			}
		}

		return l.readQuoted(start, '\'')
	}

	two := l.input[l.position:min(l.position+2, len(l.input))]
	if joined[two] {
		l.readChar()
		l.readChar()

		return Punct(two), nil
	}

	for i := 0; i < len(singlePuncts); i++ {
		if singlePuncts[i] == l.ch {
			l.readChar()
			return Punct(string(singlePuncts[i])), nil
		}
	}

	return Token{}, l.errorf(start, "unexpected character %q", l.ch)
}

// readIdentifier reads an identifier or keyword
func (l *lexer) readIdentifier() string {
	position := l.position
	for isIdentContinue(l.ch) {
		l.readChar()
	}

	return l.input[position:l.position]
}

// readNumber reads an integer or float literal including its type suffix.
func (l *lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) || l.ch == '_' || (l.ch == 'x' && l.position == position+1) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()

		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	// suffix such as usize, u8, f64, or hex digits
	for isIdentContinue(l.ch) {
		l.readChar()
	}

	return l.input[position:l.position]
}

// readQuoted reads a string or char literal whose opening quote is l.ch.
func (l *lexer) readQuoted(start int, quote byte) (Token, error) {
	l.readChar() // opening quote

	for l.ch != quote {
		if l.ch == 0 && l.position >= len(l.input) {
			return Token{}, l.errorf(start, "unterminated literal")
		}

		if l.ch == '\\' {
			l.readChar()
		}

		l.readChar()
	}

	l.readChar() // closing quote

	return Literal(l.input[start:l.position]), nil
}

// readRawString reads r"..." or r#"..."#; l.ch is the char after 'r'.
func (l *lexer) readRawString(start int) (Token, error) {
	hashes := 0
	for l.ch == '#' {
		hashes++
		l.readChar()
	}

	if l.ch != '"' {
		return Token{}, l.errorf(start, "malformed raw string literal")
	}

	l.readChar()

	for {
		if l.ch == 0 && l.position >= len(l.input) {
			return Token{}, l.errorf(start, "unterminated raw string literal")
		}

		if l.ch == '"' {
			closed := true

			for i := range hashes {
				if l.peekAt(i) != '#' {
					closed = false
					break
				}
			}

			if closed {
				l.readChar()

				for range hashes {
					l.readChar()
				}

				return Literal(l.input[start:l.position]), nil
			}
		}

		l.readChar()
	}
}

func isIdentStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch >= 0x80
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
