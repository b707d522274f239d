package tokens

import (
	"strings"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the lexical class of a Token.
type Kind int

const (
	KindIdent    Kind = iota // foo, impl, Self, r#type
	KindLifetime             // 'a, 'static
	KindPunct                // < > :: -> # [ ] ...
	KindLiteral              // "text", 'c', 42usize
)

// Token is a single Rust token.
type Token struct {
	Kind Kind
	Text string
}

// Ident returns an identifier token.
func Ident(name string) Token { return Token{Kind: KindIdent, Text: name} }

// Lifetime returns a lifetime token. The leading quote is added when missing.
func Lifetime(name string) Token {
	if !strings.HasPrefix(name, "'") {
		name = "'" + name
	}

	return Token{Kind: KindLifetime, Text: name}
}

// Punct returns a punctuation token.
func Punct(p string) Token { return Token{Kind: KindPunct, Text: p} }

// Literal returns a literal token with the given raw source text.
func Literal(raw string) Token { return Token{Kind: KindLiteral, Text: raw} }

// Str returns a Rust string literal token holding value.
func Str(value string) Token {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return Literal(sb.String())
}

// Is reports whether the token has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsPunct reports whether the token is the given punctuation.
func (t Token) IsPunct(p string) bool { return t.Is(KindPunct, p) }

// IsIdent reports whether the token is the given identifier.
func (t Token) IsIdent(name string) bool { return t.Is(KindIdent, name) }

// String returns the source text of the token.
func (t Token) String() string { return t.Text }

// EmitTokens implements Emitter.
func (t Token) EmitTokens(s *Stream) { s.Push(t) }

// Emitter is implemented by anything that can append itself to a Stream.
type Emitter interface {
	EmitTokens(s *Stream)
}

// Stream is an ordered sequence of tokens.
type Stream []Token

// Push appends tokens to the stream.
func (s *Stream) Push(toks ...Token) {
	*s = append(*s, toks...)
}

// Extend appends the tokens of every emitter in order. Nil emitters are skipped.
func (s *Stream) Extend(emitters ...Emitter) {
	for _, e := range emitters {
		if e == nil {
			continue
		}

		e.EmitTokens(s)
	}
}

// EmitTokens implements Emitter.
func (s Stream) EmitTokens(dst *Stream) { dst.Push(s...) }

// Equal reports whether two streams hold the same tokens.
func (s Stream) Equal(other Stream) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// IsEmpty reports whether the stream holds no tokens.
func (s Stream) IsEmpty() bool { return len(s) == 0 }

// String joins the token texts with single spaces. The result is canonical:
// two streams are equal iff their strings are equal.
func (s Stream) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.Text
	}

	return strings.Join(parts, " ")
}

// Emit collects the tokens of the given emitters into a new stream.
func Emit(emitters ...Emitter) Stream {
	var s Stream
	s.Extend(emitters...)

	return s
}

// Separated appends items to s with sep between them.
func Separated[E Emitter](s *Stream, sep string, items []E) {
	for i, item := range items {
		if i > 0 {
			s.Push(Punct(sep))
		}

		item.EmitTokens(s)
	}
}
