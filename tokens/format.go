package tokens

import (
	"strings"
)

const indentUnit = "    "

// keywords after which a leading "::" path keeps its separating space,
// as in "impl ::std::convert::From".
var spacedKeywords = map[string]bool{
	"as": true, "const": true, "dyn": true, "for": true, "impl": true,
	"in": true, "let": true, "mut": true, "return": true, "where": true,
}

// noSpaceAfter lists puncts that glue to the following token.
var noSpaceAfter = map[string]bool{
	"#": true, "&": true, "(": true, "[": true, "<": true,
	"::": true, ".": true, "*": true, "?": true,
}

// noSpaceBefore lists puncts that glue to the preceding token.
var noSpaceBefore = map[string]bool{
	",": true, ";": true, ")": true, "]": true, ">": true, ".": true, ":": true,
}

// Format renders a stream as readable Rust source: attributes on their own
// line, braces opening indented blocks, and conventional token spacing.
// Items that close at the top level are separated by a blank line.
func Format(s Stream) string {
	f := &formatter{lineStart: true}
	for i := range s {
		f.write(s, i)
	}

	return strings.TrimRight(f.sb.String(), "\n")
}

type formatter struct {
	sb        strings.Builder
	indent    int
	lineStart bool
	prev      *Token

	// nesting tracks open "(" and "[" tokens; attr marks "#[".
	nesting []bracket
	// angles tracks open "<"; true marks generics opened by "impl".
	angles []bool
	// implClosed is set right after the ">" that closes impl generics.
	implClosed bool
}

type bracket struct {
	attr bool
}

func (f *formatter) newline() {
	if !f.lineStart {
		f.sb.WriteByte('\n')
	}

	f.lineStart = true
}

func (f *formatter) token(t Token, space bool) {
	if f.lineStart {
		f.sb.WriteString(strings.Repeat(indentUnit, f.indent))
	} else if space {
		f.sb.WriteByte(' ')
	}

	f.sb.WriteString(t.Text)
	f.lineStart = false
	f.prev = &t
}

func (f *formatter) write(s Stream, i int) {
	t := s[i]
	implClosed := f.implClosed
	f.implClosed = false

	switch {
	case t.IsPunct("{"):
		if i+1 < len(s) && s[i+1].IsPunct("}") {
			f.token(t, f.prev != nil)
			return
		}

		f.token(t, f.prev != nil)
		f.indent++
		f.newline()

		return

	case t.IsPunct("}"):
		if f.prev != nil && f.prev.IsPunct("{") && !f.lineStart {
			f.token(t, false)
		} else {
			f.newline()
			f.indent = max(f.indent-1, 0)
			f.token(t, false)
		}

		f.newline()

		if f.indent == 0 && i+1 < len(s) {
			f.sb.WriteByte('\n')
		}

		return

	case t.IsPunct("(") || t.IsPunct("["):
		attr := t.IsPunct("[") && f.prev != nil && f.prev.IsPunct("#")
		f.token(t, f.needsSpace(t, false))
		f.nesting = append(f.nesting, bracket{attr: attr})

		return

	case t.IsPunct(")") || t.IsPunct("]"):
		f.token(t, false)

		if n := len(f.nesting); n > 0 {
			b := f.nesting[n-1]
			f.nesting = f.nesting[:n-1]

			if b.attr {
				f.newline()
			}
		}

		return

	case t.IsPunct("<"):
		impl := f.prev != nil && f.prev.IsIdent("impl")
		f.token(t, f.needsSpace(t, false))
		f.angles = append(f.angles, impl)

		return

	case t.IsPunct(">"):
		f.token(t, false)

		if n := len(f.angles); n > 0 {
			f.implClosed = f.angles[n-1]
			f.angles = f.angles[:n-1]
		}

		return

	case t.IsPunct(";") && f.indent > 0 && len(f.nesting) == 0:
		f.token(t, false)
		f.newline()

		return
	}

	f.token(t, f.needsSpace(t, implClosed))
}

func (f *formatter) needsSpace(cur Token, implClosed bool) bool {
	prev := f.prev
	if prev == nil {
		return false
	}

	if prev.Kind == KindPunct && noSpaceAfter[prev.Text] {
		return false
	}

	if cur.Kind != KindPunct {
		return true
	}

	if noSpaceBefore[cur.Text] {
		return false
	}

	switch cur.Text {
	case "(":
		return !(prev.Kind == KindIdent || prev.IsPunct(">"))
	case "<":
		return prev.Kind != KindIdent
	case "::":
		if implClosed {
			return true
		}

		if prev.Kind == KindIdent {
			return spacedKeywords[prev.Text]
		}

		return prev.Kind == KindPunct && (prev.Text == "->" || prev.Text == "=" ||
			prev.Text == "," || prev.Text == ":" || prev.Text == "+" || prev.Text == "=>")
	}

	return true
}
