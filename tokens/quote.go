package tokens

import (
	"fmt"
)

// Vars maps quote placeholders to the fragments that replace them.
type Vars map[string]Emitter

// Quote lexes tmpl and substitutes every "#name" placeholder with the tokens
// of vars["name"]. A "#" that is not followed by an identifier (such as the
// one opening an attribute, "#[...]") is kept as is.
//
//	s, err := tokens.Quote("impl #trait for #ty {}", tokens.Vars{
//		"trait": tokens.Ident("Clone"),
//		"ty":    tokens.Ident("Foo"),
//	})
func Quote(tmpl string, vars Vars) (Stream, error) {
	src, err := Lex(tmpl)
	if err != nil {
		return nil, fmt.Errorf("lexing quote template: %w", err)
	}

	out := make(Stream, 0, len(src))

	for i := 0; i < len(src); i++ {
		tok := src[i]
		if !tok.IsPunct("#") || i+1 >= len(src) || src[i+1].Kind != KindIdent {
			out = append(out, tok)
			continue
		}

		name := src[i+1].Text

		v, ok := vars[name]
		if !ok {
			return nil, fmt.Errorf("quote template references undefined variable #%s", name)
		}

		if v != nil {
			v.EmitTokens(&out)
		}

		i++
	}

	return out, nil
}

// MustQuote is like Quote but panics on error. Use it with constant templates.
func MustQuote(tmpl string, vars Vars) Stream {
	s, err := Quote(tmpl, vars)
	if err != nil {
		panic(err)
	}

	return s
}
