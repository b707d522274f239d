package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	s, err := Quote("impl #trait for #ty {}", Vars{
		"trait": Ident("Clone"),
		"ty":    MustLex("Foo<'a>"),
	})
	require.NoError(t, err)
	assert.Equal(t, "impl Clone for Foo < 'a > { }", s.String())
}

func TestQuote_KeepsAttributeHash(t *testing.T) {
	s, err := Quote("#[doc = #text]", Vars{"text": Str("hello")})
	require.NoError(t, err)
	assert.Equal(t, Stream{Punct("#"), Punct("["), Ident("doc"), Punct("="), Literal(`"hello"`), Punct("]")}, s)
}

func TestQuote_RepeatedVariable(t *testing.T) {
	s, err := Quote("fn f(v: #ty) -> #ty", Vars{"ty": Ident("u8")})
	require.NoError(t, err)
	assert.Equal(t, "fn f ( v : u8 ) -> u8", s.String())
}

func TestQuote_NilAndEmptyVariables(t *testing.T) {
	s, err := Quote("impl #g Foo #w {}", Vars{"g": nil, "w": Stream{}})
	require.NoError(t, err)
	assert.Equal(t, "impl Foo { }", s.String())
}

func TestQuote_UndefinedVariable(t *testing.T) {
	_, err := Quote("impl #missing {}", Vars{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#missing")
}

func TestQuote_LexError(t *testing.T) {
	_, err := Quote(`"unterminated`, nil)
	require.Error(t, err)

	var le *LexError
	assert.ErrorAs(t, err, &le)
}

func TestMustQuote_Panics(t *testing.T) {
	assert.Panics(t, func() { MustQuote("#x", nil) })
	assert.NotPanics(t, func() { MustQuote("#", nil) })
}
