package rsyntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-from-generator/tokens"
)

func TestParseType_RoundTrip(t *testing.T) {
	inputs := []string{
		"String",
		"::std::vec::Vec<T>",
		"Vec<Vec<u8>>",
		"HashMap<K, V>",
		"Option<&'static str>",
		"&'a mut [u8]",
		"&T",
		"*const T",
		"*mut u8",
		"[u8; 32]",
		"[T; N * 2]",
		"(A, B)",
		"(T,)",
		"()",
		"(dyn Trait)",
		"!",
		"_",
		"Box<dyn Error + Send + Sync>",
		"dyn Fn(&str) -> bool + Send + 'static",
		"impl Iterator<Item = u8>",
		"impl Deref<Target: Clone>",
		"for<'a> fn(&'a str) -> &'a str",
		`unsafe extern "C" fn(i32)`,
		"<T as Iterator>::Item",
		"<T>::Assoc",
		"Vec::<T>",
		"Foo<3>",
		"Foo<-1>",
		"Foo<{ N + 1 }>",
		"Self",
		"crate::Foo",
		"super::Bar<'a, T>",
		"r#type",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ty, err := ParseType(input)
			require.NoError(t, err)
			assert.Equal(t, tokens.MustLex(input).String(), tokens.Emit(ty).String())
		})
	}
}

func TestParseType_Kinds(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{input: "T", expected: &PathType{}},
		{input: "&'a str", expected: &ReferenceType{}},
		{input: "*const T", expected: &PointerType{}},
		{input: "[T]", expected: &SliceType{}},
		{input: "[T; 4]", expected: &ArrayType{}},
		{input: "(T)", expected: &ParenType{}},
		{input: "(T,)", expected: &TupleType{}},
		{input: "!", expected: &NeverType{}},
		{input: "_", expected: &InferType{}},
		{input: "dyn Send", expected: &TraitObjectType{}},
		{input: "impl Send", expected: &ImplTraitType{}},
		{input: "fn()", expected: &FnPtrType{}},
		{input: "<T as Tr>::A", expected: &QualifiedPathType{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ty, err := ParseType(tt.input)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, ty)
		})
	}
}

func TestParseType_Reference(t *testing.T) {
	ty := MustParseType("&'a mut T")

	ref, ok := ty.(*ReferenceType)
	require.True(t, ok)
	assert.Equal(t, Lifetime("'a"), ref.Lifetime)
	assert.True(t, ref.Mut)
	assert.Equal(t, "T", TypeString(ref.Elem))
}

func TestParseType_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "unclosed generics", input: "Vec<T"},
		{name: "trailing tokens", input: "Vec<T> extra"},
		{name: "lifetime is not a type", input: "'a"},
		{name: "keyword", input: "fn"},
		{name: "keyword segment", input: "std::match"},
		{name: "pointer without qualifier", input: "*T"},
		{name: "array without length", input: "[u8; ]"},
		{name: "unbalanced const block", input: "Foo<{ 1 >"},
		{name: "lex error", input: "Vec<`T`>"},
		{name: "bare path separator", input: "::"},
		{name: "trailing path separator", input: "std::"},
		{name: "trailing separator in argument", input: "Vec<std::>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseType(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "type", pe.Fragment)
			assert.Equal(t, tt.input, pe.Input)
		})
	}
}

func TestParseError_Offset(t *testing.T) {
	_, err := ParseType("Vec<`T`>")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Offset)

	_, err = ParseType("Vec<T> extra")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 7, pe.Offset)
	assert.Contains(t, pe.Error(), `"extra"`)
}

func TestParseIdent(t *testing.T) {
	id, err := ParseIdent("Foo")
	require.NoError(t, err)
	assert.Equal(t, Ident("Foo"), id)

	id, err = ParseIdent("r#fn")
	require.NoError(t, err)
	assert.Equal(t, Ident("r#fn"), id)

	for _, bad := range []string{"", "fn", "Self", "_", "Foo Bar", "'a", "1"} {
		_, err := ParseIdent(bad)
		assert.ErrorIs(t, err, ErrSyntax, bad)
	}
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("::std::convert::From<T>")
	require.NoError(t, err)
	assert.True(t, p.Global)
	require.Len(t, p.Segments, 3)
	assert.Equal(t, Ident("From"), p.Segments[2].Ident)
	assert.IsType(t, &AngleArgs{}, p.Segments[2].Args)

	built := NewPath(true, "std", "convert", "From").WithArgs(TypeArg{Type: MustParseType("T")})
	assert.True(t, tokens.Emit(p).Equal(tokens.Emit(built)))
}

func TestParsePath_Errors(t *testing.T) {
	for _, bad := range []string{"", "::", "std::", "::std::", "std::::From"} {
		_, err := ParsePath(bad)
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, ErrSyntax, bad)
	}
}

func TestParseIdent_EndOfInput(t *testing.T) {
	_, err := ParseIdent("")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "identifier", pe.Fragment)
	assert.Contains(t, pe.Msg, "end of input")
}

func TestPath_WithArgsCopies(t *testing.T) {
	base := NewPath(false, "Into")
	withArgs := base.WithArgs(TypeArg{Type: MustParseType("u8")})

	assert.Nil(t, base.Segments[0].Args)
	assert.Equal(t, "Into < u8 >", tokens.Emit(withArgs).String())
}

func TestParseBound(t *testing.T) {
	b, err := ParseBound("?Sized")
	require.NoError(t, err)

	tb, ok := b.(*TraitBound)
	require.True(t, ok)
	assert.True(t, tb.Maybe)

	b, err = ParseBound("'static")
	require.NoError(t, err)
	assert.Equal(t, Lifetime("'static"), b)

	b, err = ParseBound("for<'a> Fn(&'a T)")
	require.NoError(t, err)
	assert.Equal(t, "for < 'a > Fn ( & 'a T )", tokens.Emit(b).String())

	_, err = ParseBound("Clone + Send")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "&'a str", TypeString(MustParseType("&'a str")))
	assert.Equal(t, "Vec<T>", TypeString(MustParseType("Vec < T >")))
	assert.Equal(t, "[u8; 32]", TypeString(MustParseType("[u8;32]")))
	assert.Equal(t, "dyn Fn(u8) -> bool + Send", TypeString(MustParseType("dyn Fn(u8) -> bool + Send")))
	assert.Equal(t, "", TypeString(nil))
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseType("Vec<") })
	assert.Panics(t, func() { MustParseIdent("impl") })
	assert.Panics(t, func() { MustParsePath("") })
	assert.Panics(t, func() { MustParseBound("+") })
	assert.Panics(t, func() { MustParseGenerics("<T") })
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("impl"))
	assert.True(t, IsKeyword("Self"))
	assert.False(t, IsKeyword("r#impl"))
	assert.False(t, IsKeyword("Foo"))
}
