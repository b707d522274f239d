package fromimpl

import (
	"errors"
	"fmt"

	"variant-from-generator/options"
	"variant-from-generator/rsyntax"
	"variant-from-generator/tokens"
)

// IntoParam is the reserved name of the auxiliary type parameter added when
// an Into conversion is requested.
const IntoParam = "INTO"

var (
	ErrIntoParamCollision = errors.New("reserved type parameter name collides with existing generic parameter")
	ErrIncompleteSpec     = errors.New("incomplete variant conversion spec")
)

// implTemplate is shared by both conversion modes; the mode supplies
// impl_generics, source and value.
const implTemplate = `
#[doc = #doc]
impl #impl_generics #from_trait<#source> for #target #ty_generics #where_clause {
	fn from(v: #source) -> Self {
		#target::#variant(#value)
	}
}`

// FromImpl is a view of one enum variant which can generate a
// `From<T> for Target` impl block.
type FromImpl struct {
	// Bindings selects ::std or ::core trait paths.
	Bindings options.BindingsEnum

	// Generics of the target enum. Nil means no generics. Never modified.
	Generics *rsyntax.Generics

	// Target is the identifier of the target enum.
	Target rsyntax.Ident

	// Variant is the identifier of the target variant.
	Variant rsyntax.Ident

	// Type is the type of the variant's single field.
	Type rsyntax.Type

	// Into makes the impl accept any `INTO: Into<Type>` instead of Type itself.
	Into bool

	// FreshIntoParam picks INTO2, INTO3... when the enum already declares a
	// type parameter named INTO. Without it such a collision is an error.
	FreshIntoParam bool
}

// Render returns the tokens of the impl block preceded by its doc attribute.
// It is pure: equal specs always render equal streams.
func (fi *FromImpl) Render() (tokens.Stream, error) {
	if fi.Target == "" || fi.Variant == "" || fi.Type == nil {
		return nil, fmt.Errorf("%w: target, variant and type are required", ErrIncompleteSpec)
	}

	conv, err := fi.conversion()
	if err != nil {
		return nil, err
	}

	doc, err := docComment(fi.Variant)
	if err != nil {
		return nil, err
	}

	_, tyGenerics, whereClause := fi.Generics.SplitForImpl()

	return tokens.Quote(implTemplate, tokens.Vars{
		"doc":           tokens.Str(doc),
		"impl_generics": conv.implGenerics(),
		"from_trait":    fi.Bindings.FromTrait(),
		"source":        conv.source(),
		"target":        fi.Target,
		"ty_generics":   tyGenerics,
		"where_clause":  whereClause,
		"variant":       fi.Variant,
		"value":         conv.value(),
	})
}

// MustRender is like Render but panics on error.
func (fi *FromImpl) MustRender() tokens.Stream {
	s, err := fi.Render()
	if err != nil {
		panic(err)
	}

	return s
}

// EmitTokens implements tokens.Emitter. It panics if the impl cannot be rendered.
func (fi *FromImpl) EmitTokens(s *tokens.Stream) {
	s.Push(fi.MustRender()...)
}

// String returns the formatted Rust source of the impl block, or the render
// error text.
func (fi *FromImpl) String() string {
	s, err := fi.Render()
	if err != nil {
		return err.Error()
	}

	return tokens.Format(s)
}

// conversion is the mode-specific part of an impl block.
type conversion interface {
	// implGenerics are the generics on the impl keyword.
	implGenerics() rsyntax.ImplGenerics
	// source is the type parameter of From and of the fn argument.
	source() tokens.Emitter
	// value is the expression wrapped into the variant.
	value() tokens.Stream
}

func (fi *FromImpl) conversion() (conversion, error) {
	if !fi.Into {
		return directConversion{generics: fi.Generics, ty: fi.Type}, nil
	}

	ns := newNamespace(fi.Generics)

	param := IntoParam
	if !ns.reserve(param) {
		if !fi.FreshIntoParam {
			return nil, fmt.Errorf("%s::%s: %w: %s already declares %s",
				fi.Target, fi.Variant, ErrIntoParamCollision, fi.Target, IntoParam)
		}

		param = ns.fresh(IntoParam)
	}

	bound := &rsyntax.TraitBound{
		Path: fi.Bindings.IntoTrait().WithArgs(rsyntax.TypeArg{Type: fi.Type}),
	}

	return auxiliaryConversion{
		generics: fi.Generics.WithTypeParam(rsyntax.NewTypeParam(rsyntax.Ident(param), bound)),
		param:    rsyntax.Ident(param),
	}, nil
}

// directConversion implements From<Type> and wraps the value as is.
type directConversion struct {
	generics *rsyntax.Generics
	ty       rsyntax.Type
}

func (c directConversion) implGenerics() rsyntax.ImplGenerics {
	ig, _, _ := c.generics.SplitForImpl()
	return ig
}

func (c directConversion) source() tokens.Emitter { return c.ty }

func (c directConversion) value() tokens.Stream {
	return tokens.Stream{tokens.Ident("v")}
}

// auxiliaryConversion implements From<INTO> for any INTO: Into<Type> and
// converts the value once before wrapping it.
type auxiliaryConversion struct {
	// generics are the enum generics plus the INTO parameter.
	generics *rsyntax.Generics
	param    rsyntax.Ident
}

func (c auxiliaryConversion) implGenerics() rsyntax.ImplGenerics {
	ig, _, _ := c.generics.SplitForImpl()
	return ig
}

func (c auxiliaryConversion) source() tokens.Emitter { return c.param }

func (c auxiliaryConversion) value() tokens.Stream {
	return tokens.Stream{
		tokens.Ident("v"),
		tokens.Punct("."),
		tokens.Ident("into"),
		tokens.Punct("("),
		tokens.Punct(")"),
	}
}
