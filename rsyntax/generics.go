package rsyntax

import (
	"slices"

	"variant-from-generator/tokens"
)

// LifetimeDef declares a lifetime parameter with its outlives bounds, "'a: 'b".
type LifetimeDef struct {
	Lifetime Lifetime
	Bounds   []Lifetime
}

// EmitTokens implements tokens.Emitter.
func (d LifetimeDef) EmitTokens(s *tokens.Stream) {
	d.Lifetime.EmitTokens(s)

	if len(d.Bounds) > 0 {
		s.Push(tokens.Punct(":"))
		tokens.Separated(s, "+", d.Bounds)
	}
}

// TypeParam declares a type parameter, "T: Clone + 'a = String".
type TypeParam struct {
	Ident   Ident
	Bounds  []Bound
	Default Type
}

// NewTypeParam creates a type parameter with the given bounds and no default.
func NewTypeParam(name Ident, bounds ...Bound) TypeParam {
	return TypeParam{Ident: name, Bounds: bounds}
}

// EmitTokens emits the declaration form, default included.
func (tp TypeParam) EmitTokens(s *tokens.Stream) {
	tp.emitBounded(s)

	if tp.Default != nil {
		s.Push(tokens.Punct("="))
		tp.Default.EmitTokens(s)
	}
}

func (tp TypeParam) emitBounded(s *tokens.Stream) {
	tp.Ident.EmitTokens(s)

	if len(tp.Bounds) > 0 {
		s.Push(tokens.Punct(":"))
		tokens.Separated(s, "+", tp.Bounds)
	}
}

// WherePredicate is one predicate of a where-clause.
type WherePredicate interface {
	tokens.Emitter
	isWherePredicate()
}

// BoundPredicate is "for<'a> T: Bound + Other".
type BoundPredicate struct {
	Lifetimes []LifetimeDef
	Bounded   Type
	Bounds    []Bound
}

func (*BoundPredicate) isWherePredicate() {}

// EmitTokens implements tokens.Emitter.
func (p *BoundPredicate) EmitTokens(s *tokens.Stream) {
	emitBoundLifetimes(s, p.Lifetimes)
	p.Bounded.EmitTokens(s)
	s.Push(tokens.Punct(":"))
	tokens.Separated(s, "+", p.Bounds)
}

// LifetimePredicate is "'a: 'b + 'c".
type LifetimePredicate struct {
	Lifetime Lifetime
	Bounds   []Lifetime
}

func (*LifetimePredicate) isWherePredicate() {}

// EmitTokens implements tokens.Emitter.
func (p *LifetimePredicate) EmitTokens(s *tokens.Stream) {
	p.Lifetime.EmitTokens(s)
	s.Push(tokens.Punct(":"))
	tokens.Separated(s, "+", p.Bounds)
}

// WhereClause is a where-clause; it emits nothing when it has no predicates.
type WhereClause struct {
	Predicates []WherePredicate
}

// EmitTokens implements tokens.Emitter.
func (w WhereClause) EmitTokens(s *tokens.Stream) {
	if len(w.Predicates) == 0 {
		return
	}

	s.Push(tokens.Ident("where"))
	tokens.Separated(s, ",", w.Predicates)
}

// Generics is the generic parameter list of a type declaration.
// Lifetimes always precede type parameters.
type Generics struct {
	Lifetimes  []LifetimeDef
	TypeParams []TypeParam
	Where      WhereClause
}

// IsEmpty reports whether there are no parameters and no where predicates.
// A nil receiver is empty.
func (g *Generics) IsEmpty() bool {
	return g == nil || (len(g.Lifetimes) == 0 && len(g.TypeParams) == 0 && len(g.Where.Predicates) == 0)
}

// Clone returns a copy that can be extended without touching g.
// Types and bounds are immutable after parsing and are shared.
func (g *Generics) Clone() *Generics {
	if g == nil {
		return &Generics{}
	}

	c := &Generics{
		Lifetimes:  make([]LifetimeDef, len(g.Lifetimes)),
		TypeParams: make([]TypeParam, len(g.TypeParams)),
		Where:      WhereClause{Predicates: slices.Clone(g.Where.Predicates)},
	}

	for i, lt := range g.Lifetimes {
		c.Lifetimes[i] = LifetimeDef{Lifetime: lt.Lifetime, Bounds: slices.Clone(lt.Bounds)}
	}

	for i, tp := range g.TypeParams {
		c.TypeParams[i] = TypeParam{Ident: tp.Ident, Bounds: slices.Clone(tp.Bounds), Default: tp.Default}
	}

	return c
}

// WithTypeParam returns a clone of g with tp appended to its type parameters.
func (g *Generics) WithTypeParam(tp TypeParam) *Generics {
	c := g.Clone()
	c.TypeParams = append(c.TypeParams, tp)

	return c
}

// TypeParamNames returns the type parameter names in declaration order.
func (g *Generics) TypeParamNames() []string {
	if g == nil {
		return nil
	}

	names := make([]string, len(g.TypeParams))
	for i, tp := range g.TypeParams {
		names[i] = string(tp.Ident)
	}

	return names
}

// LifetimeNames returns the lifetime parameter names in declaration order.
func (g *Generics) LifetimeNames() []string {
	if g == nil {
		return nil
	}

	names := make([]string, len(g.Lifetimes))
	for i, lt := range g.Lifetimes {
		names[i] = string(lt.Lifetime)
	}

	return names
}

func (g *Generics) hasParams() bool {
	return g != nil && (len(g.Lifetimes) > 0 || len(g.TypeParams) > 0)
}

// EmitTokens emits the declaration form "<'a, T: X = Y>" without the where-clause.
func (g *Generics) EmitTokens(s *tokens.Stream) {
	if !g.hasParams() {
		return
	}

	s.Push(tokens.Punct("<"))
	tokens.Separated(s, ",", g.Lifetimes)

	if len(g.Lifetimes) > 0 && len(g.TypeParams) > 0 {
		s.Push(tokens.Punct(","))
	}

	tokens.Separated(s, ",", g.TypeParams)
	s.Push(tokens.Punct(">"))
}

// SplitForImpl splits g into the pieces of an impl block:
//
//	impl<'a, T: Bound> Trait for Type<'a, T> where T: Other
//	    ^^^^^^^^^^^^^^             ^^^^^^^^^ ^^^^^^^^^^^^^^
//	    ImplGenerics          TypeGenerics   WhereClause
//
// Defaults are dropped from ImplGenerics. Empty pieces emit nothing.
func (g *Generics) SplitForImpl() (ImplGenerics, TypeGenerics, WhereClause) {
	var where WhereClause
	if g != nil {
		where = g.Where
	}

	return ImplGenerics{g: g}, TypeGenerics{g: g}, where
}

// ImplGenerics emits generics for an impl header.
type ImplGenerics struct{ g *Generics }

// EmitTokens implements tokens.Emitter.
func (ig ImplGenerics) EmitTokens(s *tokens.Stream) {
	g := ig.g
	if !g.hasParams() {
		return
	}

	s.Push(tokens.Punct("<"))
	tokens.Separated(s, ",", g.Lifetimes)

	for i, tp := range g.TypeParams {
		if i > 0 || len(g.Lifetimes) > 0 {
			s.Push(tokens.Punct(","))
		}

		tp.emitBounded(s)
	}

	s.Push(tokens.Punct(">"))
}

// TypeGenerics emits the generic arguments of the implemented-for type.
type TypeGenerics struct{ g *Generics }

// EmitTokens implements tokens.Emitter.
func (tg TypeGenerics) EmitTokens(s *tokens.Stream) {
	g := tg.g
	if !g.hasParams() {
		return
	}

	s.Push(tokens.Punct("<"))

	for i, lt := range g.Lifetimes {
		if i > 0 {
			s.Push(tokens.Punct(","))
		}

		lt.Lifetime.EmitTokens(s)
	}

	for i, tp := range g.TypeParams {
		if i > 0 || len(g.Lifetimes) > 0 {
			s.Push(tokens.Punct(","))
		}

		tp.Ident.EmitTokens(s)
	}

	s.Push(tokens.Punct(">"))
}
