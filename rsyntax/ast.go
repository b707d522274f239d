package rsyntax

import (
	"variant-from-generator/tokens"
)

// Ident is a Rust identifier, possibly raw ("r#type").
type Ident string

func (i Ident) String() string { return string(i) }

// EmitTokens implements tokens.Emitter.
func (i Ident) EmitTokens(s *tokens.Stream) { s.Push(tokens.Ident(string(i))) }

// Lifetime is a lifetime name including its leading quote, e.g. "'a".
type Lifetime string

func (l Lifetime) String() string { return string(l) }

// EmitTokens implements tokens.Emitter.
func (l Lifetime) EmitTokens(s *tokens.Stream) { s.Push(tokens.Lifetime(string(l))) }

func (Lifetime) isBound()      {}
func (Lifetime) isGenericArg() {}

// Path is a possibly global, "::"-separated path such as ::std::convert::From<T>.
type Path struct {
	Global   bool
	Segments []PathSegment
}

// NewPath builds a path from plain segment names.
func NewPath(global bool, names ...string) Path {
	p := Path{Global: global}
	for _, n := range names {
		p.Segments = append(p.Segments, PathSegment{Ident: Ident(n)})
	}

	return p
}

// WithArgs returns a copy of the path whose last segment carries the given
// angle-bracketed arguments.
func (p Path) WithArgs(args ...GenericArg) Path {
	segs := make([]PathSegment, len(p.Segments))
	copy(segs, p.Segments)

	if len(segs) > 0 {
		segs[len(segs)-1].Args = &AngleArgs{Args: args}
	}

	return Path{Global: p.Global, Segments: segs}
}

// EmitTokens implements tokens.Emitter.
func (p Path) EmitTokens(s *tokens.Stream) {
	if p.Global {
		s.Push(tokens.Punct("::"))
	}

	for i, seg := range p.Segments {
		if i > 0 {
			s.Push(tokens.Punct("::"))
		}

		seg.EmitTokens(s)
	}
}

// PathSegment is one segment of a path with its optional arguments.
type PathSegment struct {
	Ident Ident
	Args  PathArgs
}

// EmitTokens implements tokens.Emitter.
func (seg PathSegment) EmitTokens(s *tokens.Stream) {
	seg.Ident.EmitTokens(s)

	if seg.Args != nil {
		seg.Args.EmitTokens(s)
	}
}

// PathArgs are the arguments of a path segment: <...> or (...) -> T.
type PathArgs interface {
	tokens.Emitter
	isPathArgs()
}

// AngleArgs is an angle-bracketed argument list, "<'a, T, Item = U>".
type AngleArgs struct {
	Turbofish bool
	Args      []GenericArg
}

func (*AngleArgs) isPathArgs() {}

// EmitTokens implements tokens.Emitter.
func (a *AngleArgs) EmitTokens(s *tokens.Stream) {
	if a.Turbofish {
		s.Push(tokens.Punct("::"))
	}

	s.Push(tokens.Punct("<"))
	tokens.Separated(s, ",", a.Args)
	s.Push(tokens.Punct(">"))
}

// ParenArgs is the Fn-sugar argument list, "(A, B) -> C".
type ParenArgs struct {
	Inputs []Type
	Output Type
}

func (*ParenArgs) isPathArgs() {}

// EmitTokens implements tokens.Emitter.
func (a *ParenArgs) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Punct("("))
	tokens.Separated(s, ",", a.Inputs)
	s.Push(tokens.Punct(")"))

	if a.Output != nil {
		s.Push(tokens.Punct("->"))
		a.Output.EmitTokens(s)
	}
}

// GenericArg is one argument inside AngleArgs.
type GenericArg interface {
	tokens.Emitter
	isGenericArg()
}

// TypeArg is a type argument.
type TypeArg struct{ Type Type }

func (TypeArg) isGenericArg() {}

// EmitTokens implements tokens.Emitter.
func (a TypeArg) EmitTokens(s *tokens.Stream) { a.Type.EmitTokens(s) }

// BindingArg is an associated type binding, "Item = T".
type BindingArg struct {
	Name Ident
	Type Type
}

func (BindingArg) isGenericArg() {}

// EmitTokens implements tokens.Emitter.
func (a BindingArg) EmitTokens(s *tokens.Stream) {
	a.Name.EmitTokens(s)
	s.Push(tokens.Punct("="))
	a.Type.EmitTokens(s)
}

// ConstraintArg is an associated type constraint, "Item: Clone".
type ConstraintArg struct {
	Name   Ident
	Bounds []Bound
}

func (ConstraintArg) isGenericArg() {}

// EmitTokens implements tokens.Emitter.
func (a ConstraintArg) EmitTokens(s *tokens.Stream) {
	a.Name.EmitTokens(s)
	s.Push(tokens.Punct(":"))
	tokens.Separated(s, "+", a.Bounds)
}

// ConstArg is a const generic argument kept as raw tokens, "32" or "{ N + 1 }".
type ConstArg struct{ Expr tokens.Stream }

func (ConstArg) isGenericArg() {}

// EmitTokens implements tokens.Emitter.
func (a ConstArg) EmitTokens(s *tokens.Stream) { s.Push(a.Expr...) }

// Type is any Rust type.
type Type interface {
	tokens.Emitter
	isType()
}

// PathType is a plain path type, e.g. Vec<T> or ::std::string::String.
type PathType struct{ Path Path }

// QualifiedPathType is "<Self as Trait>::Rest" or "<Self>::Rest".
type QualifiedPathType struct {
	Self     Type
	Trait    *Path
	Segments []PathSegment
}

// ReferenceType is "&'a mut T".
type ReferenceType struct {
	Lifetime Lifetime // empty when elided
	Mut      bool
	Elem     Type
}

// PointerType is "*const T" or "*mut T".
type PointerType struct {
	Mut  bool
	Elem Type
}

// SliceType is "[T]".
type SliceType struct{ Elem Type }

// ArrayType is "[T; N]" with the length kept as raw tokens.
type ArrayType struct {
	Elem Type
	Len  tokens.Stream
}

// TupleType is "(A, B)"; the unit type has no elements.
type TupleType struct{ Elems []Type }

// ParenType is a parenthesized type, "(dyn Trait + Send)".
type ParenType struct{ Elem Type }

// NeverType is "!".
type NeverType struct{}

// InferType is "_".
type InferType struct{}

// TraitObjectType is "dyn A + B"; Dyn is false for the bare "for<'a> Fn(..)" form.
type TraitObjectType struct {
	Dyn    bool
	Bounds []Bound
}

// ImplTraitType is "impl A + B".
type ImplTraitType struct{ Bounds []Bound }

// FnPtrType is "for<'a> unsafe extern "C" fn(A) -> B".
type FnPtrType struct {
	Lifetimes []LifetimeDef
	Unsafe    bool
	Extern    bool
	ABI       string // raw string literal, empty when absent
	Inputs    []Type
	Output    Type
}

func (*PathType) isType()          {}
func (*QualifiedPathType) isType() {}
func (*ReferenceType) isType()     {}
func (*PointerType) isType()       {}
func (*SliceType) isType()         {}
func (*ArrayType) isType()         {}
func (*TupleType) isType()         {}
func (*ParenType) isType()         {}
func (*NeverType) isType()         {}
func (*InferType) isType()         {}
func (*TraitObjectType) isType()   {}
func (*ImplTraitType) isType()     {}
func (*FnPtrType) isType()         {}

// EmitTokens implements tokens.Emitter.
func (t *PathType) EmitTokens(s *tokens.Stream) { t.Path.EmitTokens(s) }

// EmitTokens implements tokens.Emitter.
func (t *QualifiedPathType) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Punct("<"))
	t.Self.EmitTokens(s)

	if t.Trait != nil {
		s.Push(tokens.Ident("as"))
		t.Trait.EmitTokens(s)
	}

	s.Push(tokens.Punct(">"))

	for _, seg := range t.Segments {
		s.Push(tokens.Punct("::"))
		seg.EmitTokens(s)
	}
}

// EmitTokens implements tokens.Emitter.
func (t *ReferenceType) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Punct("&"))

	if t.Lifetime != "" {
		t.Lifetime.EmitTokens(s)
	}

	if t.Mut {
		s.Push(tokens.Ident("mut"))
	}

	t.Elem.EmitTokens(s)
}

// EmitTokens implements tokens.Emitter.
func (t *PointerType) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Punct("*"))

	if t.Mut {
		s.Push(tokens.Ident("mut"))
	} else {
		s.Push(tokens.Ident("const"))
	}

	t.Elem.EmitTokens(s)
}

// EmitTokens implements tokens.Emitter.
func (t *SliceType) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Punct("["))
	t.Elem.EmitTokens(s)
	s.Push(tokens.Punct("]"))
}

// EmitTokens implements tokens.Emitter.
func (t *ArrayType) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Punct("["))
	t.Elem.EmitTokens(s)
	s.Push(tokens.Punct(";"))
	s.Push(t.Len...)
	s.Push(tokens.Punct("]"))
}

// EmitTokens implements tokens.Emitter.
func (t *TupleType) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Punct("("))
	tokens.Separated(s, ",", t.Elems)

	if len(t.Elems) == 1 {
		s.Push(tokens.Punct(","))
	}

	s.Push(tokens.Punct(")"))
}

// EmitTokens implements tokens.Emitter.
func (t *ParenType) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Punct("("))
	t.Elem.EmitTokens(s)
	s.Push(tokens.Punct(")"))
}

// EmitTokens implements tokens.Emitter.
func (*NeverType) EmitTokens(s *tokens.Stream) { s.Push(tokens.Punct("!")) }

// EmitTokens implements tokens.Emitter.
func (*InferType) EmitTokens(s *tokens.Stream) { s.Push(tokens.Ident("_")) }

// EmitTokens implements tokens.Emitter.
func (t *TraitObjectType) EmitTokens(s *tokens.Stream) {
	if t.Dyn {
		s.Push(tokens.Ident("dyn"))
	}

	tokens.Separated(s, "+", t.Bounds)
}

// EmitTokens implements tokens.Emitter.
func (t *ImplTraitType) EmitTokens(s *tokens.Stream) {
	s.Push(tokens.Ident("impl"))
	tokens.Separated(s, "+", t.Bounds)
}

// EmitTokens implements tokens.Emitter.
func (t *FnPtrType) EmitTokens(s *tokens.Stream) {
	emitBoundLifetimes(s, t.Lifetimes)

	if t.Unsafe {
		s.Push(tokens.Ident("unsafe"))
	}

	if t.Extern {
		s.Push(tokens.Ident("extern"))

		if t.ABI != "" {
			s.Push(tokens.Literal(t.ABI))
		}
	}

	s.Push(tokens.Ident("fn"), tokens.Punct("("))
	tokens.Separated(s, ",", t.Inputs)
	s.Push(tokens.Punct(")"))

	if t.Output != nil {
		s.Push(tokens.Punct("->"))
		t.Output.EmitTokens(s)
	}
}

// Bound is a trait or lifetime bound.
type Bound interface {
	tokens.Emitter
	isBound()
}

// TraitBound is "?Sized", "Clone" or "for<'a> Fn(&'a T)".
type TraitBound struct {
	Maybe     bool
	Lifetimes []LifetimeDef
	Path      Path
}

func (*TraitBound) isBound() {}

// EmitTokens implements tokens.Emitter.
func (b *TraitBound) EmitTokens(s *tokens.Stream) {
	if b.Maybe {
		s.Push(tokens.Punct("?"))
	}

	emitBoundLifetimes(s, b.Lifetimes)
	b.Path.EmitTokens(s)
}

func emitBoundLifetimes(s *tokens.Stream, lts []LifetimeDef) {
	if len(lts) == 0 {
		return
	}

	s.Push(tokens.Ident("for"), tokens.Punct("<"))
	tokens.Separated(s, ",", lts)
	s.Push(tokens.Punct(">"))
}

// TypeString renders a type as compact Rust source, e.g. "&'a str".
func TypeString(t Type) string {
	if t == nil {
		return ""
	}

	return tokens.Format(tokens.Emit(t))
}
