package rsyntax

import (
	"errors"
	"fmt"

	"variant-from-generator/tokens"
)

// parser is a recursive descent parser over a lexed fragment.
type parser struct {
	fragment string
	input    string
	toks     tokens.Stream
	offsets  []int
	pos      int
}

// parseFragment lexes src and runs fn, requiring it to consume every token.
func parseFragment[T any](src, fragment string, fn func(*parser) (T, error)) (T, error) {
	var zero T

	toks, offsets, err := tokens.LexWithOffsets(src)
	if err != nil {
		var le *tokens.LexError
		if errors.As(err, &le) {
			return zero, &ParseError{Fragment: fragment, Input: src, Offset: le.Offset, Msg: le.Msg}
		}

		return zero, err
	}

	p := &parser{fragment: fragment, input: src, toks: toks, offsets: offsets}

	v, err := fn(p)
	if err != nil {
		return zero, err
	}

	if !p.atEOF() {
		return zero, p.errorf("unexpected %q after %s", p.current().Text, fragment)
	}

	return v, nil
}

// ParseIdent parses a single non-keyword identifier.
func ParseIdent(src string) (Ident, error) {
	return parseFragment(src, "identifier", (*parser).parseIdent)
}

// ParseType parses a Rust type such as "&'a str" or "Vec<T>".
func ParseType(src string) (Type, error) {
	return parseFragment(src, "type", (*parser).parseType)
}

// ParsePath parses a path such as "::std::convert::From<T>".
func ParsePath(src string) (Path, error) {
	return parseFragment(src, "path", (*parser).parsePath)
}

// ParseBound parses a single trait or lifetime bound.
func ParseBound(src string) (Bound, error) {
	return parseFragment(src, "bound", (*parser).parseBound)
}

// ParseGenerics parses a generics list optionally followed by a where-clause:
// "<'a, T: Clone = String> where T: Debug". Empty input yields empty generics.
func ParseGenerics(src string) (*Generics, error) {
	return parseFragment(src, "generics", (*parser).parseGenerics)
}

// MustParseIdent is like ParseIdent but panics on error.
func MustParseIdent(src string) Ident { return must(ParseIdent(src)) }

// MustParseType is like ParseType but panics on error.
func MustParseType(src string) Type { return must(ParseType(src)) }

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(src string) Path { return must(ParsePath(src)) }

// MustParseBound is like ParseBound but panics on error.
func MustParseBound(src string) Bound { return must(ParseBound(src)) }

// MustParseGenerics is like ParseGenerics but panics on error.
func MustParseGenerics(src string) *Generics { return must(ParseGenerics(src)) }

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// --- token cursor ---

// kindEOF marks the token returned past the end of input; it matches no
// real token kind.
const kindEOF tokens.Kind = -1

func (p *parser) current() tokens.Token { return p.peekN(0) }

func (p *parser) peekN(n int) tokens.Token {
	if p.pos+n >= len(p.toks) {
		return tokens.Token{Kind: kindEOF}
	}

	return p.toks[p.pos+n]
}

func (p *parser) atEOF() bool { return p.pos >= len(p.toks) }

func (p *parser) advance() tokens.Token {
	tok := p.current()
	if p.pos < len(p.toks) {
		p.pos++
	}

	return tok
}

func (p *parser) checkPunct(punct string) bool { return p.current().IsPunct(punct) }

func (p *parser) checkIdent(name string) bool { return p.current().IsIdent(name) }

func (p *parser) matchPunct(punct string) bool {
	if p.checkPunct(punct) {
		p.advance()
		return true
	}

	return false
}

func (p *parser) matchIdent(name string) bool {
	if p.checkIdent(name) {
		p.advance()
		return true
	}

	return false
}

func (p *parser) expectPunct(punct string) error {
	if !p.matchPunct(punct) {
		return p.errorf("expected %q, found %s", punct, p.describe())
	}

	return nil
}

func (p *parser) describe() string {
	if p.atEOF() {
		return "end of input"
	}

	return fmt.Sprintf("%q", p.current().Text)
}

func (p *parser) errorf(format string, args ...any) error {
	offset := len(p.input)
	if p.pos < len(p.offsets) {
		offset = p.offsets[p.pos]
	}

	return &ParseError{
		Fragment: p.fragment,
		Input:    p.input,
		Offset:   offset,
		Msg:      fmt.Sprintf(format, args...),
	}
}

// --- identifiers ---

func (p *parser) parseIdent() (Ident, error) {
	tok := p.current()
	if tok.Kind != tokens.KindIdent || tok.Text == "_" {
		return "", p.errorf("expected identifier, found %s", p.describe())
	}

	if IsKeyword(tok.Text) {
		return "", p.errorf("%q is a reserved keyword", tok.Text)
	}

	p.advance()

	return Ident(tok.Text), nil
}

func (p *parser) parseLifetime() (Lifetime, error) {
	tok := p.current()
	if tok.Kind != tokens.KindLifetime {
		return "", p.errorf("expected lifetime, found %s", p.describe())
	}

	p.advance()

	return Lifetime(tok.Text), nil
}

// --- paths ---

func (p *parser) parsePath() (Path, error) {
	var path Path
	if p.matchPunct("::") {
		path.Global = true
	}

	for {
		seg, err := p.parsePathSegment()
		if err != nil {
			return Path{}, err
		}

		path.Segments = append(path.Segments, seg)

		if !(p.checkPunct("::") && p.peekN(1).Kind == tokens.KindIdent) {
			return path, nil
		}

		p.advance()
	}
}

func (p *parser) parsePathSegment() (PathSegment, error) {
	tok := p.current()
	if tok.Kind != tokens.KindIdent || tok.Text == "_" {
		return PathSegment{}, p.errorf("expected path segment, found %s", p.describe())
	}

	if IsKeyword(tok.Text) && !pathKeywords[tok.Text] {
		return PathSegment{}, p.errorf("%q is a reserved keyword", tok.Text)
	}

	p.advance()
	seg := PathSegment{Ident: Ident(tok.Text)}

	switch {
	case p.checkPunct("<"):
		args, err := p.parseAngleArgs(false)
		if err != nil {
			return PathSegment{}, err
		}

		seg.Args = args

	case p.checkPunct("::") && p.peekN(1).IsPunct("<"):
		p.advance()

		args, err := p.parseAngleArgs(true)
		if err != nil {
			return PathSegment{}, err
		}

		seg.Args = args

	case p.checkPunct("("):
		args, err := p.parseParenArgs()
		if err != nil {
			return PathSegment{}, err
		}

		seg.Args = args
	}

	return seg, nil
}

func (p *parser) parseAngleArgs(turbofish bool) (*AngleArgs, error) {
	if err := p.expectPunct("<"); err != nil {
		return nil, err
	}

	args := &AngleArgs{Turbofish: turbofish}

	for !p.checkPunct(">") {
		arg, err := p.parseGenericArg()
		if err != nil {
			return nil, err
		}

		args.Args = append(args.Args, arg)

		if !p.matchPunct(",") {
			break
		}
	}

	if err := p.expectPunct(">"); err != nil {
		return nil, err
	}

	return args, nil
}

func (p *parser) parseGenericArg() (GenericArg, error) {
	tok := p.current()
	next := p.peekN(1)

	switch {
	case tok.Kind == tokens.KindLifetime:
		p.advance()
		return Lifetime(tok.Text), nil

	case tok.Kind == tokens.KindIdent && next.IsPunct("="):
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		p.advance() // =

		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}

		return BindingArg{Name: name, Type: ty}, nil

	case tok.Kind == tokens.KindIdent && next.IsPunct(":"):
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		p.advance() // :

		bounds, err := p.parseBounds()
		if err != nil {
			return nil, err
		}

		return ConstraintArg{Name: name, Bounds: bounds}, nil

	case tok.Kind == tokens.KindLiteral:
		p.advance()
		return ConstArg{Expr: tokens.Stream{tok}}, nil

	case tok.IsPunct("-") && next.Kind == tokens.KindLiteral:
		p.advance()
		p.advance()

		return ConstArg{Expr: tokens.Stream{tok, next}}, nil

	case tok.IsPunct("{"):
		expr, err := p.collectBalanced("{", "}")
		if err != nil {
			return nil, err
		}

		return ConstArg{Expr: expr}, nil
	}

	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}

	return TypeArg{Type: ty}, nil
}

func (p *parser) parseParenArgs() (*ParenArgs, error) {
	inputs, _, err := p.parseTypeList("(", ")")
	if err != nil {
		return nil, err
	}

	args := &ParenArgs{Inputs: inputs}

	if p.matchPunct("->") {
		out, err := p.parseType()
		if err != nil {
			return nil, err
		}

		args.Output = out
	}

	return args, nil
}

// parseTypeList parses "open T, U, ... close" and reports a trailing comma.
func (p *parser) parseTypeList(open, closing string) ([]Type, bool, error) {
	if err := p.expectPunct(open); err != nil {
		return nil, false, err
	}

	var (
		list     []Type
		trailing bool
	)

	for !p.checkPunct(closing) {
		ty, err := p.parseType()
		if err != nil {
			return nil, false, err
		}

		list = append(list, ty)
		trailing = false

		if !p.matchPunct(",") {
			break
		}

		trailing = true
	}

	if err := p.expectPunct(closing); err != nil {
		return nil, false, err
	}

	return list, trailing, nil
}

// collectBalanced consumes open ... close, nesting included, and returns the tokens.
func (p *parser) collectBalanced(open, closing string) (tokens.Stream, error) {
	var out tokens.Stream

	depth := 0

	for {
		if p.atEOF() {
			return nil, p.errorf("unbalanced %q", open)
		}

		tok := p.advance()
		out = append(out, tok)

		switch {
		case tok.IsPunct(open):
			depth++
		case tok.IsPunct(closing):
			depth--
		}

		if depth == 0 {
			return out, nil
		}
	}
}

// --- types ---

func (p *parser) parseType() (Type, error) {
	tok := p.current()

	switch {
	case p.atEOF():
		return nil, p.errorf("expected type, found end of input")

	case tok.IsPunct("&"):
		p.advance()
		return p.parseReference()

	case tok.IsPunct("*"):
		p.advance()

		var mut bool

		switch {
		case p.matchIdent("mut"):
			mut = true
		case p.matchIdent("const"):
		default:
			return nil, p.errorf("expected \"const\" or \"mut\" after \"*\", found %s", p.describe())
		}

		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}

		return &PointerType{Mut: mut, Elem: elem}, nil

	case tok.IsPunct("["):
		return p.parseSliceOrArray()

	case tok.IsPunct("("):
		elems, trailing, err := p.parseTypeList("(", ")")
		if err != nil {
			return nil, err
		}

		if len(elems) == 1 && !trailing {
			return &ParenType{Elem: elems[0]}, nil
		}

		return &TupleType{Elems: elems}, nil

	case tok.IsPunct("!"):
		p.advance()
		return &NeverType{}, nil

	case tok.IsIdent("_"):
		p.advance()
		return &InferType{}, nil

	case tok.IsIdent("dyn"):
		p.advance()

		bounds, err := p.parseBounds()
		if err != nil {
			return nil, err
		}

		return &TraitObjectType{Dyn: true, Bounds: bounds}, nil

	case tok.IsIdent("impl"):
		p.advance()

		bounds, err := p.parseBounds()
		if err != nil {
			return nil, err
		}

		return &ImplTraitType{Bounds: bounds}, nil

	case tok.IsIdent("fn") || tok.IsIdent("unsafe") || tok.IsIdent("extern"):
		return p.parseFnPtr(nil)

	case tok.IsIdent("for"):
		lts, err := p.parseBoundLifetimes()
		if err != nil {
			return nil, err
		}

		if p.checkIdent("fn") || p.checkIdent("unsafe") || p.checkIdent("extern") {
			return p.parseFnPtr(lts)
		}

		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}

		bounds := []Bound{&TraitBound{Lifetimes: lts, Path: path}}

		if p.matchPunct("+") {
			rest, err := p.parseBounds()
			if err != nil {
				return nil, err
			}

			bounds = append(bounds, rest...)
		}

		return &TraitObjectType{Bounds: bounds}, nil

	case tok.IsPunct("<"):
		return p.parseQualifiedPath()

	case tok.IsPunct("::") || tok.Kind == tokens.KindIdent:
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}

		return &PathType{Path: path}, nil

	case tok.Kind == tokens.KindLifetime:
		return nil, p.errorf("expected type, found lifetime %q", tok.Text)
	}

	return nil, p.errorf("expected type, found %s", p.describe())
}

func (p *parser) parseReference() (Type, error) {
	ref := &ReferenceType{}

	if p.current().Kind == tokens.KindLifetime {
		lt, err := p.parseLifetime()
		if err != nil {
			return nil, err
		}

		ref.Lifetime = lt
	}

	ref.Mut = p.matchIdent("mut")

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	ref.Elem = elem

	return ref, nil
}

func (p *parser) parseSliceOrArray() (Type, error) {
	if err := p.expectPunct("["); err != nil {
		return nil, err
	}

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.matchPunct("]") {
		return &SliceType{Elem: elem}, nil
	}

	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}

	var length tokens.Stream

	depth := 0

	for depth > 0 || !p.checkPunct("]") {
		if p.atEOF() {
			return nil, p.errorf("unterminated array type")
		}

		tok := p.advance()

		switch {
		case tok.IsPunct("[") || tok.IsPunct("(") || tok.IsPunct("{"):
			depth++
		case tok.IsPunct("]") || tok.IsPunct(")") || tok.IsPunct("}"):
			depth--
		}

		length = append(length, tok)
	}

	if len(length) == 0 {
		return nil, p.errorf("array type is missing its length")
	}

	p.advance() // ]

	return &ArrayType{Elem: elem, Len: length}, nil
}

func (p *parser) parseQualifiedPath() (Type, error) {
	if err := p.expectPunct("<"); err != nil {
		return nil, err
	}

	self, err := p.parseType()
	if err != nil {
		return nil, err
	}

	q := &QualifiedPathType{Self: self}

	if p.matchIdent("as") {
		trait, err := p.parsePath()
		if err != nil {
			return nil, err
		}

		q.Trait = &trait
	}

	if err := p.expectPunct(">"); err != nil {
		return nil, err
	}

	if !p.checkPunct("::") {
		return nil, p.errorf("expected \"::\" after qualified self type, found %s", p.describe())
	}

	for p.matchPunct("::") {
		seg, err := p.parsePathSegment()
		if err != nil {
			return nil, err
		}

		q.Segments = append(q.Segments, seg)
	}

	return q, nil
}

func (p *parser) parseFnPtr(lts []LifetimeDef) (Type, error) {
	fn := &FnPtrType{Lifetimes: lts}
	fn.Unsafe = p.matchIdent("unsafe")

	if p.matchIdent("extern") {
		fn.Extern = true

		if tok := p.current(); tok.Kind == tokens.KindLiteral {
			fn.ABI = tok.Text
			p.advance()
		}
	}

	if !p.matchIdent("fn") {
		return nil, p.errorf("expected \"fn\", found %s", p.describe())
	}

	inputs, _, err := p.parseTypeList("(", ")")
	if err != nil {
		return nil, err
	}

	fn.Inputs = inputs

	if p.matchPunct("->") {
		out, err := p.parseType()
		if err != nil {
			return nil, err
		}

		fn.Output = out
	}

	return fn, nil
}

// --- bounds ---

// parseBounds parses "A + B + 'a". A trailing "+" is accepted.
func (p *parser) parseBounds() ([]Bound, error) {
	var bounds []Bound

	for {
		b, err := p.parseBound()
		if err != nil {
			return nil, err
		}

		bounds = append(bounds, b)

		if !p.matchPunct("+") || !p.startsBound() {
			return bounds, nil
		}
	}
}

func (p *parser) startsBound() bool {
	tok := p.current()

	return tok.Kind == tokens.KindLifetime ||
		(tok.Kind == tokens.KindIdent && !tok.IsIdent("where")) ||
		tok.IsPunct("?") || tok.IsPunct("::")
}

func (p *parser) parseBound() (Bound, error) {
	if p.current().Kind == tokens.KindLifetime {
		return p.parseLifetime()
	}

	b := &TraitBound{}
	b.Maybe = p.matchPunct("?")

	if p.checkIdent("for") {
		lts, err := p.parseBoundLifetimes()
		if err != nil {
			return nil, err
		}

		b.Lifetimes = lts
	}

	if !p.checkPunct("::") && p.current().Kind != tokens.KindIdent {
		return nil, p.errorf("expected trait bound, found %s", p.describe())
	}

	path, err := p.parsePath()
	if err != nil {
		return nil, err
	}

	b.Path = path

	return b, nil
}

// parseBoundLifetimes parses "for<'a, 'b: 'a>".
func (p *parser) parseBoundLifetimes() ([]LifetimeDef, error) {
	if !p.matchIdent("for") {
		return nil, p.errorf("expected \"for\", found %s", p.describe())
	}

	if err := p.expectPunct("<"); err != nil {
		return nil, err
	}

	var lts []LifetimeDef

	for !p.checkPunct(">") {
		def, err := p.parseLifetimeDef()
		if err != nil {
			return nil, err
		}

		lts = append(lts, def)

		if !p.matchPunct(",") {
			break
		}
	}

	if err := p.expectPunct(">"); err != nil {
		return nil, err
	}

	return lts, nil
}

// --- generics ---

func (p *parser) parseLifetimeDef() (LifetimeDef, error) {
	lt, err := p.parseLifetime()
	if err != nil {
		return LifetimeDef{}, err
	}

	def := LifetimeDef{Lifetime: lt}

	if p.matchPunct(":") {
		bounds, err := p.parseLifetimeBounds()
		if err != nil {
			return LifetimeDef{}, err
		}

		def.Bounds = bounds
	}

	return def, nil
}

func (p *parser) parseLifetimeBounds() ([]Lifetime, error) {
	var bounds []Lifetime

	for p.current().Kind == tokens.KindLifetime {
		lt, err := p.parseLifetime()
		if err != nil {
			return nil, err
		}

		bounds = append(bounds, lt)

		if !p.matchPunct("+") {
			break
		}
	}

	return bounds, nil
}

func (p *parser) parseGenerics() (*Generics, error) {
	g := &Generics{}

	if p.checkPunct("<") {
		if err := p.parseGenericParams(g); err != nil {
			return nil, err
		}
	}

	if p.checkIdent("where") {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}

		g.Where = where
	}

	return g, nil
}

func (p *parser) parseGenericParams(g *Generics) error {
	if err := p.expectPunct("<"); err != nil {
		return err
	}

	seen := map[string]bool{}

	for !p.checkPunct(">") {
		tok := p.current()

		switch {
		case tok.Kind == tokens.KindLifetime:
			if len(g.TypeParams) > 0 {
				return p.errorf("lifetime parameter %s must be declared prior to type parameters", tok.Text)
			}

			def, err := p.parseLifetimeDef()
			if err != nil {
				return err
			}

			if seen[string(def.Lifetime)] {
				return p.errorf("lifetime %s declared twice", def.Lifetime)
			}

			seen[string(def.Lifetime)] = true
			g.Lifetimes = append(g.Lifetimes, def)

		case tok.IsIdent("const"):
			return p.errorf("const generic parameters are not supported")

		default:
			tp, err := p.parseTypeParam()
			if err != nil {
				return err
			}

			if seen[string(tp.Ident)] {
				return p.errorf("type parameter %s declared twice", tp.Ident)
			}

			seen[string(tp.Ident)] = true
			g.TypeParams = append(g.TypeParams, tp)
		}

		if !p.matchPunct(",") {
			break
		}
	}

	return p.expectPunct(">")
}

func (p *parser) parseTypeParam() (TypeParam, error) {
	name, err := p.parseIdent()
	if err != nil {
		return TypeParam{}, err
	}

	tp := TypeParam{Ident: name}

	if p.matchPunct(":") && p.startsBound() {
		bounds, err := p.parseBounds()
		if err != nil {
			return TypeParam{}, err
		}

		tp.Bounds = bounds
	}

	if p.matchPunct("=") {
		def, err := p.parseType()
		if err != nil {
			return TypeParam{}, err
		}

		tp.Default = def
	}

	return tp, nil
}

func (p *parser) parseWhereClause() (WhereClause, error) {
	if !p.matchIdent("where") {
		return WhereClause{}, p.errorf("expected \"where\", found %s", p.describe())
	}

	var where WhereClause

	for !p.atEOF() && !p.checkPunct("{") {
		pred, err := p.parseWherePredicate()
		if err != nil {
			return WhereClause{}, err
		}

		where.Predicates = append(where.Predicates, pred)

		if !p.matchPunct(",") {
			break
		}
	}

	return where, nil
}

func (p *parser) parseWherePredicate() (WherePredicate, error) {
	if p.current().Kind == tokens.KindLifetime {
		lt, err := p.parseLifetime()
		if err != nil {
			return nil, err
		}

		if err := p.expectPunct(":"); err != nil {
			return nil, err
		}

		bounds, err := p.parseLifetimeBounds()
		if err != nil {
			return nil, err
		}

		return &LifetimePredicate{Lifetime: lt, Bounds: bounds}, nil
	}

	pred := &BoundPredicate{}

	if p.checkIdent("for") {
		lts, err := p.parseBoundLifetimes()
		if err != nil {
			return nil, err
		}

		pred.Lifetimes = lts
	}

	bounded, err := p.parseType()
	if err != nil {
		return nil, err
	}

	pred.Bounded = bounded

	if err := p.expectPunct(":"); err != nil {
		return nil, err
	}

	if p.startsBound() {
		bounds, err := p.parseBounds()
		if err != nil {
			return nil, err
		}

		pred.Bounds = bounds
	}

	return pred, nil
}
