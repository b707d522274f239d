package options

import (
	"fmt"
	"strings"

	"variant-from-generator/rsyntax"
)

//go:generate go tool stringer -type=BindingsEnum -output=bindings_string.go

// BindingsEnum selects the library root generated trait paths resolve against.
type BindingsEnum int

const (
	BindingsStd  BindingsEnum = iota // ::std, the default
	BindingsCore                     // ::core, for #![no_std] crates

	// BindingsTotal is the number of bindings defined
	BindingsTotal = int(iota)
)

// ParseBindings parses a bindings name: "std", "core" or "no_std".
func ParseBindings(s string) (BindingsEnum, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "std":
		return BindingsStd, nil
	case "core", "no_std":
		return BindingsCore, nil
	default:
		return BindingsStd, fmt.Errorf("unknown bindings %q (want std or core)", s)
	}
}

// Names lists the accepted bindings names.
func Names() []string {
	return []string{"std", "core", "no_std"}
}

// IsValid reports whether b is one of the defined bindings.
func (b BindingsEnum) IsValid() bool {
	return b >= 0 && int(b) < BindingsTotal
}

// Root returns the crate name of the library root: "std" or "core".
func (b BindingsEnum) Root() string {
	if b == BindingsCore {
		return "core"
	}

	return "std"
}

// FromTrait returns the path of the conversion trait, ::std::convert::From.
func (b BindingsEnum) FromTrait() rsyntax.Path {
	return rsyntax.NewPath(true, b.Root(), "convert", "From")
}

// IntoTrait returns the path of the convertible-into trait, ::std::convert::Into.
func (b BindingsEnum) IntoTrait() rsyntax.Path {
	return rsyntax.NewPath(true, b.Root(), "convert", "Into")
}
