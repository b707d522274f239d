// Package rsyntax holds pre-parsed Rust syntax fragments: identifiers,
// paths, types, bounds and generic parameter lists.
//
// Fragments are produced by the Parse* functions and turned back into tokens
// through tokens.Emitter. Generics.SplitForImpl mirrors the way Rust
// procedural macros split a declaration's generics for an impl block.
//
// Only fragments are parsed here; items (enums, structs, impls) are not.
package rsyntax
