// Package tokens models Rust source as a flat sequence of tokens.
//
// It provides the building blocks the generator emits through:
//   - Token and Stream, the output unit of every fragment
//   - Lex, a small Rust tokenizer used to parse fragments and templates
//   - Quote, a quasi-quoter substituting "#name" placeholders
//   - Format, a pretty-printer turning a Stream into readable source
package tokens
