// Package fromimpl synthesizes `From` impl blocks for single-field enum variants.
//
// Two modes are supported:
//   - direct: impl From<T> for Enum, wrapping the value as is
//   - into: impl<INTO: Into<T>> From<INTO> for Enum, converting first
//
// In both modes the enum's own generics are propagated to the impl header
// and the implemented-for type, and the block carries a doc attribute
// "Convert into a `Variant` variant.".
package fromimpl
