// Package gen provides deterministic Rust code generation of From impls
// for the enums of a resolved plan.
//
// Generation approach uses text/template for the file layout and
// tokens.Format for the impl blocks themselves.
//
// Output layout:
//   - one "<snake_case enum>_from.rs" file per enum
//   - or a single "from_impls.rs" when SingleFile is set
package gen
