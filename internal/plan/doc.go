// Package plan provides the resolution pipeline that produces the Plan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Validate the manifest → diagnostics
//  2. For each enum that is not skipped and has no errors:
//     - Parse the generics and the variant field types
//     - Build one fromimpl.FromImpl per eligible variant
//  3. Check the impls of each enum for conflicts (duplicate source types,
//     several Into impls, Into impls next to direct ones)
//  4. Emit diagnostics (unit variants, skipped variants, conflicts)
package plan
