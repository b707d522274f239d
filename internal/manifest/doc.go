// Package manifest provides the YAML schema, parsing and validation of the
// enum manifest that drives code generation.
//
// The manifest describes Rust enums the way they are declared: a name, the
// generics text, and the variants with their field types. Fragments are kept
// as Rust source text and checked with the rsyntax parser during validation.
//
// # Schema Overview
//
//	version: "1"
//	bindings: std            # std | core | no_std
//	rename_into_param: false # pick INTO2... on collision instead of failing
//	enums:
//	  - name: Message
//	    generics: "<'a, T: Clone> where T: Debug"
//	    into: false          # default for variants
//	    variants:
//	      - name: Text
//	        type: "&'a str"
//	      - name: Items
//	        type: "Vec<T>"
//	      - Empty            # unit variant shorthand
//	      - name: Pair
//	        fields: [u8, u8]
//	        skip: true       # multi-field variants must be skipped
//	  - name: Label
//	    variants:
//	      - name: Text
//	        type: String
//	        into: true       # overrides the enum default
//
// # Eligibility
//
// A variant gets a From impl when it has exactly one field and is not
// skipped. Unit variants are reported and ignored; variants with more than
// one field are an error unless skipped.
package manifest
