package fromimpl_test

import (
	"fmt"

	"variant-from-generator/fromimpl"
	"variant-from-generator/rsyntax"
)

func Example() {
	fi := &fromimpl.FromImpl{
		Generics: rsyntax.MustParseGenerics("<T>"),
		Target:   "Foo",
		Variant:  "Bar",
		Type:     rsyntax.MustParseType("Vec<T>"),
		Into:     true,
	}

	fmt.Println(fi)
	// Output:
	// #[doc = "Convert into a `Bar` variant."]
	// impl<T, INTO: ::std::convert::Into<Vec<T>>> ::std::convert::From<INTO> for Foo<T> {
	//     fn from(v: INTO) -> Self {
	//         Foo::Bar(v.into())
	//     }
	// }
}
