package fromimpl

import (
	"fmt"
	"iter"

	"variant-from-generator/rsyntax"
)

// namespace tracks the type parameter names declared by the target enum.
type namespace map[string]struct{}

func newNamespace(g *rsyntax.Generics) namespace {
	ns := make(namespace)
	for _, name := range g.TypeParamNames() {
		ns.reserve(name)
	}

	return ns
}

// reserve marks a name as used. It returns false if the name was taken.
func (ns namespace) reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}

	ns[name] = struct{}{}

	return true
}

// fresh returns the first free name among name, name2, name3...
func (ns namespace) fresh(name string) string {
	for candidate := range disambiguate(name) {
		if ns.reserve(candidate) {
			return candidate
		}
	}

	panic("unreachable")
}

// disambiguate offers alternative names. A "_" separates the counter from a
// name that already ends with a digit: "T1" becomes "T1_2", not "T12".
func disambiguate(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		sep := ""
		if last := name[len(name)-1]; last >= '0' && last <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
