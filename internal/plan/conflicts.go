package plan

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"variant-from-generator/internal/diagnostic"
	"variant-from-generator/rsyntax"
)

// checkConflicts reports impls of one enum that the Rust compiler would
// reject as conflicting. Direct impls conflict when they convert from the
// same type; an Into impl accepts every convertible type, so a second one
// always conflicts, and so does any direct impl next to it: coherence
// assumes upstream crates may add the Into impl for the direct source type.
func checkConflicts(ep *EnumPlan, diags *diagnostic.Diagnostics) {
	direct := linkedhashmap.New() // source type -> []variant name
	into := linkedhashmap.New()   // variant name -> target type

	for _, fi := range ep.Impls {
		if fi.Into {
			into.Put(string(fi.Variant), rsyntax.TypeString(fi.Type))
			continue
		}

		key := rsyntax.TypeString(fi.Type)

		var variants []string
		if v, ok := direct.Get(key); ok {
			variants = v.([]string)
		}

		direct.Put(key, append(variants, string(fi.Variant)))
	}

	it := direct.Iterator()
	for it.Next() {
		variants := it.Value().([]string)
		if len(variants) < 2 {
			continue
		}

		diags.AddError("conflicting_from_impl",
			fmt.Sprintf("variants %s all convert from %s", strings.Join(variants, ", "), it.Key()),
			ep.Name, variants[1])
	}

	if into.Size() > 1 {
		names := keys(into)
		diags.AddError("conflicting_into_impls",
			fmt.Sprintf("variants %s each accept any Into source", strings.Join(names, ", ")),
			ep.Name, names[1])
	}

	if into.Size() > 0 && direct.Size() > 0 {
		names := keys(into)
		diags.AddError("overlapping_into_impl",
			fmt.Sprintf("Into impl of %s overlaps with direct From impls of %s",
				names[0], strings.Join(directVariants(direct), ", ")),
			ep.Name, names[0])
	}
}

func keys(m *linkedhashmap.Map) []string {
	out := make([]string, 0, m.Size())
	for _, k := range m.Keys() {
		out = append(out, k.(string))
	}

	return out
}

func directVariants(m *linkedhashmap.Map) []string {
	var out []string
	for _, v := range m.Values() {
		out = append(out, v.([]string)...)
	}

	return out
}
