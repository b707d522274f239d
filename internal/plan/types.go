package plan

import (
	"variant-from-generator/fromimpl"
	"variant-from-generator/internal/diagnostic"
	"variant-from-generator/options"
	"variant-from-generator/rsyntax"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Bindings of every impl in the plan.
	Bindings options.BindingsEnum
	// Enums in manifest order; skipped and invalid enums are absent.
	Enums []EnumPlan
	// Diagnostics contains all warnings and errors from validation and resolution.
	Diagnostics diagnostic.Diagnostics
}

// EnumPlan holds the impls generated for one enum.
type EnumPlan struct {
	// Name of the enum.
	Name string
	// Generics of the enum declaration.
	Generics *rsyntax.Generics
	// Impls in variant declaration order.
	Impls []*fromimpl.FromImpl
}

// ImplCount returns the number of impls across all enums.
func (p *Plan) ImplCount() int {
	n := 0
	for _, e := range p.Enums {
		n += len(e.Impls)
	}

	return n
}
