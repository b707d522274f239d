package plan

import (
	"errors"
	"fmt"

	"variant-from-generator/fromimpl"
	"variant-from-generator/internal/diagnostic"
	"variant-from-generator/internal/manifest"
	"variant-from-generator/options"
	"variant-from-generator/rsyntax"
)

// ErrResolution is returned in strict mode when the plan has errors.
var ErrResolution = errors.New("resolution failed with errors")

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// StrictMode fails on any error diagnostic.
	StrictMode bool
	// Bindings overrides the manifest bindings when set.
	Bindings *options.BindingsEnum
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		StrictMode: true,
	}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	manifest *manifest.Manifest
	config   ResolutionConfig
}

// NewResolver creates a new Resolver.
func NewResolver(mf *manifest.Manifest, config ResolutionConfig) *Resolver {
	return &Resolver{
		manifest: mf,
		config:   config,
	}
}

// Resolve resolves mf with the default configuration.
func Resolve(mf *manifest.Manifest) (*Plan, error) {
	return NewResolver(mf, DefaultConfig()).Resolve()
}

// Resolve runs the full resolution pipeline and returns a Plan.
// The plan is returned together with ErrResolution so callers can report
// its diagnostics.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.manifest == nil {
		return nil, errors.New("manifest is required")
	}

	plan := &Plan{}
	plan.Diagnostics.Merge(*manifest.Validate(r.manifest))

	bindings, err := options.ParseBindings(r.manifest.Bindings)
	if err == nil {
		plan.Bindings = bindings
	}

	if r.config.Bindings != nil {
		plan.Bindings = *r.config.Bindings
	}

	// global errors leave nothing to resolve
	if hasGlobalErrors(plan.Diagnostics) {
		return r.finish(plan)
	}

	failed := enumsWithErrors(plan.Diagnostics)

	for i := range r.manifest.Enums {
		en := &r.manifest.Enums[i]
		if en.Skip || failed[en.Name] {
			continue
		}

		ep, err := r.resolveEnum(plan.Bindings, en, &plan.Diagnostics)
		if err != nil {
			plan.Diagnostics.AddError("resolve_failed", err.Error(), en.Name, "")
			continue
		}

		checkConflicts(ep, &plan.Diagnostics)

		plan.Enums = append(plan.Enums, *ep)
	}

	return r.finish(plan)
}

func (r *Resolver) finish(plan *Plan) (*Plan, error) {
	if r.config.StrictMode && plan.Diagnostics.HasErrors() {
		return plan, fmt.Errorf("%w: %w", ErrResolution, plan.Diagnostics.Error())
	}

	return plan, nil
}

func (r *Resolver) resolveEnum(
	bindings options.BindingsEnum,
	en *manifest.Enum,
	diags *diagnostic.Diagnostics,
) (*EnumPlan, error) {
	generics, err := rsyntax.ParseGenerics(en.Generics)
	if err != nil {
		return nil, err
	}

	ep := &EnumPlan{Name: en.Name, Generics: generics}

	for _, v := range en.Variants {
		switch {
		case v.Skip:
			diags.AddInfo("variant_skipped", "variant is skipped", en.Name, v.Name)
			continue
		case v.IsUnit():
			diags.AddInfo("unit_variant", "unit variant has no field to convert from", en.Name, v.Name)
			continue
		case !v.Eligible():
			continue
		}

		ty, err := rsyntax.ParseType(v.FieldTypes()[0])
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", v.Name, err)
		}

		ep.Impls = append(ep.Impls, &fromimpl.FromImpl{
			Bindings:       bindings,
			Generics:       generics,
			Target:         rsyntax.Ident(en.Name),
			Variant:        rsyntax.Ident(v.Name),
			Type:           ty,
			Into:           v.EffectiveInto(*en),
			FreshIntoParam: r.manifest.RenameIntoParam,
		})
	}

	return ep, nil
}

func hasGlobalErrors(d diagnostic.Diagnostics) bool {
	for _, e := range d.Errors {
		if e.Enum == "" {
			return true
		}
	}

	return false
}

func enumsWithErrors(d diagnostic.Diagnostics) map[string]bool {
	failed := map[string]bool{}
	for _, e := range d.Errors {
		failed[e.Enum] = true
	}

	return failed
}
