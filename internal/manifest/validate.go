package manifest

import (
	"fmt"
	"slices"

	"variant-from-generator/fromimpl"
	"variant-from-generator/internal/diagnostic"
	"variant-from-generator/internal/match"
	"variant-from-generator/options"
	"variant-from-generator/rsyntax"
)

// SupportedVersion is the only manifest schema version understood.
const SupportedVersion = "1"

// Validate checks the manifest and returns every problem found.
// It never stops at the first error.
func Validate(mf *Manifest) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if mf == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if mf.Version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported manifest version %q (want %q)", mf.Version, SupportedVersion), "", "")
	}

	if _, err := options.ParseBindings(mf.Bindings); err != nil {
		res.AddError("unknown_bindings", err.Error(), "", "", match.Suggest(mf.Bindings, options.Names())...)
	}

	if len(mf.Enums) == 0 {
		res.AddWarning("no_enums", "manifest declares no enums", "", "")
	}

	seen := map[string]bool{}

	for i := range mf.Enums {
		en := &mf.Enums[i]

		validateEnum(mf, en, res)

		if en.Name == "" {
			continue
		}

		if seen[en.Name] {
			res.AddError("duplicate_enum", fmt.Sprintf("enum %q declared twice", en.Name), en.Name, "")
		}

		seen[en.Name] = true
	}

	return res
}

func validateEnum(mf *Manifest, en *Enum, res *diagnostic.Diagnostics) {
	switch {
	case en.Name == "":
		res.AddError("missing_enum_name", "enum has no name", "", "")
	default:
		if _, err := rsyntax.ParseIdent(en.Name); err != nil {
			res.AddError("invalid_enum_name", err.Error(), en.Name, "")
		}
	}

	if en.Skip {
		res.AddInfo("enum_skipped", "enum is skipped", en.Name, "")
		return
	}

	generics, err := rsyntax.ParseGenerics(en.Generics)
	if err != nil {
		res.AddError("invalid_generics", err.Error(), en.Name, "")
	}

	if len(en.Variants) == 0 {
		res.AddWarning("no_variants", "enum declares no variants", en.Name, "")
	}

	var names []string

	for _, v := range en.Variants {
		validateVariant(en, v, res)

		if v.Name != "" && slices.Contains(names, v.Name) {
			res.AddError("duplicate_variant", fmt.Sprintf("variant %q declared twice", v.Name), en.Name, v.Name)
		}

		names = append(names, v.Name)

		if generics != nil && v.Eligible() && v.EffectiveInto(*en) && !mf.RenameIntoParam &&
			slices.Contains(generics.TypeParamNames(), fromimpl.IntoParam) {
			res.AddError("into_param_collision",
				fmt.Sprintf("enum already declares a type parameter named %s", fromimpl.IntoParam),
				en.Name, v.Name, "rename_into_param: true")
		}
	}
}

func validateVariant(en *Enum, v Variant, res *diagnostic.Diagnostics) {
	if v.Name == "" {
		res.AddError("missing_variant_name", "variant has no name", en.Name, "")
	} else if _, err := rsyntax.ParseIdent(v.Name); err != nil {
		res.AddError("invalid_variant_name", err.Error(), en.Name, v.Name)
	}

	if v.Type != "" && len(v.Fields) > 0 {
		res.AddError("ambiguous_fields", "variant sets both type and fields", en.Name, v.Name)
	}

	for _, ft := range v.FieldTypes() {
		if _, err := rsyntax.ParseType(ft); err != nil {
			res.AddError("invalid_variant_type", err.Error(), en.Name, v.Name)
		}
	}

	switch {
	case v.Skip:
	case v.IsUnit():
		if v.Into != nil && *v.Into {
			res.AddWarning("into_on_unit_variant", "into has no effect on a unit variant", en.Name, v.Name)
		}
	case len(v.FieldTypes()) > 1:
		res.AddError("multi_field_variant",
			fmt.Sprintf("variant has %d fields; only single-field variants convert", len(v.FieldTypes())),
			en.Name, v.Name, "skip: true")
	}
}
