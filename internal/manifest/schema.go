package manifest

// Manifest represents the root of a YAML enum manifest.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Bindings selects the library root of generated trait paths:
	// "std" (default), "core" or "no_std".
	Bindings string `yaml:"bindings,omitempty"`

	// RenameIntoParam picks a fresh name (INTO2, INTO3...) for the auxiliary
	// type parameter when an enum already declares INTO.
	RenameIntoParam bool `yaml:"rename_into_param,omitempty"`

	// Enums lists the enums to generate impls for.
	Enums []Enum `yaml:"enums"`
}

// Enum describes one Rust enum.
type Enum struct {
	// Name is the enum identifier.
	Name string `yaml:"name"`

	// Generics is the generics text of the declaration, e.g. "<'a, T> where T: Clone".
	Generics string `yaml:"generics,omitempty"`

	// Into is the default conversion mode of the variants.
	Into bool `yaml:"into,omitempty"`

	// Skip excludes the whole enum.
	Skip bool `yaml:"skip,omitempty"`

	// Variants in declaration order.
	Variants []Variant `yaml:"variants"`
}

// Variant describes one enum variant.
type Variant struct {
	// Name is the variant identifier.
	Name string `yaml:"name"`

	// Type is the type of the single field of a tuple variant.
	Type string `yaml:"type,omitempty"`

	// Fields lists the field types of a multi-field tuple variant.
	// Mutually exclusive with Type.
	Fields StringOrArray `yaml:"fields,omitempty"`

	// Into overrides the enum default when set.
	Into *bool `yaml:"into,omitempty"`

	// Skip excludes the variant.
	Skip bool `yaml:"skip,omitempty"`
}

// FieldTypes returns the field types of the variant.
func (v Variant) FieldTypes() []string {
	if v.Type != "" {
		return []string{v.Type}
	}

	return v.Fields
}

// IsUnit reports whether the variant has no fields.
func (v Variant) IsUnit() bool {
	return len(v.FieldTypes()) == 0
}

// EffectiveInto returns the conversion mode of v inside e.
func (v Variant) EffectiveInto(e Enum) bool {
	if v.Into != nil {
		return *v.Into
	}

	return e.Into
}

// Eligible reports whether the variant gets a From impl.
func (v Variant) Eligible() bool {
	return !v.Skip && len(v.FieldTypes()) == 1
}

// known keys per mapping level, used to report misspelled keys.
var (
	manifestKeys = []string{"version", "bindings", "rename_into_param", "enums"}
	enumKeys     = []string{"name", "generics", "into", "skip", "variants"}
	variantKeys  = []string{"name", "type", "fields", "into", "skip"}
)
