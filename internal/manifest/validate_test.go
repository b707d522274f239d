package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-from-generator/internal/diagnostic"
)

func mustParse(t *testing.T, src string) *Manifest {
	t.Helper()

	mf, err := Parse([]byte(src))
	require.NoError(t, err)

	return mf
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(mustParse(t, sampleManifest))

	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"manifest_is_nil"}, res.Codes())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		errors   []string
		warnings []string
		infos    []string
	}{
		{
			name:     "no enums",
			yaml:     `version: "1"`,
			warnings: []string{"no_enums"},
		},
		{
			name:   "unsupported version",
			yaml:   "version: \"2\"\nenums: [{name: A, variants: [{name: B, type: u8}]}]",
			errors: []string{"unsupported_version"},
		},
		{
			name:   "unknown bindings",
			yaml:   "bindings: alloc\nenums: [{name: A, variants: [{name: B, type: u8}]}]",
			errors: []string{"unknown_bindings"},
		},
		{
			name: "enum names",
			yaml: `
enums:
  - variants: [{name: B, type: u8}]
  - name: match
    variants: [{name: B, type: u8}]
  - name: A
    variants: [{name: B, type: u8}]
  - name: A
    variants: [{name: C, type: u8}]
`,
			errors: []string{"missing_enum_name", "invalid_enum_name", "duplicate_enum"},
		},
		{
			name: "invalid generics",
			yaml: `
enums:
  - name: A
    generics: "<T, 'a>"
    variants: [{name: B, type: u8}]
`,
			errors: []string{"invalid_generics"},
		},
		{
			name:     "no variants and skipped enum",
			yaml:     "enums: [{name: A}, {name: B, skip: true, generics: '<<<'}]",
			warnings: []string{"no_variants"},
			infos:    []string{"enum_skipped"},
		},
		{
			name: "variant problems",
			yaml: `
enums:
  - name: A
    variants:
      - type: u8
      - name: fn
        type: u8
      - name: C
        type: u8
      - name: C
        type: u16
      - name: D
        type: "Vec<"
      - name: E
        type: u8
        fields: [u8]
      - name: F
        fields: [u8, u8]
      - name: G
        into: true
      - name: H
        fields: [u8, "&&"]
        skip: true
`,
			errors: []string{
				"missing_variant_name", "invalid_variant_name", "duplicate_variant",
				"invalid_variant_type", "ambiguous_fields", "multi_field_variant",
				"invalid_variant_type",
			},
			warnings: []string{"into_on_unit_variant"},
		},
		{
			name: "into param collision",
			yaml: `
enums:
  - name: A
    generics: "<INTO>"
    variants:
      - name: B
        type: INTO
      - name: C
        type: u8
        into: true
`,
			errors: []string{"into_param_collision"},
		},
		{
			name: "into param collision renamed",
			yaml: `
rename_into_param: true
enums:
  - name: A
    generics: "<INTO>"
    variants:
      - name: C
        type: u8
        into: true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(mustParse(t, tt.yaml))

			assert.Equal(t, tt.errors, codes(res.Errors), "errors")
			assert.Equal(t, tt.warnings, codes(res.Warnings), "warnings")
			assert.Equal(t, tt.infos, codes(res.Infos), "infos")
		})
	}
}

func TestValidate_Suggestions(t *testing.T) {
	res := Validate(mustParse(t, "bindings: cor\nenums: [{name: A, variants: [{name: B, type: u8}]}]"))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"core"}, res.Errors[0].Suggestions)

	res = Validate(mustParse(t, "enums: [{name: A, variants: [{name: B, fields: [u8, u8]}]}]"))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "A", res.Errors[0].Enum)
	assert.Equal(t, "B", res.Errors[0].Variant)
	assert.Equal(t, []string{"skip: true"}, res.Errors[0].Suggestions)
}

func codes(diags []diagnostic.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}
