package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-from-generator/internal/diagnostic"
)

func TestConflicts(t *testing.T) {
	tests := []struct {
		name     string
		variants string
		errors   []string
		warnings []string
	}{
		{
			name: "distinct direct types",
			variants: `
      - {name: A, type: u8}
      - {name: B, type: String}`,
		},
		{
			name: "same direct type",
			variants: `
      - {name: A, type: "Vec<u8>"}
      - {name: B, type: String}
      - {name: C, type: "Vec < u8 >"}`,
			errors: []string{"conflicting_from_impl"},
		},
		{
			name: "two into impls",
			variants: `
      - {name: A, type: u8, into: true}
      - {name: B, type: String, into: true}`,
			errors: []string{"conflicting_into_impls"},
		},
		{
			name: "into next to direct",
			variants: `
      - {name: A, type: u8}
      - {name: B, type: String, into: true}`,
			errors: []string{"overlapping_into_impl"},
		},
		{
			name: "same type once direct once into",
			variants: `
      - {name: A, type: String}
      - {name: B, type: String, into: true}`,
			errors: []string{"overlapping_into_impl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mf := mustParse(t, "enums:\n  - name: E\n    variants:"+tt.variants+"\n")

			plan, err := NewResolver(mf, ResolutionConfig{}).Resolve()
			require.NoError(t, err)

			assert.Equal(t, tt.errors, codes(plan.Diagnostics.Errors), "errors")
			assert.Equal(t, tt.warnings, codes(plan.Diagnostics.Warnings), "warnings")
		})
	}
}

func TestConflicts_Message(t *testing.T) {
	mf := mustParse(t, `
enums:
  - name: E
    variants:
      - {name: A, type: u8}
      - {name: B, type: u8}
      - {name: C, type: u8}
`)

	_, err := Resolve(mf)
	require.ErrorIs(t, err, ErrResolution)
	assert.Contains(t, err.Error(), "E::B: [conflicting_from_impl] variants A, B, C all convert from u8")
}

func TestConflicts_IntoNextToDirect(t *testing.T) {
	mf := mustParse(t, `
enums:
  - name: E
    variants:
      - {name: A, type: u8}
      - {name: B, type: String, into: true}
      - {name: C, type: bool}
`)

	plan, err := Resolve(mf)
	require.ErrorIs(t, err, ErrResolution)
	require.Len(t, plan.Diagnostics.Errors, 1)

	d := plan.Diagnostics.Errors[0]
	assert.Equal(t, "overlapping_into_impl", d.Code)
	assert.Equal(t, "B", d.Variant)
	assert.Equal(t, "Into impl of B overlaps with direct From impls of A, C", d.Message)
}

func codes(diags []diagnostic.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}
