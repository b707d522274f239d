package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-from-generator/internal/manifest"
	"variant-from-generator/options"
	"variant-from-generator/rsyntax"
)

func mustParse(t *testing.T, src string) *manifest.Manifest {
	t.Helper()

	mf, err := manifest.Parse([]byte(src))
	require.NoError(t, err)

	return mf
}

func TestResolverBasic(t *testing.T) {
	mf := mustParse(t, `
enums:
  - name: Message
    generics: "<'a, T: Clone>"
    variants:
      - name: Text
        type: "&'a str"
      - name: Items
        type: "Vec<T>"
      - Empty
      - name: Pair
        fields: [u8, u8]
        skip: true
      - name: Count
        fields: usize
`)

	plan, err := Resolve(mf)
	require.NoError(t, err)

	t.Cleanup(func() {
		if t.Failed() {
			t.Log(spew.Sdump(plan.Diagnostics))
		}
	})

	assert.Equal(t, options.BindingsStd, plan.Bindings)
	require.Len(t, plan.Enums, 1)

	ep := plan.Enums[0]
	assert.Equal(t, "Message", ep.Name)
	assert.Equal(t, []string{"T"}, ep.Generics.TypeParamNames())
	require.Len(t, ep.Impls, 3)
	assert.Equal(t, 3, plan.ImplCount())

	text := ep.Impls[0]
	assert.Equal(t, rsyntax.Ident("Message"), text.Target)
	assert.Equal(t, rsyntax.Ident("Text"), text.Variant)
	assert.Equal(t, "&'a str", rsyntax.TypeString(text.Type))
	assert.False(t, text.Into)
	assert.Same(t, ep.Generics, text.Generics)

	assert.Equal(t, rsyntax.Ident("Count"), ep.Impls[2].Variant)
	assert.Equal(t, "usize", rsyntax.TypeString(ep.Impls[2].Type))

	assert.Empty(t, plan.Diagnostics.Errors)
	assert.Empty(t, plan.Diagnostics.Warnings)
	assert.Equal(t, []string{"unit_variant", "variant_skipped"}, plan.Diagnostics.Codes())
}

func TestResolver_IntoAndBindings(t *testing.T) {
	mf := mustParse(t, `
bindings: no_std
rename_into_param: true
enums:
  - name: Wrapper
    generics: "<INTO>"
    into: true
    variants:
      - name: Inner
        type: String
`)

	plan, err := Resolve(mf)
	require.NoError(t, err)

	assert.Equal(t, options.BindingsCore, plan.Bindings)
	require.Len(t, plan.Enums, 1)
	require.Len(t, plan.Enums[0].Impls, 1)

	fi := plan.Enums[0].Impls[0]
	assert.True(t, fi.Into)
	assert.True(t, fi.FreshIntoParam)
	assert.Equal(t, options.BindingsCore, fi.Bindings)

	assert.Contains(t, fi.String(), "impl<INTO, INTO2: ::core::convert::Into<String>> ::core::convert::From<INTO2> for Wrapper<INTO>")
}

func TestResolver_BindingsOverride(t *testing.T) {
	mf := mustParse(t, "enums: [{name: A, variants: [{name: B, type: u8}]}]")

	core := options.BindingsCore
	plan, err := NewResolver(mf, ResolutionConfig{Bindings: &core}).Resolve()
	require.NoError(t, err)

	assert.Equal(t, options.BindingsCore, plan.Bindings)
	assert.Equal(t, options.BindingsCore, plan.Enums[0].Impls[0].Bindings)
}

func TestResolver_SkippedEnum(t *testing.T) {
	mf := mustParse(t, `
enums:
  - name: A
    skip: true
    variants: [{name: B, type: u8}]
  - name: C
    variants: [{name: D, type: u8}]
`)

	plan, err := Resolve(mf)
	require.NoError(t, err)
	require.Len(t, plan.Enums, 1)
	assert.Equal(t, "C", plan.Enums[0].Name)
	assert.Equal(t, []string{"enum_skipped"}, plan.Diagnostics.Codes())
}

func TestResolver_InvalidEnumIsDropped(t *testing.T) {
	mf := mustParse(t, `
enums:
  - name: A
    generics: "<T"
    variants: [{name: B, type: u8}]
  - name: C
    variants: [{name: D, type: u8}]
`)

	plan, err := Resolve(mf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResolution)
	assert.Contains(t, err.Error(), "invalid_generics")

	require.NotNil(t, plan)
	require.Len(t, plan.Enums, 1)
	assert.Equal(t, "C", plan.Enums[0].Name)

	lenient, err := NewResolver(mf, ResolutionConfig{}).Resolve()
	require.NoError(t, err)
	assert.True(t, lenient.Diagnostics.HasErrors())
}

func TestResolver_GlobalErrorsStop(t *testing.T) {
	mf := mustParse(t, "bindings: alloc\nenums: [{name: A, variants: [{name: B, type: u8}]}]")

	plan, err := Resolve(mf)
	require.ErrorIs(t, err, ErrResolution)
	assert.Empty(t, plan.Enums)
	assert.Equal(t, []string{"unknown_bindings"}, plan.Diagnostics.Codes())
}

func TestResolver_NilManifest(t *testing.T) {
	_, err := Resolve(nil)
	require.Error(t, err)
}

func TestGenerateReport(t *testing.T) {
	mf := mustParse(t, `
enums:
  - name: Message
    variants:
      - name: Text
        type: String
      - name: Empty
        into: true
  - name: Items
    variants:
      - name: Bytes
        type: "Vec<u8>"
        into: true
`)

	plan, err := Resolve(mf)
	require.NoError(t, err)

	report := GenerateReport(plan)
	require.Len(t, report.Enums, 2)
	assert.Equal(t, []ImplReport{{Variant: "Text", Source: "String"}}, report.Enums[0].Impls)
	assert.Equal(t, []ImplReport{{Variant: "Bytes", Source: "Vec<u8>", Into: true}}, report.Enums[1].Impls)
	assert.Len(t, report.Enums[0].Notes, 1)
	assert.Empty(t, report.Enums[1].Notes)
	assert.Equal(t, 1, report.Warnings)

	text := FormatReport(report)
	assert.Contains(t, text, "=== Message ===")
	assert.Contains(t, text, "=== Items ===")
	assert.Contains(t, text, "Text <- String")
	assert.Contains(t, text, "Bytes <- impl Into<Vec<u8>>")
	assert.Contains(t, text, "Message::Empty: [unit_variant]")
	assert.Contains(t, text, "Errors: 0, Warnings: 1")
}

func TestResolverRejectsIncompletePaths(t *testing.T) {
	mf := mustParse(t, `
enums:
  - name: Foo
    variants:
      - name: Bar
        type: "::"
      - name: Baz
        type: "std::"
      - name: Qux
        type: u8
`)

	plan, err := Resolve(mf)
	require.ErrorIs(t, err, ErrResolution)
	require.NotNil(t, plan)

	assert.Equal(t, []string{"invalid_variant_type", "invalid_variant_type"}, codes(plan.Diagnostics.Errors))
	assert.Equal(t, "Bar", plan.Diagnostics.Errors[0].Variant)
	assert.Equal(t, "Baz", plan.Diagnostics.Errors[1].Variant)
	assert.Empty(t, plan.Enums)
}
