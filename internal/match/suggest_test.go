package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	known := []string{"std", "core", "no_std"}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "typo", input: "cor", expected: []string{"core"}},
		{name: "separator", input: "nostd", expected: []string{"no_std", "std"}},
		{name: "exact match is not a suggestion", input: "core", expected: []string{}},
		{name: "nothing close", input: "alloc", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, known))
		})
	}
}

func TestSuggest_Limit(t *testing.T) {
	known := []string{"variant1", "variant2", "variant3", "variant4", "variant"}

	got := Suggest("varian", known)
	assert.Len(t, got, MaxSuggestions)
	assert.Equal(t, "variant", got[0])
}

func TestSuggest_Dedup(t *testing.T) {
	assert.Equal(t, []string{"into"}, Suggest("int", []string{"into", "into"}))
}

func TestNormalizeIdent(t *testing.T) {
	for _, in := range []string{"no_std", "NoStd", "no-std", "no std"} {
		assert.Equal(t, "nostd", NormalizeIdent(in), in)
	}
}
