package options_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-from-generator/options"
	"variant-from-generator/tokens"
)

func Example() {
	for _, name := range options.Names() {
		b, _ := options.ParseBindings(name)
		fmt.Println(b, tokens.Emit(b.FromTrait()))
	}
	// Output:
	// BindingsStd :: std :: convert :: From
	// BindingsCore :: core :: convert :: From
	// BindingsCore :: core :: convert :: From
}

func TestParseBindings(t *testing.T) {
	tests := []struct {
		input    string
		expected options.BindingsEnum
	}{
		{"", options.BindingsStd},
		{"std", options.BindingsStd},
		{" STD ", options.BindingsStd},
		{"core", options.BindingsCore},
		{"no_std", options.BindingsCore},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := options.ParseBindings(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := options.ParseBindings("alloc")
	assert.ErrorContains(t, err, `"alloc"`)
}

func TestBindingsEnum_Paths(t *testing.T) {
	assert.Equal(t, "std", options.BindingsStd.Root())
	assert.Equal(t, "core", options.BindingsCore.Root())
	assert.Equal(t, ":: core :: convert :: Into", tokens.Emit(options.BindingsCore.IntoTrait()).String())
	assert.Equal(t, ":: std :: convert :: Into", tokens.Emit(options.BindingsStd.IntoTrait()).String())
}

func TestBindingsEnum_IsValid(t *testing.T) {
	assert.True(t, options.BindingsStd.IsValid())
	assert.True(t, options.BindingsCore.IsValid())
	assert.False(t, options.BindingsEnum(options.BindingsTotal).IsValid())
	assert.False(t, options.BindingsEnum(-1).IsValid())
	assert.Equal(t, "BindingsEnum(5)", options.BindingsEnum(5).String())
}
