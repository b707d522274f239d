package fromimpl

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"

	"variant-from-generator/rsyntax"
)

//go:embed impl_doc.md
var implDoc string

const placeholderToken = iota

var placeholderMatcher = parsly.NewToken(placeholderToken, "{ .... }", matcher.NewBlock('{', '}', '\\'))

// docComment returns the doc attribute text for the given variant.
func docComment(variant rsyntax.Ident) (string, error) {
	return interpolate(strings.TrimSpace(implDoc), map[string]string{
		"variant": variant.String(),
	})
}

// interpolate replaces "{name}" placeholders in tmpl with vars[name].
func interpolate(tmpl string, vars map[string]string) (string, error) {
	var sb strings.Builder

	cursor := parsly.NewCursor("", []byte(tmpl), 0)
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAny(placeholderMatcher)
		if match.Code != placeholderToken {
			sb.WriteByte(cursor.Input[cursor.Pos])
			cursor.Pos++

			continue
		}

		text := match.Text(cursor)
		name := strings.TrimSuffix(strings.TrimPrefix(text, "{"), "}")

		value, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("doc template: unknown placeholder %q", text)
		}

		sb.WriteString(value)
	}

	return sb.String(), nil
}
