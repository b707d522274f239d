package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent case-folds s and strips separators, so "no_std", "NoStd" and
// "no-std" all normalize to "nostd".
func NormalizeIdent(s string) string {
	var sb strings.Builder

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}
