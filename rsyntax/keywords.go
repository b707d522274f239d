package rsyntax

import "strings"

// keywords holds strict and reserved Rust keywords (2021 edition).
var keywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true,
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "try": true, "typeof": true,
	"unsized": true, "virtual": true, "yield": true,
}

// pathKeywords may start or appear in a path.
var pathKeywords = map[string]bool{
	"self": true, "Self": true, "super": true, "crate": true,
}

// IsKeyword reports whether name is a reserved Rust keyword.
// Raw identifiers such as "r#type" are never keywords.
func IsKeyword(name string) bool {
	if strings.HasPrefix(name, "r#") {
		return false
	}

	return keywords[name]
}
