package match

import (
	"cmp"
	"slices"
)

const (
	// MinSuggestScore is the lowest normalized similarity still suggested.
	MinSuggestScore = 0.5
	// MaxSuggestions caps the number of names returned by Suggest.
	MaxSuggestions = 3
)

type candidate struct {
	name  string
	score float64
}

// Suggest returns the known names that look like a misspelling of name,
// best match first. Exact matches are not suggestions.
func Suggest(name string, known []string) []string {
	var cands []candidate

	for _, k := range known {
		if k == name {
			continue
		}

		score := NormalizedLevenshteinScore(name, k)
		if score < MinSuggestScore {
			continue
		}

		cands = append(cands, candidate{name: k, score: score})
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(len(cands), MaxSuggestions))
	for _, c := range cands {
		if len(out) == MaxSuggestions {
			break
		}

		if !slices.Contains(out, c.name) {
			out = append(out, c.name)
		}
	}

	return out
}
