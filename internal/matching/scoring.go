// Package matching computes compatibility between user profiles for skill
// exchange pairing.
package matching

import "strings"

// Weights for the two scoring components. Shared interests matter, but what
// a user can actually teach matters more.
const (
	interestWeight = 0.4
	skillWeight    = 0.6
)

// Profile is the minimal slice of a user profile the scorer needs.
type Profile struct {
	Skills    []string
	Interests []string
}

// Score computes the compatibility between two profiles as a value in [0, 1].
// Each component is the overlap count normalized by the larger list; a
// component with two empty lists contributes 0 rather than dividing by zero.
// Inputs are never mutated.
func Score(a, b Profile) float64 {
	interestTerm := overlapRatio(a.Interests, b.Interests)
	skillTerm := overlapRatio(a.Skills, b.Skills)
	return interestWeight*interestTerm + skillWeight*skillTerm
}

// overlapRatio returns |a ∩ b| / max(|a|, |b|), comparing entries
// case-insensitively after trimming. Returns 0 when both lists are empty.
func overlapRatio(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(b))
	for _, item := range b {
		if key := normalize(item); key != "" {
			seen[key] = true
		}
	}

	common := 0
	counted := make(map[string]bool, len(a))
	for _, item := range a {
		key := normalize(item)
		if key == "" || counted[key] {
			continue
		}
		counted[key] = true
		if seen[key] {
			common++
		}
	}

	denom := len(a)
	if len(b) > denom {
		denom = len(b)
	}
	if denom == 0 {
		return 0
	}
	return float64(common) / float64(denom)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
