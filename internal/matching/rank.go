package matching

import "sort"

// Default ranking parameters. Callers may override both per call site.
const (
	DefaultThreshold = 0.5
	DefaultLimit     = 5
)

// Candidate pairs a caller-supplied identifier with the profile to score.
type Candidate struct {
	ID      string
	Profile Profile
}

// Ranked is a candidate plus its computed compatibility.
type Ranked struct {
	Candidate
	Score float64
}

// RankOptions configures Rank. Zero values select the defaults.
type RankOptions struct {
	// Threshold excludes candidates scoring at or below it.
	Threshold float64
	// Limit truncates the result. Zero means DefaultLimit.
	Limit int
}

// Rank scores every candidate against the given profile, keeps those scoring
// strictly above the threshold, and returns them ordered best first. Ties keep
// the original candidate order.
func Rank(me Profile, candidates []Candidate, opts RankOptions) []Ranked {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		score := Score(me, c.Profile)
		if score > threshold {
			ranked = append(ranked, Ranked{Candidate: c, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
