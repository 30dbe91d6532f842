// Package suggest provides "did you mean" candidates for misspelled names
// in error messages.
package suggest

import "github.com/agext/levenshtein"

// Closest returns the candidate that most closely matches want.
//
// How far a candidate may differ depends on the length of the input; short
// names tolerate only a single edit. Callers should not rely on the exact
// heuristic as it may change.
//
// If no candidate is close enough, an empty string is returned.
func Closest(want string, candidates []string) string {
	maxDist := len(want) / 4
	if maxDist == 0 {
		maxDist = 1
	}

	best := ""
	dist := maxDist + 1

	for _, cand := range candidates {
		if want == cand {
			return want
		}
		if d := levenshtein.Distance(want, cand, nil); d < dist {
			best = cand
			dist = d
		}
	}
	return best
}
