// Package recommendations turns raw concern strings and a risk category into
// clinical explanations and an ordered recommendation list. All output is
// derived from static tables; the same input always yields the same output.
package recommendations

import (
	"strings"

	"github.com/orensade/Intub/internal/assessment"
)

// Explain returns the clinical explanation for a concern. The concern is
// lowercased and checked against the keyword table in its defined order; the
// first fragment found as a substring wins. Unmatched concerns get a generic
// fallback, so the function is total.
func Explain(concern string) string {
	lowered := strings.ToLower(concern)
	for _, entry := range concernExplanations {
		if strings.Contains(lowered, entry.keyword) {
			return entry.explanation
		}
	}
	return fallbackExplanation
}

// Compose builds the ordered recommendation list for a result: one general
// recommendation chosen by risk category at position 0, then one entry per
// concern with a canonical-label match, in input order. Concerns without a
// canonical entry are skipped; duplicates produce duplicate entries.
func Compose(concerns []string, riskCategory string) []Recommendation {
	out := make([]Recommendation, 0, 1+len(concerns))
	out = append(out, generalFor(riskCategory))

	for _, concern := range concerns {
		if rec, ok := concernRecommendations[concern]; ok {
			out = append(out, rec.clone())
		}
	}
	return out
}

// generalFor picks the always-present category recommendation. An
// unrecognized category gets the Moderate template so Compose stays total.
func generalFor(riskCategory string) Recommendation {
	if rec, ok := generalRecommendations[riskCategory]; ok {
		return rec.clone()
	}
	return generalRecommendations[assessment.CategoryModerate].clone()
}
