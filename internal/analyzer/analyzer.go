// Package analyzer is the boundary to the external scoring collaborator. The
// service treats the collaborator as an opaque producer of assessment.Result
// values; this package offers a remote HTTP client and a built-in mock.
package analyzer

import (
	"context"
	"fmt"

	"github.com/orensade/Intub/internal/assessment"
)

// Image is one uploaded airway photograph.
type Image struct {
	Filename string
	Data     []byte
}

// Analyzer produces a difficulty assessment for a set of airway images.
type Analyzer interface {
	Analyze(ctx context.Context, images []Image) (assessment.Result, error)
}

// NetworkError reports that the collaborator was unreachable or rejected the
// request. Handlers surface it as a retryable upstream failure.
type NetworkError struct {
	Status  int
	Message string
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("analyzer: status %d: %s", e.Status, e.Message)
	}
	return "analyzer: " + e.Message
}

// difficultyConcerns lists the concern strings reported per risk category,
// matching the collaborator's concern vocabulary.
var difficultyConcerns = map[string][]string{
	assessment.CategoryEasy: {
		"Normal airway anatomy observed",
		"Good neck mobility",
		"Adequate mouth opening",
	},
	assessment.CategoryModerate: {
		"Some anatomical variations noted",
		"Consider backup airway equipment",
		"Mallampati score may be elevated",
		"Monitor for potential difficulties",
	},
	assessment.CategoryDifficult: {
		"Limited neck extension observed",
		"Mallampati score appears elevated",
		"Reduced thyromental distance",
		"Limited mouth opening",
		"Consider video laryngoscope",
		"Have difficult airway cart ready",
		"Consider awake intubation approach",
	},
}

// ConcernsFor returns the concern list for a risk category. The returned
// slice is a copy.
func ConcernsFor(riskCategory string) []string {
	return append([]string(nil), difficultyConcerns[riskCategory]...)
}
