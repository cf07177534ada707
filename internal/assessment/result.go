// Package assessment defines the analysis result produced by the scoring
// collaborator and the score-to-category banding shared across the service.
package assessment

// Risk categories band the 1-100 difficulty score.
const (
	CategoryEasy      = "Easy"
	CategoryModerate  = "Moderate"
	CategoryDifficult = "Difficult"
)

// Result is the scoring collaborator's output. The core treats it as opaque
// and trusts the producer's score/category pairing.
type Result struct {
	Score          int      `json:"score"`
	RiskCategory   string   `json:"risk_category"`
	Concerns       []string `json:"concerns"`
	ImagesAnalyzed int      `json:"images_analyzed"`
}

// CategoryForScore maps a difficulty score to its risk category:
// 1-33 Easy, 34-66 Moderate, 67-100 Difficult.
func CategoryForScore(score int) string {
	switch {
	case score <= 33:
		return CategoryEasy
	case score <= 66:
		return CategoryModerate
	default:
		return CategoryDifficult
	}
}

// ValidCategory reports whether value is one of the three risk categories.
func ValidCategory(value string) bool {
	switch value {
	case CategoryEasy, CategoryModerate, CategoryDifficult:
		return true
	}
	return false
}
