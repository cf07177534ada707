// Package assessments orchestrates the analyze flow: scoring through the
// collaborator, thumbnail derivation, history persistence, and the composed
// interpretation returned to the caller.
package assessments

import (
	"context"
	"time"

	"github.com/orensade/Intub/internal/analyzer"
	"github.com/orensade/Intub/internal/assessment"
	"github.com/orensade/Intub/internal/assessment/recommendations"
	"github.com/orensade/Intub/internal/history"
	"github.com/orensade/Intub/internal/shared/metrics"
	"github.com/orensade/Intub/internal/shared/telemetry"
	"github.com/orensade/Intub/internal/thumbnail"
)

// Outcome is a completed assessment together with its interpretation.
type Outcome struct {
	Result          assessment.Result
	HistoryID       string
	Recommendations []recommendations.Recommendation
	Explanations    map[string]string
}

// Service contains the analyze-flow business logic.
type Service struct {
	Analyzer analyzer.Analyzer
	Demo     analyzer.Analyzer
	History  *history.Store
}

// Analyze scores the images through the configured collaborator.
func (s *Service) Analyze(ctx context.Context, images []analyzer.Image) (Outcome, error) {
	return s.run(ctx, s.Analyzer, images)
}

// AnalyzeDemo scores the images through the built-in mock regardless of the
// configured collaborator. It backs the demo endpoint.
func (s *Service) AnalyzeDemo(ctx context.Context, images []analyzer.Image) (Outcome, error) {
	return s.run(ctx, s.Demo, images)
}

func (s *Service) run(ctx context.Context, a analyzer.Analyzer, images []analyzer.Image) (Outcome, error) {
	metrics.IncAnalyzeStarted()
	start := time.Now()

	result, err := a.Analyze(ctx, images)
	if err != nil {
		metrics.IncAnalyzeFailed()
		return Outcome{}, err
	}
	metrics.IncAnalyzeCompleted()
	metrics.ObserveAnalyzeDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	// Thumbnail failures are non-fatal: the assessment is saved without one.
	thumb := ""
	if len(images) > 0 {
		derived, err := thumbnail.Derive(ctx, images[0].Data)
		if err != nil {
			telemetry.Warn("thumbnail.derive.failed", map[string]any{
				"err":      err.Error(),
				"filename": images[0].Filename,
			})
		} else {
			thumb = derived
		}
	}

	historyID := s.History.Add(ctx, result, thumb)

	explanations := make(map[string]string, len(result.Concerns))
	for _, concern := range result.Concerns {
		explanations[concern] = recommendations.Explain(concern)
	}

	return Outcome{
		Result:          result,
		HistoryID:       historyID,
		Recommendations: recommendations.Compose(result.Concerns, result.RiskCategory),
		Explanations:    explanations,
	}, nil
}
