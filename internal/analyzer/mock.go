package analyzer

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/orensade/Intub/internal/assessment"
)

// Mock produces demo assessments without a trained model: a score uniform in
// [25,85], category by banding, and the fixed concern list for that category.
type Mock struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMock constructs a Mock with a time-based seed.
func NewMock() *Mock {
	return NewMockWithSeed(time.Now().UnixNano())
}

// NewMockWithSeed constructs a Mock with a fixed seed for deterministic tests.
func NewMockWithSeed(seed int64) *Mock {
	return &Mock{rng: rand.New(rand.NewSource(seed))}
}

// Analyze returns a randomized result shaped like the collaborator's output.
func (m *Mock) Analyze(ctx context.Context, images []Image) (assessment.Result, error) {
	if err := ctx.Err(); err != nil {
		return assessment.Result{}, err
	}

	m.mu.Lock()
	score := 25 + m.rng.Intn(61)
	m.mu.Unlock()

	category := assessment.CategoryForScore(score)
	return assessment.Result{
		Score:          score,
		RiskCategory:   category,
		Concerns:       ConcernsFor(category),
		ImagesAnalyzed: len(images),
	}, nil
}

// Scripted always returns a fixed result or error; it backs handler tests.
type Scripted struct {
	Result assessment.Result
	Err    error
}

// Analyze returns the scripted result with images_analyzed set to the input
// length when the script leaves it zero.
func (s *Scripted) Analyze(ctx context.Context, images []Image) (assessment.Result, error) {
	if s.Err != nil {
		return assessment.Result{}, s.Err
	}
	out := s.Result
	out.Concerns = append([]string(nil), s.Result.Concerns...)
	if out.ImagesAnalyzed == 0 {
		out.ImagesAnalyzed = len(images)
	}
	return out, nil
}
