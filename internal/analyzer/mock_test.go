package analyzer

import (
	"context"
	"testing"

	"github.com/orensade/Intub/internal/assessment"
)

func TestMockResultIsConsistent(t *testing.T) {
	mock := NewMockWithSeed(1)
	ctx := context.Background()
	images := []Image{{Filename: "front.png"}, {Filename: "open.png"}, {Filename: "lat.png"}}

	for i := 0; i < 50; i++ {
		result, err := mock.Analyze(ctx, images)
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		if result.Score < 25 || result.Score > 85 {
			t.Fatalf("score %d out of mock range [25,85]", result.Score)
		}
		if result.RiskCategory != assessment.CategoryForScore(result.Score) {
			t.Fatalf("category %q inconsistent with score %d", result.RiskCategory, result.Score)
		}
		want := ConcernsFor(result.RiskCategory)
		if len(result.Concerns) != len(want) {
			t.Fatalf("expected %d concerns for %q, got %d", len(want), result.RiskCategory, len(result.Concerns))
		}
		if result.ImagesAnalyzed != 3 {
			t.Fatalf("expected images_analyzed 3, got %d", result.ImagesAnalyzed)
		}
	}
}

func TestMockDeterministicWithSeed(t *testing.T) {
	ctx := context.Background()
	a := NewMockWithSeed(42)
	b := NewMockWithSeed(42)
	for i := 0; i < 10; i++ {
		ra, _ := a.Analyze(ctx, nil)
		rb, _ := b.Analyze(ctx, nil)
		if ra.Score != rb.Score {
			t.Fatalf("same seed diverged at iteration %d: %d vs %d", i, ra.Score, rb.Score)
		}
	}
}

func TestConcernsForReturnsCopy(t *testing.T) {
	first := ConcernsFor(assessment.CategoryDifficult)
	if len(first) == 0 {
		t.Fatal("expected concerns for Difficult")
	}
	first[0] = "mutated"
	second := ConcernsFor(assessment.CategoryDifficult)
	if second[0] == "mutated" {
		t.Fatal("ConcernsFor must return a copy")
	}
}

func TestConcernsForUnknownCategory(t *testing.T) {
	if got := ConcernsFor("Unknown"); len(got) != 0 {
		t.Fatalf("expected no concerns for unknown category, got %v", got)
	}
}
