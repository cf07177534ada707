package assessment

import "testing"

func TestCategoryForScoreBanding(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{1, CategoryEasy},
		{20, CategoryEasy},
		{33, CategoryEasy},
		{34, CategoryModerate},
		{50, CategoryModerate},
		{66, CategoryModerate},
		{67, CategoryDifficult},
		{85, CategoryDifficult},
		{100, CategoryDifficult},
	}
	for _, tc := range cases {
		if got := CategoryForScore(tc.score); got != tc.want {
			t.Errorf("CategoryForScore(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, valid := range []string{CategoryEasy, CategoryModerate, CategoryDifficult} {
		if !ValidCategory(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "easy", "Hard", "moderate "} {
		if ValidCategory(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
