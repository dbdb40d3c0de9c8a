package analyzer

import "testing"

func TestIsSupportedResume(t *testing.T) {
	cases := map[string]bool{
		"cv.pdf":          true,
		"CV.PDF":          true,
		"archive.tar.pdf": true,
		"cv.docx":         false,
		"pdf":             false,
		"cv.":             false,
		"cv.pdf.exe":      false,
		"":                false,
	}
	for name, want := range cases {
		if got := IsSupportedResume(name); got != want {
			t.Fatalf("%q: expected %v, got %v", name, want, got)
		}
	}
}

func TestAnalyzeMergesIndependentResults(t *testing.T) {
	name := "Jane Doe"
	profile := &ExtractedProfile{
		Name:      &name,
		Skills:    []string{"Kotlin"},
		PageCount: intPtr(1),
		RawText:   "Jane Doe\nProjects\nSkills\nInternship at Acme",
	}

	report := Analyze(profile, NewRecommender(nil))

	if report.Level.Level != LevelIntermediate {
		t.Fatalf("expected intermediate level, got %s", report.Level.Level)
	}
	if report.Recommendation.Field != FieldAndroidDevelopment {
		t.Fatalf("expected android field, got %s", report.Recommendation.Field)
	}
	if report.ScoreReport.TotalScore != 19+7+6 {
		t.Fatalf("expected score 32, got %d", report.ScoreReport.TotalScore)
	}
}

func TestAnalyzeEmptyProfile(t *testing.T) {
	report := Analyze(nil, NewRecommender(nil))

	if report.Level.Level != LevelNA {
		t.Fatalf("expected NA level, got %s", report.Level.Level)
	}
	if report.Recommendation.Field != FieldNA {
		t.Fatalf("expected NA field, got %s", report.Recommendation.Field)
	}
	if report.Profile.Skills == nil || report.Profile.Degree == nil {
		t.Fatalf("expected empty, non-nil skill and degree lists")
	}
	if report.ScoreReport.TotalScore != 0 {
		t.Fatalf("expected 0 score, got %d", report.ScoreReport.TotalScore)
	}
}
