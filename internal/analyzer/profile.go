package analyzer

import (
	"path/filepath"
	"strings"
)

// ExtractedProfile holds the facts pulled out of a résumé. Optional fields are
// pointers and stay nil when the extractor could not find them.
type ExtractedProfile struct {
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	Skills    []string `json:"skills"`
	Degree    []string `json:"degree"`
	PageCount *int     `json:"page_count"`
	RawText   string   `json:"-"`
}

// Pages returns the page count, treating an unknown count as zero.
func (p *ExtractedProfile) Pages() int {
	if p == nil || p.PageCount == nil {
		return 0
	}
	return *p.PageCount
}

// Report is the combined result of a single résumé analysis.
type Report struct {
	Profile        *ExtractedProfile   `json:"profile"`
	Level          LevelResult         `json:"level"`
	Recommendation FieldRecommendation `json:"recommendation"`
	ScoreReport    ScoreReport         `json:"score_report"`
}

// Analyze runs level classification, field recommendation and section scoring
// over an already extracted profile.
func Analyze(profile *ExtractedProfile, rec *Recommender) Report {
	if profile == nil {
		profile = &ExtractedProfile{}
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Degree == nil {
		profile.Degree = []string{}
	}

	return Report{
		Profile:        profile,
		Level:          ClassifyLevel(profile, profile.RawText),
		Recommendation: rec.Recommend(profile.Skills),
		ScoreReport:    ScoreResume(profile.RawText),
	}
}

// IsSupportedResume reports whether a file may take part in résumé processing.
// Only PDF files are accepted.
func IsSupportedResume(filename string) bool {
	ext := filepath.Ext(filename)
	return len(ext) > 1 && strings.EqualFold(ext, ".pdf")
}
