package analyzer

import "strings"

type Level string

const (
	LevelNA           Level = "NA"
	LevelFresher      Level = "Fresher"
	LevelIntermediate Level = "Intermediate"
	LevelExperienced  Level = "Experienced"
)

type LevelResult struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

const (
	msgFresher      = "You are at Fresher level!"
	msgIntermediate = "You are at intermediate level!"
	msgExperienced  = "You are at experience level!"
)

var (
	internshipKeywords = []string{"internship", "internships"}
	experienceKeywords = []string{"work experience", "experience"}
)

// ClassifyLevel derives the experience tier from the page count and the
// résumé text. A résumé with no known pages is NA, although it keeps the
// Fresher message.
func ClassifyLevel(profile *ExtractedProfile, rawText string) LevelResult {
	if profile.Pages() < 1 {
		return LevelResult{Level: LevelNA, Message: msgFresher}
	}

	text := strings.ToLower(rawText)
	switch {
	case containsAny(text, internshipKeywords):
		return LevelResult{Level: LevelIntermediate, Message: msgIntermediate}
	case containsAny(text, experienceKeywords):
		return LevelResult{Level: LevelExperienced, Message: msgExperienced}
	default:
		return LevelResult{Level: LevelFresher, Message: msgFresher}
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
