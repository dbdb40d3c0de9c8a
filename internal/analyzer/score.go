package analyzer

import (
	"fmt"
	"strings"
)

const maxScore = 100

type SectionCheck struct {
	Label   string `json:"label"`
	Present bool   `json:"present"`
	Points  int    `json:"points"`
}

type ScoreReport struct {
	TotalScore int            `json:"total_score"`
	Tips       []string       `json:"tips"`
	Checklist  []SectionCheck `json:"checklist"`
}

type sectionRule struct {
	label    string
	keywords []string
	points   int
}

// Evaluation order is also the checklist order. Points sum to 100.
var sectionRules = []sectionRule{
	{label: "Objective/Summary", keywords: []string{"objective", "summary"}, points: 6},
	{label: "Education", keywords: []string{"education", "school", "college"}, points: 12},
	{label: "Experience", keywords: []string{"experience"}, points: 16},
	{label: "Internships", keywords: []string{"internship"}, points: 6},
	{label: "Skills", keywords: []string{"skills", "skill"}, points: 7},
	{label: "Hobbies", keywords: []string{"hobbies"}, points: 4},
	{label: "Interests", keywords: []string{"interests"}, points: 5},
	{label: "Achievements", keywords: []string{"achievements"}, points: 13},
	{label: "Certifications", keywords: []string{"certifications", "certification"}, points: 12},
	{label: "Projects", keywords: []string{"projects", "project"}, points: 19},
}

// ScoreResume checks the résumé text for each known section and sums the
// points of the sections it finds. Every missing section produces a tip.
func ScoreResume(text string) ScoreReport {
	lower := strings.ToLower(text)

	report := ScoreReport{
		Tips:      []string{},
		Checklist: make([]SectionCheck, 0, len(sectionRules)),
	}

	score := 0
	for _, rule := range sectionRules {
		if containsAny(lower, rule.keywords) {
			score += rule.points
			report.Checklist = append(report.Checklist, SectionCheck{Label: rule.label, Present: true, Points: rule.points})
			continue
		}
		report.Tips = append(report.Tips, missingSectionTip(rule.label))
		report.Checklist = append(report.Checklist, SectionCheck{Label: rule.label})
	}

	report.TotalScore = clampScore(score)
	return report
}

func missingSectionTip(label string) string {
	return fmt.Sprintf("Add %s section to strengthen your resume.", label)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
