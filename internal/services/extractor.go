package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
)

var ErrExtractionFailed = errors.New("could not extract text from resume")

// ExtractorService turns a résumé into an analyzer.ExtractedProfile. Every
// field is looked up on its own; a field that cannot be found is left empty
// and never fails the extraction.
type ExtractorService interface {
	Extract(filePath string) (*analyzer.ExtractedProfile, error)
	ExtractFromBytes(data []byte) (*analyzer.ExtractedProfile, error)
	ProfileFromText(text string, pageCount int) *analyzer.ExtractedProfile
}

type extractorService struct {
	pdfParser PDFParserService
	skills    []skillMatcher
}

type skillMatcher struct {
	name string
	re   *regexp.Regexp
}

func NewExtractorService(pdfParser PDFParserService) ExtractorService {
	return &extractorService{
		pdfParser: pdfParser,
		skills:    buildSkillMatchers(skillVocabulary()),
	}
}

var (
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern  = regexp.MustCompile(`(?:\+?\d{1,3}[\s\-.]?)?(?:\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}|\d{5}[\s\-]?\d{5})`)
	degreePattern = regexp.MustCompile(`\b(?:B\.\s?Tech|BTech|M\.\s?Tech|MTech|B\.E\.|M\.E\.|B\.\s?Sc|BSc|M\.\s?Sc|MSc|BCA|MCA|MBA|Ph\.\s?D|PhD|B\.\s?Com|M\.\s?Com|Bachelor(?:'s)?(?:\s+of\s+[A-Z][A-Za-z]+)*|Master(?:'s)?(?:\s+of\s+[A-Z][A-Za-z]+)*|Diploma)`)
)

// generalSkills complements the field keywords so the extracted skill list
// is useful beyond field detection.
var generalSkills = []string{
	"Python", "Java", "Golang", "C++", "Rust", "TypeScript", "Ruby", "Scala",
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Linux", "Git",
	"HTML", "CSS", "Vue", "Next.js", "Spring Boot", "GraphQL",
	"Pandas", "NumPy", "Scikit-learn", "NLP", "Computer Vision", "Data Analysis",
	"Tableau", "Power BI", "Objective-C",
}

func skillVocabulary() []string {
	vocab := append([]string{}, analyzer.FieldKeywords()...)
	return append(vocab, generalSkills...)
}

func buildSkillMatchers(vocab []string) []skillMatcher {
	seen := make(map[string]struct{}, len(vocab))
	matchers := make([]skillMatcher, 0, len(vocab))

	for _, skill := range vocab {
		key := strings.ToLower(skill)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		pattern := `(?i)(?:^|[^\p{L}\p{N}+#])` + regexp.QuoteMeta(skill) + `(?:$|[^\p{L}\p{N}+#])`
		matchers = append(matchers, skillMatcher{name: skill, re: regexp.MustCompile(pattern)})
	}

	return matchers
}

func (e *extractorService) Extract(filePath string) (*analyzer.ExtractedProfile, error) {
	content, err := e.pdfParser.Extract(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	return e.ProfileFromText(content.Text, content.PageCount), nil
}

func (e *extractorService) ExtractFromBytes(data []byte) (*analyzer.ExtractedProfile, error) {
	content, err := e.pdfParser.ExtractFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	return e.ProfileFromText(content.Text, content.PageCount), nil
}

func (e *extractorService) ProfileFromText(text string, pageCount int) *analyzer.ExtractedProfile {
	flat := strings.Join(strings.Fields(text), " ")

	profile := &analyzer.ExtractedProfile{
		Name:    extractName(text),
		Email:   firstMatch(emailPattern, flat),
		Phone:   extractPhone(flat),
		Skills:  e.extractSkills(flat),
		Degree:  extractDegrees(flat),
		RawText: text,
	}
	if pageCount > 0 {
		profile.PageCount = &pageCount
	}

	return profile
}

func (e *extractorService) extractSkills(text string) []string {
	skills := []string{}
	for _, m := range e.skills {
		if m.re.MatchString(text) {
			skills = append(skills, m.name)
		}
	}
	return skills
}

var headingLines = map[string]struct{}{
	"resume":           {},
	"résumé":           {},
	"cv":               {},
	"curriculum vitae": {},
}

// extractName takes the first plausible line of the résumé: a few words,
// no e-mail address, mostly letters.
func extractName(text string) *string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, heading := headingLines[strings.ToLower(line)]; heading {
			continue
		}

		words := strings.Fields(line)
		if len(words) > 6 || strings.Contains(line, "@") || !mostlyLetters(line) {
			return nil
		}

		name := strings.Join(words, " ")
		return &name
	}
	return nil
}

func mostlyLetters(s string) bool {
	var letters, digits int
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	return letters > 0 && digits == 0
}

func extractPhone(text string) *string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits >= 10 && digits <= 13 {
			phone := strings.TrimSpace(candidate)
			return &phone
		}
	}
	return nil
}

func extractDegrees(text string) []string {
	degrees := []string{}
	seen := make(map[string]struct{})
	for _, d := range degreePattern.FindAllString(text, -1) {
		d = strings.TrimSpace(d)
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		degrees = append(degrees, d)
	}
	return degrees
}

func firstMatch(re *regexp.Regexp, text string) *string {
	m := re.FindString(text)
	if m == "" {
		return nil
	}
	return &m
}
