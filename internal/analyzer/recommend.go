package analyzer

import (
	"slices"
	"strings"
)

type Field string

const (
	FieldNA                 Field = "NA"
	FieldDataScience        Field = "Data Science"
	FieldWebDevelopment     Field = "Web Development"
	FieldAndroidDevelopment Field = "Android Development"
	FieldIOSDevelopment     Field = "IOS Development"
	FieldUIUXDevelopment    Field = "UI-UX Development"
)

type FieldRecommendation struct {
	Field              Field    `json:"field"`
	RecommendedSkills  []string `json:"recommended_skills"`
	RecommendedCourses []Course `json:"recommended_courses"`
}

// CourseCatalog supplies the course list for a field. Unknown fields yield an
// empty list.
type CourseCatalog interface {
	CoursesFor(field Field) []Course
}

type fieldProfile struct {
	field             Field
	keywords          []string
	recommendedSkills []string
}

// fieldProfiles is evaluated in order; the first field whose keyword set
// contains one of the candidate's skills wins.
var fieldProfiles = []fieldProfile{
	{
		field: FieldDataScience,
		keywords: []string{
			"tensorflow", "keras", "pytorch", "machine learning", "deep learning", "flask", "streamlit",
		},
		recommendedSkills: []string{
			"Data Visualization", "Predictive Analysis", "Statistical Modeling", "Data Mining",
			"Clustering & Classification", "Data Analytics", "Quantitative Analysis", "Web Scraping",
			"ML Algorithms", "Keras", "Pytorch", "Probability", "Scikit-learn", "Tensorflow", "Flask", "Streamlit",
		},
	},
	{
		field: FieldWebDevelopment,
		keywords: []string{
			"react", "django", "node js", "react js", "php", "laravel", "magento", "wordpress",
			"javascript", "angular js", "c#", "asp.net", "flask",
		},
		recommendedSkills: []string{
			"React", "Django", "Node JS", "React JS", "PHP", "Laravel", "Magento", "WordPress",
			"JavaScript", "AngularJS", "C#", "Flask", "SDK",
		},
	},
	{
		field:    FieldAndroidDevelopment,
		keywords: []string{"android", "android development", "flutter", "kotlin", "xml", "kivy"},
		recommendedSkills: []string{
			"Android", "Flutter", "Kotlin", "XML", "Java", "Kivy", "GIT", "SDK", "SQLite",
		},
	},
	{
		field:    FieldIOSDevelopment,
		keywords: []string{"ios", "ios development", "swift", "cocoa", "cocoa touch", "xcode"},
		recommendedSkills: []string{
			"Swift", "Cocoa", "Cocoa Touch", "Xcode", "Objective-C", "SQLite", "Plist", "StoreKit",
			"UI-Kit", "AV Foundation", "Auto-Layout",
		},
	},
	{
		field: FieldUIUXDevelopment,
		keywords: []string{
			"ux", "adobe xd", "figma", "zeplin", "balsamiq", "ui", "prototyping", "wireframes",
			"storyframes", "adobe photoshop", "photoshop", "editing", "adobe illustrator", "illustrator",
			"adobe after effects", "after effects", "adobe premier pro", "premier pro", "adobe indesign",
			"indesign", "wireframe",
		},
		recommendedSkills: []string{
			"UI", "User Experience", "Adobe XD", "Figma", "Zeplin", "Balsamiq", "Prototyping", "Wireframes",
			"Storyframes", "Photoshop", "Illustrator", "After Effects", "Premier Pro", "Indesign", "User Research",
		},
	},
}

// FieldKeywords returns the keywords of every field in priority order,
// without duplicates.
func FieldKeywords() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, fp := range fieldProfiles {
		for _, k := range fp.keywords {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

type Recommender struct {
	catalog CourseCatalog
}

func NewRecommender(catalog CourseCatalog) *Recommender {
	if catalog == nil {
		catalog = StaticCatalog{}
	}
	return &Recommender{catalog: catalog}
}

// Recommend picks a career field from the candidate's skills. The order of
// the skills does not matter, only the fixed field priority does.
func (r *Recommender) Recommend(skills []string) FieldRecommendation {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		normalized = append(normalized, strings.ToLower(s))
	}

	for _, fp := range fieldProfiles {
		if !matchesAny(fp.keywords, normalized) {
			continue
		}

		courses := r.catalog.CoursesFor(fp.field)
		if courses == nil {
			courses = []Course{}
		}
		return FieldRecommendation{
			Field:              fp.field,
			RecommendedSkills:  append([]string(nil), fp.recommendedSkills...),
			RecommendedCourses: courses,
		}
	}

	return FieldRecommendation{
		Field:              FieldNA,
		RecommendedSkills:  []string{},
		RecommendedCourses: []Course{},
	}
}

func matchesAny(keywords []string, skills []string) bool {
	for _, s := range skills {
		if slices.Contains(keywords, s) {
			return true
		}
	}
	return false
}
