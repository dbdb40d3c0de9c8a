package analyzer

import (
	"reflect"
	"slices"
	"testing"
)

func TestRecommendAndroid(t *testing.T) {
	rec := NewRecommender(StaticCatalog{}).Recommend([]string{"flutter", "kotlin"})

	if rec.Field != FieldAndroidDevelopment {
		t.Fatalf("expected %s, got %s", FieldAndroidDevelopment, rec.Field)
	}
	for _, s := range []string{"Kotlin", "XML", "SQLite"} {
		if !slices.Contains(rec.RecommendedSkills, s) {
			t.Fatalf("expected recommended skills to include %s, got %v", s, rec.RecommendedSkills)
		}
	}
	if len(rec.RecommendedCourses) == 0 {
		t.Fatalf("expected android courses")
	}
}

func TestRecommendPriorityOrder(t *testing.T) {
	r := NewRecommender(nil)

	cases := []struct {
		skills []string
		field  Field
	}{
		{skills: []string{"tensorflow", "react"}, field: FieldDataScience},
		{skills: []string{"react", "tensorflow"}, field: FieldDataScience},
		{skills: []string{"Figma", "Swift"}, field: FieldIOSDevelopment},
		{skills: []string{"PHP"}, field: FieldWebDevelopment},
		{skills: []string{"adobe xd"}, field: FieldUIUXDevelopment},
		{skills: []string{"flask"}, field: FieldDataScience},
	}

	for _, tc := range cases {
		if got := r.Recommend(tc.skills).Field; got != tc.field {
			t.Fatalf("skills %v: expected %s, got %s", tc.skills, tc.field, got)
		}
	}
}

func TestRecommendNoMatch(t *testing.T) {
	for _, skills := range [][]string{nil, {}, {"cobol", "react native"}, {"reactjs"}, {" react "}} {
		rec := NewRecommender(StaticCatalog{}).Recommend(skills)
		if rec.Field != FieldNA {
			t.Fatalf("skills %v: expected NA, got %s", skills, rec.Field)
		}
		if rec.RecommendedSkills == nil || len(rec.RecommendedSkills) != 0 {
			t.Fatalf("expected empty recommended skills")
		}
		if rec.RecommendedCourses == nil || len(rec.RecommendedCourses) != 0 {
			t.Fatalf("expected empty courses")
		}
	}
}

type countingCatalog struct {
	asked []Field
}

func (c *countingCatalog) CoursesFor(field Field) []Course {
	c.asked = append(c.asked, field)
	return []Course{{Name: string(field), URL: "https://example.com"}}
}

func TestRecommendUsesCatalogForWinningFieldOnly(t *testing.T) {
	catalog := &countingCatalog{}
	rec := NewRecommender(catalog).Recommend([]string{"swift", "figma"})

	if !reflect.DeepEqual(catalog.asked, []Field{FieldIOSDevelopment}) {
		t.Fatalf("expected catalog to be asked only for iOS, got %v", catalog.asked)
	}
	if rec.RecommendedCourses[0].Name != string(FieldIOSDevelopment) {
		t.Fatalf("unexpected courses: %v", rec.RecommendedCourses)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	r := NewRecommender(nil)
	skills := []string{"wireframes", "kotlin", "Python"}

	first := r.Recommend(skills)
	reversed := []string{"Python", "kotlin", "wireframes"}
	if !reflect.DeepEqual(first, r.Recommend(skills)) || !reflect.DeepEqual(first, r.Recommend(reversed)) {
		t.Fatalf("recommendation changed between calls")
	}
	if skills[2] != "Python" {
		t.Fatalf("input skills were modified")
	}
}

func TestStaticCatalogUnknownField(t *testing.T) {
	if got := (StaticCatalog{}).CoursesFor("Quantum Basket Weaving"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty course list, got %v", got)
	}
}

func TestFieldKeywordsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range FieldKeywords() {
		if seen[k] {
			t.Fatalf("duplicate keyword %s", k)
		}
		seen[k] = true
	}
	if !seen["flask"] || !seen["wireframe"] {
		t.Fatalf("expected keywords from several fields")
	}
}
