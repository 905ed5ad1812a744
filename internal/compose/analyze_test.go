package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmalouki/resumehub/internal/model"
)

func findByCategory(findings []Finding, category string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func TestAnalyze_EmptyCV(t *testing.T) {
	findings := Analyze(Entities{})

	types := make(map[FindingType]int)
	for _, f := range findings {
		types[f.Type]++
	}
	assert.Zero(t, types[FindingSuccess], "empty CV has nothing to praise")
	assert.NotZero(t, types[FindingWarning])

	profile := findByCategory(findings, "Profile")
	assert.NotEmpty(t, profile)
	for _, f := range profile {
		assert.NotEmpty(t, f.Suggestion, "profile findings carry a suggestion")
	}
}

func TestAnalyze_CompleteContactInfo(t *testing.T) {
	entities := Entities{
		Profile: model.Profile{Name: "Khalil", Email: "k@example.com"},
	}

	findings := Analyze(entities)

	var found bool
	for _, f := range findByCategory(findings, "Profile") {
		if f.Type == FindingSuccess {
			found = true
		}
	}
	assert.True(t, found, "complete contact info yields a success finding")
}

func TestAnalyze_ThinExperiences(t *testing.T) {
	entities := Entities{
		Experiences: []model.Experience{
			{Role: "A", Company: "X", Tasks: []string{"one"}},
			{Role: "B", Company: "Y", Tasks: []string{"one", "two", "three"}},
		},
	}

	findings := Analyze(entities)

	var thin bool
	for _, f := range findByCategory(findings, "Experience") {
		if f.Type == FindingWarning {
			thin = true
		}
	}
	assert.True(t, thin, "an experience with fewer than 2 tasks is flagged")
}

func TestAnalyze_Deterministic(t *testing.T) {
	entities := Entities{
		Profile: model.Profile{Name: "Khalil"},
		Skills: []model.Skill{
			{Name: "Go", Category: model.CategoryLanguages, Level: 5},
		},
	}

	assert.Equal(t, Analyze(entities), Analyze(entities))
}
