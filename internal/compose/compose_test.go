package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalouki/resumehub/internal/model"
)

func testEntities() Entities {
	return Entities{
		Profile: model.Profile{ID: model.SingletonID, Name: "Khalil"},
		Experiences: []model.Experience{
			{ID: "exp-1", Role: "Engineer", Company: "Acme", Visible: true, Order: 0},
			{ID: "exp-2", Role: "Consultant", Company: "Initech", Visible: true, Order: 1},
			{ID: "exp-3", Role: "Hidden", Company: "Acme", Visible: false, Order: 2},
		},
		Projects: []model.Project{
			{ID: "proj-1", Name: "resumehub", Visible: true, Order: 0},
			{ID: "proj-2", Name: "secret", Visible: false, Order: 1},
		},
		Skills: []model.Skill{
			{ID: "sk-1", Name: "Go", Category: model.CategoryLanguages, Level: 5, Visible: true},
			{ID: "sk-2", Name: "PostgreSQL", Category: model.CategoryDatabases, Level: 4, Visible: true},
		},
		Education: []model.Education{
			{ID: "edu-1", Degree: "MSc", Institution: "ENSI", Order: 0},
			{ID: "edu-2", Degree: "BSc", Institution: "ENSI", Order: 1},
		},
		Certifications: []model.Certification{
			{ID: "cert-1", Name: "CKA", Issuer: "CNCF"},
		},
		Settings: model.Settings{ID: model.SingletonID, ThemeMode: model.ThemeSystem},
	}
}

func TestNewSnapshot_EmptyIDSetsIncludeAllVisible(t *testing.T) {
	variant := model.CVVariant{ID: "v1", Name: "All"}

	snap := NewSnapshot(variant, testEntities())

	require.Len(t, snap.Experiences, 2, "hidden experience must be excluded")
	assert.Equal(t, "exp-1", snap.Experiences[0].ID)
	assert.Equal(t, "exp-2", snap.Experiences[1].ID)
	require.Len(t, snap.Projects, 1, "hidden project must be excluded")
	assert.Len(t, snap.Skills, 2)
	assert.Len(t, snap.Education, 2)
	assert.Len(t, snap.Certifications, 1)
}

func TestNewSnapshot_IDSetsFilter(t *testing.T) {
	variant := model.CVVariant{
		ID:            "v1",
		Name:          "Narrow",
		ExperienceIDs: []string{"exp-2"},
		SkillIDs:      []string{"sk-1"},
		EducationIDs:  []string{"edu-2"},
	}

	snap := NewSnapshot(variant, testEntities())

	require.Len(t, snap.Experiences, 1)
	assert.Equal(t, "exp-2", snap.Experiences[0].ID)
	require.Len(t, snap.Skills, 1)
	assert.Equal(t, "Go", snap.Skills[0].Name)
	require.Len(t, snap.Education, 1)
	assert.Equal(t, "edu-2", snap.Education[0].ID)
	// Unfiltered collections still include everything visible.
	assert.Len(t, snap.Projects, 1)
	assert.Len(t, snap.Certifications, 1)
}

func TestNewSnapshot_VisibilityBeatsSelection(t *testing.T) {
	// Selecting a hidden record does not resurrect it.
	variant := model.CVVariant{
		ID:            "v1",
		ExperienceIDs: []string{"exp-3"},
	}

	snap := NewSnapshot(variant, testEntities())

	assert.Empty(t, snap.Experiences)
}

func TestNewSnapshot_DanglingIDsAreSkipped(t *testing.T) {
	variant := model.CVVariant{
		ID:            "v1",
		ExperienceIDs: []string{"exp-1", "deleted-long-ago"},
	}

	snap := NewSnapshot(variant, testEntities())

	require.Len(t, snap.Experiences, 1)
	assert.Equal(t, "exp-1", snap.Experiences[0].ID)
}

func TestNewSnapshot_EmptyCollectionsAreNonNil(t *testing.T) {
	snap := NewSnapshot(model.CVVariant{ID: "v1"}, Entities{})

	assert.NotNil(t, snap.Experiences)
	assert.NotNil(t, snap.Projects)
	assert.NotNil(t, snap.Skills)
	assert.NotNil(t, snap.Education)
	assert.NotNil(t, snap.Certifications)
}

func TestNewSnapshot_GroupsSkillsByCategory(t *testing.T) {
	snap := NewSnapshot(model.CVVariant{ID: "v1"}, testEntities())

	require.Len(t, snap.SkillsByCategory[model.CategoryLanguages], 1)
	assert.Equal(t, "Go", snap.SkillsByCategory[model.CategoryLanguages][0].Name)
	require.Len(t, snap.SkillsByCategory[model.CategoryDatabases], 1)
	assert.Empty(t, snap.SkillsByCategory[model.CategoryDevops])
}

func TestNewSnapshot_Deterministic(t *testing.T) {
	variant := model.CVVariant{ID: "v1", SkillIDs: []string{"sk-2", "sk-1"}}
	entities := testEntities()

	first := NewSnapshot(variant, entities)
	second := NewSnapshot(variant, entities)

	// Selection order does not matter; entity order does.
	assert.Equal(t, first.Skills, second.Skills)
	assert.Equal(t, "sk-1", first.Skills[0].ID)

	// Composing must not mutate the inputs.
	assert.Len(t, entities.Experiences, 3)
}
