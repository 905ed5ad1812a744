package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kmalouki/resumehub/internal/model"
)

// createTestStore creates a file-backed store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTickingStore creates a test store whose clock advances one second
// per call, so consecutive writes get strictly increasing timestamps.
func createTickingStore(t *testing.T) *Store {
	t.Helper()
	s := createTestStore(t)
	// Far in the future so ticking entries always sort after the seed
	// entry, which is stamped with the real clock during Open.
	base := time.Date(2100, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.SetNowFunc(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})
	return s
}

// testExperience builds a minimal valid experience.
func testExperience(role, company string) model.Experience {
	return model.Experience{
		Role:      role,
		Company:   company,
		StartDate: "Jan 2024",
		EndDate:   "Present",
		Tasks:     []string{"Did the work"},
	}
}

// testSkill builds a minimal valid skill.
func testSkill(name string, category model.SkillCategory) model.Skill {
	return model.Skill{Name: name, Category: category, Level: 3}
}

// testVariant builds a minimal valid variant.
func testVariant(name string) model.CVVariant {
	return model.CVVariant{
		Name:     name,
		Language: model.LanguageEnglish,
		Template: model.TemplateModern,
	}
}
