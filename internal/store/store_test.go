package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kmalouki/resumehub/internal/model"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	tables := []string{
		"profile", "experiences", "projects", "skills", "education",
		"certifications", "cv_variants", "settings", "activity_log",
	}
	for _, table := range tables {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q not found after idempotent opens: %v", table, err)
		}
	}
}

func TestOpen_SeedsStarterRecords(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	profile, err := s.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if profile.ID != model.SingletonID {
		t.Errorf("profile id = %q, want %q", profile.ID, model.SingletonID)
	}
	if profile.Name != "" {
		t.Errorf("seeded profile should be empty, got name %q", profile.Name)
	}
	if profile.SoftSkills == nil {
		t.Error("seeded profile soft skills should be an empty slice, got nil")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.ThemeMode != model.ThemeSystem {
		t.Errorf("seeded theme = %q, want %q", settings.ThemeMode, model.ThemeSystem)
	}
	if settings.Language != model.LanguageFrench {
		t.Errorf("seeded language = %q, want %q", settings.Language, model.LanguageFrench)
	}
	if settings.DefaultTemplate != model.TemplateClassic {
		t.Errorf("seeded template = %q, want %q", settings.DefaultTemplate, model.TemplateClassic)
	}
	if !settings.ShowPhoto {
		t.Error("seeded settings should show the photo")
	}

	variant, err := s.DefaultVariant(ctx)
	if err != nil {
		t.Fatalf("DefaultVariant() failed: %v", err)
	}
	if variant.Name != "Main CV" {
		t.Errorf("seeded variant name = %q, want %q", variant.Name, "Main CV")
	}
	if !variant.Default {
		t.Error("seeded variant should be the default")
	}
	if len(variant.ExperienceIDs) != 0 {
		t.Errorf("seeded variant should select all experiences, got %v", variant.ExperienceIDs)
	}
}

func TestOpen_SeedRunsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	name := "Renamed"
	if err := s1.UpdateProfile(ctx, model.ProfilePatch{Name: &name}); err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer s2.Close()

	profile, err := s2.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if profile.Name != "Renamed" {
		t.Errorf("reopen overwrote profile: name = %q, want %q", profile.Name, "Renamed")
	}

	variants, err := s2.ListVariants(ctx)
	if err != nil {
		t.Fatalf("ListVariants() failed: %v", err)
	}
	if len(variants) != 1 {
		t.Errorf("reopen reseeded variants: got %d, want 1", len(variants))
	}
}

func TestOpen_LogsInitialization(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	entries, err := s.RecentActivity(ctx, 0)
	if err != nil {
		t.Fatalf("RecentActivity() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d activity entries after init, want 1", len(entries))
	}
	if entries[0].Action != "Database initialized" {
		t.Errorf("action = %q, want %q", entries[0].Action, "Database initialized")
	}
	if entries[0].EntityType != "system" {
		t.Errorf("entity type = %q, want %q", entries[0].EntityType, "system")
	}
}
