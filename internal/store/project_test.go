package store

import (
	"context"
	"testing"

	"github.com/kmalouki/resumehub/internal/model"
)

func TestToggleProjectFeatured(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	id, err := s.AddProject(ctx, model.Project{Name: "resumehub"})
	if err != nil {
		t.Fatalf("AddProject() failed: %v", err)
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects() failed: %v", err)
	}
	if projects[0].Featured {
		t.Error("new project should not be featured")
	}

	if err := s.ToggleProjectFeatured(ctx, id); err != nil {
		t.Fatalf("ToggleProjectFeatured() failed: %v", err)
	}
	projects, err = s.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects() failed: %v", err)
	}
	if !projects[0].Featured {
		t.Error("toggle did not set the featured flag")
	}

	if err := s.ToggleProjectFeatured(ctx, id); err != nil {
		t.Fatalf("second ToggleProjectFeatured() failed: %v", err)
	}
	projects, err = s.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects() failed: %v", err)
	}
	if projects[0].Featured {
		t.Error("second toggle did not clear the featured flag")
	}
}

func TestProject_JSONColumnsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	proj := model.Project{
		Name:         "resumehub",
		Highlights:   []string{"offline-first", "deterministic exports"},
		Technologies: []string{"Go", "SQLite"},
	}
	if _, err := s.AddProject(ctx, proj); err != nil {
		t.Fatalf("AddProject() failed: %v", err)
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects() failed: %v", err)
	}
	got := projects[0]
	if len(got.Highlights) != 2 || got.Highlights[0] != "offline-first" {
		t.Errorf("highlights = %v", got.Highlights)
	}
	if len(got.Technologies) != 2 || got.Technologies[1] != "SQLite" {
		t.Errorf("technologies = %v", got.Technologies)
	}
}

func TestProject_EmptyListsStayEmptySlices(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	if _, err := s.AddProject(ctx, model.Project{Name: "bare"}); err != nil {
		t.Fatalf("AddProject() failed: %v", err)
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects() failed: %v", err)
	}
	if projects[0].Highlights == nil {
		t.Error("highlights should round-trip as an empty slice, not nil")
	}
	if projects[0].Technologies == nil {
		t.Error("technologies should round-trip as an empty slice, not nil")
	}
}
