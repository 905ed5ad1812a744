package store

import (
	"context"
	"testing"

	"github.com/kmalouki/resumehub/internal/model"
)

func TestAddExperience_AssignsOrderSequentially(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	for _, role := range []string{"First", "Second", "Third"} {
		if _, err := s.AddExperience(ctx, testExperience(role, "Acme")); err != nil {
			t.Fatalf("AddExperience(%q) failed: %v", role, err)
		}
	}

	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences() failed: %v", err)
	}
	if len(experiences) != 3 {
		t.Fatalf("got %d experiences, want 3", len(experiences))
	}
	for i, e := range experiences {
		if e.Order != i {
			t.Errorf("experiences[%d].Order = %d, want %d", i, e.Order, i)
		}
	}
	if experiences[0].Role != "First" || experiences[2].Role != "Third" {
		t.Errorf("unexpected list order: %q, %q, %q",
			experiences[0].Role, experiences[1].Role, experiences[2].Role)
	}
}

func TestAddExperience_Validation(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	_, err := s.AddExperience(ctx, model.Experience{Company: "Acme"})
	if !IsValidation(err) {
		t.Errorf("missing role: got %v, want validation error", err)
	}

	_, err = s.AddExperience(ctx, model.Experience{Role: "Engineer"})
	if !IsValidation(err) {
		t.Errorf("missing company: got %v, want validation error", err)
	}
}

func TestAddExperience_StartsVisible(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	hidden := testExperience("Engineer", "Acme")
	hidden.Visible = false // ignored on create
	if _, err := s.AddExperience(ctx, hidden); err != nil {
		t.Fatalf("AddExperience() failed: %v", err)
	}

	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences() failed: %v", err)
	}
	if !experiences[0].Visible {
		t.Error("new experience should start visible")
	}
}

func TestListExperiences_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences() failed: %v", err)
	}
	if experiences == nil {
		t.Error("empty list should be a non-nil slice")
	}
	if len(experiences) != 0 {
		t.Errorf("got %d experiences, want 0", len(experiences))
	}
}

func TestUpdateExperience_PartialPatch(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	id, err := s.AddExperience(ctx, testExperience("Engineer", "Acme"))
	if err != nil {
		t.Fatalf("AddExperience() failed: %v", err)
	}

	role := "Senior Engineer"
	visible := false
	err = s.UpdateExperience(ctx, id, model.ExperiencePatch{Role: &role, Visible: &visible})
	if err != nil {
		t.Fatalf("UpdateExperience() failed: %v", err)
	}

	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences() failed: %v", err)
	}
	got := experiences[0]
	if got.Role != "Senior Engineer" {
		t.Errorf("role = %q, want %q", got.Role, "Senior Engineer")
	}
	if got.Company != "Acme" {
		t.Errorf("untouched company changed: %q", got.Company)
	}
	if got.Visible {
		t.Error("visibility patch was not applied")
	}
}

func TestUpdateExperience_UnknownID(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	role := "Engineer"
	err := s.UpdateExperience(ctx, "no-such-id", model.ExperiencePatch{Role: &role})
	if !IsNotFound(err) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestRemoveExperience(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	id, err := s.AddExperience(ctx, testExperience("Engineer", "Acme"))
	if err != nil {
		t.Fatalf("AddExperience() failed: %v", err)
	}
	if err := s.RemoveExperience(ctx, id); err != nil {
		t.Fatalf("RemoveExperience() failed: %v", err)
	}

	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences() failed: %v", err)
	}
	if len(experiences) != 0 {
		t.Errorf("got %d experiences after remove, want 0", len(experiences))
	}

	if err := s.RemoveExperience(ctx, id); !IsNotFound(err) {
		t.Errorf("second remove: got %v, want not-found error", err)
	}
}

func TestReorderExperiences(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	var ids []string
	for _, role := range []string{"A", "B", "C"} {
		id, err := s.AddExperience(ctx, testExperience(role, "Acme"))
		if err != nil {
			t.Fatalf("AddExperience(%q) failed: %v", role, err)
		}
		ids = append(ids, id)
	}

	// C, A, B
	if err := s.ReorderExperiences(ctx, []string{ids[2], ids[0], ids[1]}); err != nil {
		t.Fatalf("ReorderExperiences() failed: %v", err)
	}

	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences() failed: %v", err)
	}
	gotRoles := []string{experiences[0].Role, experiences[1].Role, experiences[2].Role}
	wantRoles := []string{"C", "A", "B"}
	for i := range wantRoles {
		if gotRoles[i] != wantRoles[i] {
			t.Errorf("position %d: got %q, want %q", i, gotRoles[i], wantRoles[i])
		}
	}
}

func TestReorderExperiences_RequiresExactPermutation(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	idA, err := s.AddExperience(ctx, testExperience("A", "Acme"))
	if err != nil {
		t.Fatalf("AddExperience() failed: %v", err)
	}
	idB, err := s.AddExperience(ctx, testExperience("B", "Acme"))
	if err != nil {
		t.Fatalf("AddExperience() failed: %v", err)
	}

	cases := []struct {
		name string
		ids  []string
	}{
		{"missing id", []string{idA}},
		{"duplicate id", []string{idA, idA}},
		{"unknown id", []string{idA, "no-such-id"}},
		{"extra id", []string{idA, idB, "extra"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.ReorderExperiences(ctx, tc.ids); !IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}

	// Order must be untouched after the rejected reorders.
	experiences, err := s.ListExperiences(ctx)
	if err != nil {
		t.Fatalf("ListExperiences() failed: %v", err)
	}
	if experiences[0].Role != "A" || experiences[1].Role != "B" {
		t.Errorf("rejected reorder changed order: %q, %q", experiences[0].Role, experiences[1].Role)
	}
}
