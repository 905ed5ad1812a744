package store

import (
	"context"
	"testing"

	"github.com/kmalouki/resumehub/internal/model"
)

func TestCreateVariant_NeverDefault(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	v := testVariant("Backend EN")
	v.Default = true // ignored on create
	id, err := s.CreateVariant(ctx, v)
	if err != nil {
		t.Fatalf("CreateVariant() failed: %v", err)
	}

	got, err := s.GetVariant(ctx, id)
	if err != nil {
		t.Fatalf("GetVariant() failed: %v", err)
	}
	if got.Default {
		t.Error("created variant must not be default")
	}

	// The seeded default is untouched.
	def, err := s.DefaultVariant(ctx)
	if err != nil {
		t.Fatalf("DefaultVariant() failed: %v", err)
	}
	if def.Name != "Main CV" {
		t.Errorf("default variant = %q, want seeded Main CV", def.Name)
	}
}

func TestCreateVariant_Validation(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	cases := []struct {
		name    string
		variant model.CVVariant
	}{
		{"empty name", model.CVVariant{Language: model.LanguageEnglish, Template: model.TemplateModern}},
		{"bad language", model.CVVariant{Name: "X", Language: "de", Template: model.TemplateModern}},
		{"bad template", model.CVVariant{Name: "X", Language: model.LanguageEnglish, Template: "fancy"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.CreateVariant(ctx, tc.variant); !IsValidation(err) {
				t.Errorf("got %v, want validation error", err)
			}
		})
	}
}

func TestSetDefaultVariant_Transitions(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	id, err := s.CreateVariant(ctx, testVariant("Backend EN"))
	if err != nil {
		t.Fatalf("CreateVariant() failed: %v", err)
	}
	if err := s.SetDefaultVariant(ctx, id); err != nil {
		t.Fatalf("SetDefaultVariant() failed: %v", err)
	}

	def, err := s.DefaultVariant(ctx)
	if err != nil {
		t.Fatalf("DefaultVariant() failed: %v", err)
	}
	if def.ID != id {
		t.Errorf("default variant id = %q, want %q", def.ID, id)
	}

	// Exactly one default row at all times.
	var count int
	err = s.db.QueryRow("SELECT COUNT(*) FROM cv_variants WHERE is_default = 1").Scan(&count)
	if err != nil {
		t.Fatalf("count defaults failed: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d default variants, want 1", count)
	}
}

func TestSetDefaultVariant_AlreadyDefault(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	def, err := s.DefaultVariant(ctx)
	if err != nil {
		t.Fatalf("DefaultVariant() failed: %v", err)
	}
	if err := s.SetDefaultVariant(ctx, def.ID); err != nil {
		t.Fatalf("promoting the current default should succeed: %v", err)
	}

	again, err := s.DefaultVariant(ctx)
	if err != nil {
		t.Fatalf("DefaultVariant() failed: %v", err)
	}
	if again.ID != def.ID {
		t.Errorf("default changed: %q -> %q", def.ID, again.ID)
	}
}

func TestSetDefaultVariant_UnknownID(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	if err := s.SetDefaultVariant(ctx, "no-such-id"); !IsNotFound(err) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestDeleteVariant_DefaultIsProtected(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	def, err := s.DefaultVariant(ctx)
	if err != nil {
		t.Fatalf("DefaultVariant() failed: %v", err)
	}
	if err := s.DeleteVariant(ctx, def.ID); !IsInvariantViolation(err) {
		t.Errorf("got %v, want invariant violation", err)
	}

	// Still there.
	if _, err := s.GetVariant(ctx, def.ID); err != nil {
		t.Errorf("default variant disappeared: %v", err)
	}
}

func TestDeleteVariant_NonDefault(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	id, err := s.CreateVariant(ctx, testVariant("Disposable"))
	if err != nil {
		t.Fatalf("CreateVariant() failed: %v", err)
	}
	if err := s.DeleteVariant(ctx, id); err != nil {
		t.Fatalf("DeleteVariant() failed: %v", err)
	}
	if _, err := s.GetVariant(ctx, id); !IsNotFound(err) {
		t.Errorf("got %v, want not-found error", err)
	}
}

func TestListVariants_DefaultFirst(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	if _, err := s.CreateVariant(ctx, testVariant("AAA before Main CV")); err != nil {
		t.Fatalf("CreateVariant() failed: %v", err)
	}

	variants, err := s.ListVariants(ctx)
	if err != nil {
		t.Fatalf("ListVariants() failed: %v", err)
	}
	if len(variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(variants))
	}
	if !variants[0].Default {
		t.Errorf("first listed variant should be the default, got %q", variants[0].Name)
	}
}

func TestUpdateVariant_IDSets(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	id, err := s.CreateVariant(ctx, testVariant("Backend EN"))
	if err != nil {
		t.Fatalf("CreateVariant() failed: %v", err)
	}

	// Id sets are stored verbatim, even when the referenced records do
	// not exist.
	ids := []string{"ghost-1", "ghost-2"}
	err = s.UpdateVariant(ctx, id, model.VariantPatch{ExperienceIDs: &ids})
	if err != nil {
		t.Fatalf("UpdateVariant() failed: %v", err)
	}

	got, err := s.GetVariant(ctx, id)
	if err != nil {
		t.Fatalf("GetVariant() failed: %v", err)
	}
	if len(got.ExperienceIDs) != 2 || got.ExperienceIDs[0] != "ghost-1" {
		t.Errorf("experience ids = %v, want %v", got.ExperienceIDs, ids)
	}
	if len(got.ProjectIDs) != 0 {
		t.Errorf("untouched project ids changed: %v", got.ProjectIDs)
	}
}

func TestMarkExported_StampsTimestamp(t *testing.T) {
	ctx := context.Background()
	s := createTickingStore(t)

	def, err := s.DefaultVariant(ctx)
	if err != nil {
		t.Fatalf("DefaultVariant() failed: %v", err)
	}
	if def.LastExportedAt != nil {
		t.Fatal("fresh variant should have no export timestamp")
	}

	if err := s.MarkExported(ctx, def.ID); err != nil {
		t.Fatalf("MarkExported() failed: %v", err)
	}

	got, err := s.GetVariant(ctx, def.ID)
	if err != nil {
		t.Fatalf("GetVariant() failed: %v", err)
	}
	if got.LastExportedAt == nil {
		t.Fatal("export timestamp was not stamped")
	}
}
