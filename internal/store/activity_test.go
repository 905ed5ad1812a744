package store

import (
	"context"
	"testing"
	"time"

	"github.com/kmalouki/resumehub/internal/model"
)

func TestActivity_EveryMutationLogsOnce(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	start, err := s.ActivityCount(ctx)
	if err != nil {
		t.Fatalf("ActivityCount() failed: %v", err)
	}

	expID, err := s.AddExperience(ctx, testExperience("Engineer", "Acme"))
	if err != nil {
		t.Fatalf("AddExperience() failed: %v", err)
	}
	role := "Senior Engineer"
	if err := s.UpdateExperience(ctx, expID, model.ExperiencePatch{Role: &role}); err != nil {
		t.Fatalf("UpdateExperience() failed: %v", err)
	}
	if err := s.RemoveExperience(ctx, expID); err != nil {
		t.Fatalf("RemoveExperience() failed: %v", err)
	}
	name := "Someone"
	if err := s.UpdateProfile(ctx, model.ProfilePatch{Name: &name}); err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}

	end, err := s.ActivityCount(ctx)
	if err != nil {
		t.Fatalf("ActivityCount() failed: %v", err)
	}
	if end-start != 4 {
		t.Errorf("4 mutations logged %d entries, want 4", end-start)
	}
}

func TestActivity_FailedMutationLogsNothing(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	before, err := s.ActivityCount(ctx)
	if err != nil {
		t.Fatalf("ActivityCount() failed: %v", err)
	}

	if _, err := s.AddExperience(ctx, model.Experience{}); !IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
	if err := s.RemoveExperience(ctx, "no-such-id"); !IsNotFound(err) {
		t.Fatalf("got %v, want not-found error", err)
	}

	after, err := s.ActivityCount(ctx)
	if err != nil {
		t.Fatalf("ActivityCount() failed: %v", err)
	}
	if after != before {
		t.Errorf("failed mutations logged activity: %d -> %d", before, after)
	}
}

func TestRecentActivity_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := createTickingStore(t)

	if _, err := s.AddExperience(ctx, testExperience("First", "Acme")); err != nil {
		t.Fatalf("AddExperience() failed: %v", err)
	}
	if _, err := s.AddSkill(ctx, testSkill("Go", model.CategoryLanguages)); err != nil {
		t.Fatalf("AddSkill() failed: %v", err)
	}

	entries, err := s.RecentActivity(ctx, 0)
	if err != nil {
		t.Fatalf("RecentActivity() failed: %v", err)
	}
	if len(entries) < 3 {
		t.Fatalf("got %d entries, want at least 3", len(entries))
	}
	if entries[0].Action != "Added skill" {
		t.Errorf("newest entry = %q, want %q", entries[0].Action, "Added skill")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Seq <= entries[i].Seq {
			t.Errorf("seq not descending at %d: %d then %d", i, entries[i-1].Seq, entries[i].Seq)
		}
		if entries[i-1].Timestamp.Before(entries[i].Timestamp) {
			t.Errorf("timestamps not descending at %d", i)
		}
	}
}

func TestRecentActivity_Limit(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := s.AddExperience(ctx, testExperience("Role", "Acme")); err != nil {
			t.Fatalf("AddExperience() failed: %v", err)
		}
	}

	entries, err := s.RecentActivity(ctx, 3)
	if err != nil {
		t.Fatalf("RecentActivity() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestActivity_TimestampsAreUTC(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	s.SetNowFunc(func() time.Time {
		loc := time.FixedZone("CET", 3600)
		return time.Date(2026, 3, 1, 13, 0, 0, 0, loc)
	})

	if _, err := s.AddSkill(ctx, testSkill("Go", model.CategoryLanguages)); err != nil {
		t.Fatalf("AddSkill() failed: %v", err)
	}

	entries, err := s.RecentActivity(ctx, 1)
	if err != nil {
		t.Fatalf("RecentActivity() failed: %v", err)
	}
	got := entries[0].Timestamp
	want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("timestamp = %v, want %v", got, want)
	}
}
