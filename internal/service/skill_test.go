package service

import (
	"context"
	"errors"
	"testing"

	"github.com/skillfolio/skillfolio/internal/testutil"
)

func TestSkillService_CreateAndGet(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	svc := NewSkillService(store, nil)

	created, err := svc.Create(context.Background(), 1, CreateSkillInput{
		Name: "js",
		Link: "https://learn.js",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated skill id")
	}
	if created.UserID != 1 {
		t.Errorf("expected owner 1, got %d", created.UserID)
	}

	got, err := svc.Get(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "js" || got.Link != "https://learn.js" {
		t.Errorf("unexpected skill: %+v", got)
	}
}

func TestSkillService_CreateValidation(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	svc := NewSkillService(store, nil)

	_, err := svc.Create(context.Background(), 1, CreateSkillInput{Link: "https://learn.js"})
	if !errors.Is(err, ErrSkillNameRequired) {
		t.Errorf("missing name: expected ErrSkillNameRequired, got %v", err)
	}

	_, err = svc.Create(context.Background(), 1, CreateSkillInput{Name: "js"})
	if !errors.Is(err, ErrSkillLinkRequired) {
		t.Errorf("missing link: expected ErrSkillLinkRequired, got %v", err)
	}
}

func TestSkillService_OwnershipFilter(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	svc := NewSkillService(store, nil)

	created, err := svc.Create(context.Background(), 1, CreateSkillInput{Name: "js", Link: "https://learn.js"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Another user can never see, edit, or delete the record.
	if _, err := svc.Get(context.Background(), 2, created.ID); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("cross-user get: expected ErrSkillNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 2, created.ID, UpdateSkillInput{Name: strPtr("py")}); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("cross-user update: expected ErrSkillNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 2, created.ID); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("cross-user delete: expected ErrSkillNotFound, got %v", err)
	}

	// The owner still sees the untouched record.
	got, err := svc.Get(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if got.Name != "js" {
		t.Errorf("expected name unchanged, got %s", got.Name)
	}
}

func TestSkillService_List(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	svc := NewSkillService(store, nil)

	for _, name := range []string{"go", "sql", "docker"} {
		if _, err := svc.Create(context.Background(), 1, CreateSkillInput{Name: name, Link: "https://learn.example/" + name}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}
	if _, err := svc.Create(context.Background(), 2, CreateSkillInput{Name: "other", Link: "https://learn.example/other"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	skills, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}
	// Stable order: insertion order by id.
	for i, want := range []string{"go", "sql", "docker"} {
		if skills[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, skills[i].Name)
		}
	}
}

func TestSkillService_UpdatePartialFields(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	svc := NewSkillService(store, nil)

	created, err := svc.Create(context.Background(), 1, CreateSkillInput{
		Name:        "js",
		Description: strPtr("scripting"),
		Link:        "https://learn.js",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, created.ID, UpdateSkillInput{Name: strPtr("py")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Name != "py" {
		t.Errorf("expected name py, got %s", updated.Name)
	}
	if updated.Description == nil || *updated.Description != "scripting" {
		t.Error("description must stay untouched")
	}
	if updated.Link != "https://learn.js" {
		t.Errorf("link must stay untouched, got %s", updated.Link)
	}
}

func TestSkillService_UpdateRejectsBlankRequiredFields(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	svc := NewSkillService(store, nil)

	created, err := svc.Create(context.Background(), 1, CreateSkillInput{Name: "js", Link: "https://learn.js"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateSkillInput{Name: strPtr("")}); !errors.Is(err, ErrSkillNameRequired) {
		t.Errorf("blank name: expected ErrSkillNameRequired, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 1, created.ID, UpdateSkillInput{Link: strPtr("")}); !errors.Is(err, ErrSkillLinkRequired) {
		t.Errorf("blank link: expected ErrSkillLinkRequired, got %v", err)
	}
}

func TestSkillService_DeleteThenGet(t *testing.T) {
	t.Parallel()

	store := testutil.NewMemStore()
	svc := NewSkillService(store, nil)

	created, err := svc.Create(context.Background(), 1, CreateSkillInput{Name: "js", Link: "https://learn.js"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), 1, created.ID); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("expected ErrSkillNotFound after delete, got %v", err)
	}

	skills, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(skills) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(skills))
	}
}
