// Package storetest holds the compliance suite every store adapter must pass.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/whiskyhouse/whisky-service/internal/model"
	"github.com/whiskyhouse/whisky-service/internal/store"
)

// Run exercises the store.Store contract against a fresh implementation.
// makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// An empty store lists as an empty slice, never nil.
	if lst, err := s.List(ctx); err != nil || lst == nil || len(lst) != 0 {
		t.Fatalf("List on empty store: got=%v err=%v", lst, err)
	}

	// Reads and deletes against an empty store report ErrNotFound.
	if _, err := s.Get(ctx, 1); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get on empty store: want ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, 1); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Delete on empty store: want ErrNotFound, got %v", err)
	}

	// Insert assigns an identifier and echoes the attributes.
	talisker, err := s.Save(ctx, model.NewWhisky("Talisker", "Scotland"))
	if err != nil {
		t.Fatalf("Save insert: %v", err)
	}
	if talisker.ID == nil {
		t.Fatalf("Save insert: no id assigned")
	}
	if talisker.Name != "Talisker" || talisker.Origin != "Scotland" {
		t.Fatalf("Save insert: attributes mangled: %+v", talisker)
	}

	bushmills, err := s.Save(ctx, model.NewWhisky("Bushmills", "Ireland"))
	if err != nil {
		t.Fatalf("Save second insert: %v", err)
	}
	if bushmills.ID == nil || *bushmills.ID == *talisker.ID {
		t.Fatalf("Save second insert: want a distinct id, got %v and %v", talisker.ID, bushmills.ID)
	}

	// Get round-trips the stored entity.
	got, err := s.Get(ctx, *talisker.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID == nil || *got.ID != *talisker.ID || got.Name != "Talisker" || got.Origin != "Scotland" {
		t.Fatalf("Get: round-trip mismatch: %+v", got)
	}

	// List returns everything in ascending id order.
	lst, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(lst) != 2 {
		t.Fatalf("List: want 2 entries, got %d", len(lst))
	}
	if *lst[0].ID != *talisker.ID || *lst[1].ID != *bushmills.ID {
		t.Fatalf("List: not in ascending id order: %v, %v", *lst[0].ID, *lst[1].ID)
	}

	// Update keeps the id and replaces the mutable fields.
	talisker.Origin = "Isle of Skye"
	updated, err := s.Save(ctx, talisker)
	if err != nil {
		t.Fatalf("Save update: %v", err)
	}
	if *updated.ID != *talisker.ID || updated.Origin != "Isle of Skye" {
		t.Fatalf("Save update: %+v", updated)
	}
	if got, err := s.Get(ctx, *talisker.ID); err != nil || got.Origin != "Isle of Skye" {
		t.Fatalf("Get after update: got=%+v err=%v", got, err)
	}

	// Updating a non-existent id is a not-found failure, not an upsert.
	missing := int64(987654)
	if _, err := s.Save(ctx, &model.Whisky{ID: &missing, Name: "Ghost", Origin: "Nowhere"}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Save update of missing id: want ErrNotFound, got %v", err)
	}

	// Delete removes the row; a second delete reports ErrNotFound.
	if err := s.Delete(ctx, *bushmills.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, *bushmills.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get after delete: want ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, *bushmills.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("repeated Delete: want ErrNotFound, got %v", err)
	}

	if err := s.HealthPing(ctx); err != nil {
		t.Fatalf("HealthPing: %v", err)
	}
}
