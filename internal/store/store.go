// Package store defines the persistence boundary of the whisky service.
// Adapters live in subpackages (sqlite, postgres); the shared contract
// suite in storetest keeps them behaviorally identical.
package store

import (
	"context"

	"github.com/whiskyhouse/whisky-service/internal/model"
)

// Store is the persistence contract the HTTP layer depends on.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save inserts w when its ID is nil and updates the existing row
	// otherwise. It returns the stored entity, carrying the assigned id
	// on insert. Updating an id that matches no row returns
	// model.ErrNotFound.
	Save(ctx context.Context, w *model.Whisky) (*model.Whisky, error)

	// Get returns the whisky with the given id, or model.ErrNotFound.
	Get(ctx context.Context, id int64) (*model.Whisky, error)

	// List returns all whiskys in ascending id order, an empty slice
	// when the store is empty.
	List(ctx context.Context) ([]*model.Whisky, error)

	// Delete removes the whisky with the given id, or returns
	// model.ErrNotFound when there is nothing to remove.
	Delete(ctx context.Context, id int64) error

	// HealthPing verifies the underlying database connection.
	HealthPing(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
