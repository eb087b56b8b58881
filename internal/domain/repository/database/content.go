package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mediashelf/internal/domain/model"
)

// ContentRepo is document-level CRUD over one content collection.
type ContentRepo interface {
	// Insert stores a new document and returns its generated identifier.
	Insert(ctx context.Context, doc model.Content) (string, error)

	// All decodes every document in the collection into results,
	// which must be a pointer to a slice.
	All(ctx context.Context, results any) error

	// Update applies a partial $set update to the identified document.
	// Returns ErrNotFound when nothing was modified or the id is malformed.
	Update(ctx context.Context, id string, changes bson.M) error

	// Delete removes at most one document and returns the deleted count.
	// A malformed id deletes nothing.
	Delete(ctx context.Context, id string) (int64, error)
}
