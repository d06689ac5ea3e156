package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fastygo/todoapp/domain"
)

// TodoRepository is the durable record store for todos. Insert and Update
// share upsert semantics: both overwrite whatever is stored under the
// record's identifier. Every mutating call commits to disk before it
// returns.
type TodoRepository interface {
	// Insert persists the record under its identifier, overwriting any
	// existing value at that key.
	Insert(ctx context.Context, todo *domain.Todo) error

	// Get returns the record for id. Absence is signalled via found, not
	// an error; errors mean the stored bytes could not be read or decoded.
	Get(ctx context.Context, id uuid.UUID) (todo *domain.Todo, found bool, err error)

	// GetAll returns every stored record ordered by CreatedAt descending
	// (newest first). A single corrupt record fails the whole call.
	GetAll(ctx context.Context) ([]domain.Todo, error)

	// Update overwrites the record for todo.ID. Identical to Insert.
	Update(ctx context.Context, todo *domain.Todo) error

	// Delete removes the record for id and reports whether one existed.
	// Deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) (existed bool, err error)

	// Clear removes every record. Maintenance and test use only.
	Clear(ctx context.Context) error
}
