// Package todo orchestrates domain mutations against the record store.
// Each operation is a single read or a single durable write; there is no
// cross-request locking, so concurrent updates to the same identifier are
// last-writer-wins.
package todo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/todoapp/domain"
	"github.com/fastygo/todoapp/repository"
)

type UseCase struct {
	todos  repository.TodoRepository
	logger *zap.Logger
}

func New(todos repository.TodoRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		todos:  todos,
		logger: logger,
	}
}

// ListTodos returns every todo, newest first.
func (uc *UseCase) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return uc.todos.GetAll(ctx)
}

// GetTodo returns the todo for id or a not-found domain error.
func (uc *UseCase) GetTodo(ctx context.Context, id uuid.UUID) (*domain.Todo, error) {
	todo, found, err := uc.todos.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrTodoNotFound(id)
	}
	return todo, nil
}

// CreateTodo constructs a todo with a fresh identifier and persists it.
func (uc *UseCase) CreateTodo(ctx context.Context, title string, description *string, dueDate *time.Time, priority domain.Priority) (*domain.Todo, error) {
	todo := domain.NewTodo(title, description, dueDate, priority)
	if err := uc.todos.Insert(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateTodo applies a partial update to an existing todo. The completed
// flag goes through MarkCompleted/MarkIncomplete after the field update so
// it always refreshes UpdatedAt, even when the value does not change.
func (uc *UseCase) UpdateTodo(ctx context.Context, id uuid.UUID, change domain.TodoChange) (*domain.Todo, error) {
	todo, found, err := uc.todos.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrTodoNotFound(id)
	}

	todo.Update(change.Title, change.Description, change.DueDate, change.Priority)
	if change.Completed != nil {
		if *change.Completed {
			todo.MarkCompleted()
		} else {
			todo.MarkIncomplete()
		}
	}

	if err := uc.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// DeleteTodo removes the todo for id, reporting not-found when nothing was
// stored under it.
func (uc *UseCase) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	existed, err := uc.todos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrTodoNotFound(id)
	}
	return nil
}

// ClearTodos wipes the store. Maintenance use only; not routed over HTTP.
func (uc *UseCase) ClearTodos(ctx context.Context) error {
	uc.logger.Warn("clearing all todos")
	return uc.todos.Clear(ctx)
}
