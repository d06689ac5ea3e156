package transport

import (
	"time"

	"github.com/fastygo/todoapp/domain"
	"github.com/fastygo/todoapp/pkg/patch"
)

// CreateTodoRequest is the body of POST /api/todos. Title and priority are
// required: an absent key is rejected before the store is touched. There is
// no default priority.
type CreateTodoRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *Priority  `json:"priority"`
}

// Validate checks required fields. Empty titles are accepted; only absence
// is an error.
func (r CreateTodoRequest) Validate() error {
	if r.Title == nil {
		return domain.NewError(domain.ErrCodeInvalid, "missing required field: title")
	}
	if r.Priority == nil {
		return domain.NewError(domain.ErrCodeInvalid, "missing required field: priority")
	}
	return nil
}

// UpdateTodoRequest is the body of PUT /api/todos/{id}. Every field is
// optional. Description and due date distinguish "leave unchanged" (key
// absent) from "clear" (explicit null) from "set" via patch.Field.
type UpdateTodoRequest struct {
	Title       *string                `json:"title"`
	Description patch.Field[string]    `json:"description"`
	DueDate     patch.Field[time.Time] `json:"due_date"`
	Priority    *Priority              `json:"priority"`
	Completed   *bool                  `json:"completed"`
}

// Change maps the request onto the domain's partial-update carrier.
func (r UpdateTodoRequest) Change() domain.TodoChange {
	change := domain.TodoChange{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		p := r.Priority.Domain()
		change.Priority = &p
	}
	return change
}
