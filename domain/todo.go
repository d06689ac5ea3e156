package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/fastygo/todoapp/pkg/patch"
)

// Priority is the three-level importance of a todo.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the three defined levels.
func (p Priority) Valid() bool {
	return p <= PriorityHigh
}

// Todo is the task entity. The identifier and CreatedAt are set once at
// construction and never change; UpdatedAt refreshes on every mutation.
type Todo struct {
	ID          uuid.UUID
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTodo constructs a todo with a fresh identifier, completed=false and
// both timestamps set to the same instant. Title emptiness is not enforced
// here; the entity accepts whatever the boundary let through.
func NewTodo(title string, description *string, dueDate *time.Time, priority Priority) *Todo {
	now := time.Now().UTC()
	return &Todo{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MarkCompleted sets completed and refreshes UpdatedAt unconditionally,
// even when the flag does not change.
func (t *Todo) MarkCompleted() {
	t.Completed = true
	t.UpdatedAt = time.Now().UTC()
}

// MarkIncomplete clears completed and refreshes UpdatedAt unconditionally.
func (t *Todo) MarkIncomplete() {
	t.Completed = false
	t.UpdatedAt = time.Now().UTC()
}

// Update replaces the fields that are present in the call. Description and
// DueDate are three-state: an explicit null clears them, absence leaves them
// untouched. UpdatedAt refreshes once at the end regardless of whether any
// value actually changed.
func (t *Todo) Update(title *string, description patch.Field[string], dueDate patch.Field[time.Time], priority *Priority) {
	if title != nil {
		t.Title = *title
	}
	if description.IsSet() {
		t.Description = description.Ptr()
	}
	if dueDate.IsSet() {
		t.DueDate = dueDate.Ptr()
	}
	if priority != nil {
		t.Priority = *priority
	}
	t.UpdatedAt = time.Now().UTC()
}

// TodoChange carries a partial update across layers. Completed is applied
// through MarkCompleted/MarkIncomplete rather than direct assignment so the
// toggle always refreshes UpdatedAt.
type TodoChange struct {
	Title       *string
	Description patch.Field[string]
	DueDate     patch.Field[time.Time]
	Priority    *Priority
	Completed   *bool
}
