package transport

import (
	"time"

	"github.com/google/uuid"

	"github.com/fastygo/todoapp/domain"
)

// TodoResponse is the full entity snapshot returned by every successful
// todo operation. Optional fields serialize as explicit nulls rather than
// being omitted, so request and response shapes mirror each other.
type TodoResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ErrorResponse is the uniform error body: a single message, no code field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewTodoResponse maps a domain todo to its wire form. The mapping is an
// identity on every field except priority, which is a lossless bijection.
func NewTodoResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    PriorityFromDomain(t.Priority),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTodoListResponse maps a slice of todos, preserving order. The result
// is never nil so an empty store serializes as [] rather than null.
func NewTodoListResponse(todos []domain.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, NewTodoResponse(&todos[i]))
	}
	return responses
}
