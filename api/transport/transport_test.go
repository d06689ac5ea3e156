package transport

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/todoapp/domain"
)

func TestPriority_Bijection(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		assert.Equal(t, p, PriorityFromDomain(p.Domain()))
	}
	for _, p := range []domain.Priority{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh} {
		assert.Equal(t, p, PriorityFromDomain(p).Domain())
	}
}

func TestPriority_UnmarshalRejectsUnknown(t *testing.T) {
	var p Priority
	assert.NoError(t, json.Unmarshal([]byte(`"High"`), &p))
	assert.Equal(t, PriorityHigh, p)

	assert.Error(t, json.Unmarshal([]byte(`"high"`), &p), "names are case-preserving")
	assert.Error(t, json.Unmarshal([]byte(`"Urgent"`), &p))
	assert.Error(t, json.Unmarshal([]byte(`3`), &p))
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	title := "x"
	prio := PriorityLow

	assert.NoError(t, CreateTodoRequest{Title: &title, Priority: &prio}.Validate())

	err := CreateTodoRequest{Priority: &prio}.Validate()
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	err = CreateTodoRequest{Title: &title}.Validate()
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	// Empty title is accepted; only absence is rejected.
	empty := ""
	assert.NoError(t, CreateTodoRequest{Title: &empty, Priority: &prio}.Validate())
}

func TestNewTodoResponse_IdentityMapping(t *testing.T) {
	desc := "details"
	due := time.Now().UTC().Add(time.Hour)
	todo := domain.NewTodo("A", &desc, &due, domain.PriorityHigh)

	resp := NewTodoResponse(todo)

	assert.Equal(t, todo.ID, resp.ID)
	assert.Equal(t, todo.Title, resp.Title)
	assert.Equal(t, todo.Description, resp.Description)
	assert.Equal(t, todo.DueDate, resp.DueDate)
	assert.Equal(t, PriorityHigh, resp.Priority)
	assert.Equal(t, todo.Completed, resp.Completed)
	assert.True(t, resp.CreatedAt.Equal(todo.CreatedAt))
	assert.True(t, resp.UpdatedAt.Equal(todo.UpdatedAt))
}

func TestTodoResponse_SerializesExplicitNulls(t *testing.T) {
	todo := domain.NewTodo("A", nil, nil, domain.PriorityLow)

	raw, err := json.Marshal(NewTodoResponse(todo))
	require.NoError(t, err)

	var asMap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &asMap))
	assert.Contains(t, asMap, "description")
	assert.Contains(t, asMap, "due_date")
	assert.Equal(t, "null", string(asMap["description"]))
}

func TestNewTodoListResponse_EmptyIsNotNil(t *testing.T) {
	resp := NewTodoListResponse(nil)
	require.NotNil(t, resp)
	assert.Empty(t, resp)
}
