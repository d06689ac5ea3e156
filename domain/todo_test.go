package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/todoapp/pkg/patch"
)

func strPtr(s string) *string { return &s }

func TestNewTodo_Defaults(t *testing.T) {
	before := time.Now().UTC()
	todo := NewTodo("Buy milk", strPtr("2 liters"), nil, PriorityMedium)
	after := time.Now().UTC()

	assert.NotEqual(t, uuid.Nil, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	require.NotNil(t, todo.Description)
	assert.Equal(t, "2 liters", *todo.Description)
	assert.Nil(t, todo.DueDate)
	assert.Equal(t, PriorityMedium, todo.Priority)
	assert.False(t, todo.Completed)

	assert.True(t, todo.CreatedAt.Equal(todo.UpdatedAt), "created and updated must start identical")
	assert.False(t, todo.CreatedAt.Before(before))
	assert.False(t, todo.CreatedAt.After(after))
}

func TestNewTodo_FreshIdentifiers(t *testing.T) {
	a := NewTodo("a", nil, nil, PriorityLow)
	b := NewTodo("b", nil, nil, PriorityLow)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMarkCompleted_AlwaysRefreshesUpdatedAt(t *testing.T) {
	todo := NewTodo("task", nil, nil, PriorityLow)

	time.Sleep(time.Millisecond)
	todo.MarkCompleted()
	first := todo.UpdatedAt
	assert.True(t, todo.Completed)
	assert.True(t, first.After(todo.CreatedAt))

	// Second call does not change the flag but must still refresh.
	time.Sleep(time.Millisecond)
	todo.MarkCompleted()
	assert.True(t, todo.Completed)
	assert.True(t, todo.UpdatedAt.After(first))

	time.Sleep(time.Millisecond)
	todo.MarkIncomplete()
	assert.False(t, todo.Completed)
	assert.True(t, todo.UpdatedAt.After(first))
}

func TestUpdate_PartialPreservesUntouchedFields(t *testing.T) {
	todo := NewTodo("A", strPtr("B"), nil, PriorityLow)
	before := todo.UpdatedAt

	time.Sleep(time.Millisecond)
	todo.Update(strPtr("C"), patch.Field[string]{}, patch.Field[time.Time]{}, nil)

	assert.Equal(t, "C", todo.Title)
	require.NotNil(t, todo.Description)
	assert.Equal(t, "B", *todo.Description)
	assert.Equal(t, PriorityLow, todo.Priority)
	assert.True(t, todo.UpdatedAt.After(before))
}

func TestUpdate_ExplicitNullClearsNullableFields(t *testing.T) {
	due := time.Now().UTC().Add(24 * time.Hour)
	todo := NewTodo("A", strPtr("B"), &due, PriorityHigh)

	todo.Update(nil, patch.Null[string](), patch.Null[time.Time](), nil)

	assert.Nil(t, todo.Description)
	assert.Nil(t, todo.DueDate)
	assert.Equal(t, "A", todo.Title)
}

func TestUpdate_SetValues(t *testing.T) {
	todo := NewTodo("A", nil, nil, PriorityLow)
	due := time.Now().UTC().Add(time.Hour)
	prio := PriorityHigh

	todo.Update(nil, patch.Set("details"), patch.Set(due), &prio)

	require.NotNil(t, todo.Description)
	assert.Equal(t, "details", *todo.Description)
	require.NotNil(t, todo.DueDate)
	assert.True(t, todo.DueDate.Equal(due))
	assert.Equal(t, PriorityHigh, todo.Priority)
}

func TestUpdate_NoFieldsStillRefreshesUpdatedAt(t *testing.T) {
	todo := NewTodo("A", nil, nil, PriorityLow)
	before := todo.UpdatedAt

	time.Sleep(time.Millisecond)
	todo.Update(nil, patch.Field[string]{}, patch.Field[time.Time]{}, nil)

	assert.True(t, todo.UpdatedAt.After(before))
}

func TestPriority_Valid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority(3).Valid())
}
