package boltdb

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/todoapp/domain"
)

func sampleTodo() *domain.Todo {
	desc := "buy at the corner shop"
	due := time.Date(2026, 9, 1, 12, 30, 0, 123456789, time.UTC)
	return &domain.Todo{
		ID:          uuid.New(),
		Title:       "Buy milk",
		Description: &desc,
		DueDate:     &due,
		Priority:    domain.PriorityHigh,
		Completed:   true,
		CreatedAt:   time.Date(2026, 8, 28, 9, 0, 0, 42, time.UTC),
		UpdatedAt:   time.Date(2026, 8, 28, 9, 5, 0, 43, time.UTC),
	}
}

func TestCodec_RoundTripAllFields(t *testing.T) {
	orig := sampleTodo()

	raw, err := encodeTodo(orig)
	require.NoError(t, err)

	decoded, err := decodeTodo(raw)
	require.NoError(t, err)

	assert.Equal(t, orig.ID, decoded.ID)
	assert.Equal(t, orig.Title, decoded.Title)
	require.NotNil(t, decoded.Description)
	assert.Equal(t, *orig.Description, *decoded.Description)
	require.NotNil(t, decoded.DueDate)
	assert.True(t, decoded.DueDate.Equal(*orig.DueDate), "due date must survive at nanosecond precision")
	assert.Equal(t, orig.Priority, decoded.Priority)
	assert.Equal(t, orig.Completed, decoded.Completed)
	assert.True(t, decoded.CreatedAt.Equal(orig.CreatedAt))
	assert.True(t, decoded.UpdatedAt.Equal(orig.UpdatedAt))
}

func TestCodec_RoundTripOptionalFieldsAbsent(t *testing.T) {
	orig := domain.NewTodo("", nil, nil, domain.PriorityLow)

	raw, err := encodeTodo(orig)
	require.NoError(t, err)

	decoded, err := decodeTodo(raw)
	require.NoError(t, err)

	assert.Equal(t, "", decoded.Title)
	assert.Nil(t, decoded.Description)
	assert.Nil(t, decoded.DueDate)
	assert.False(t, decoded.Completed)
}

func TestCodec_RejectsInvalidPriorityOnEncode(t *testing.T) {
	orig := sampleTodo()
	orig.Priority = domain.Priority(9)

	_, err := encodeTodo(orig)
	assert.Error(t, err)
}

func TestCodec_DecodeErrors(t *testing.T) {
	valid, err := encodeTodo(sampleTodo())
	require.NoError(t, err)

	// A title length prefix claiming nearly MaxInt64 bytes; the decoder
	// must report an error rather than index past the buffer.
	hugeLength := append([]byte(nil), valid[:17]...)
	hugeLength = append(hugeLength, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f)

	cases := map[string][]byte{
		"empty":              {},
		"bad version":        append([]byte{99}, valid[1:]...),
		"truncated":          valid[:len(valid)/2],
		"trailing bytes":     append(append([]byte(nil), valid...), 0xff),
		"garbage":            {1, 2, 3},
		"huge length prefix": hugeLength,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeTodo(raw)
			assert.Error(t, err)
		})
	}
}

func TestCodec_DecodeRejectsBadPriorityByte(t *testing.T) {
	orig := domain.NewTodo("x", nil, nil, domain.PriorityLow)
	raw, err := encodeTodo(orig)
	require.NoError(t, err)

	// Layout with both optionals absent: version(1) + id(16) +
	// title len(1) + title(1) + desc marker(1) + due marker(1) + priority.
	raw[21] = 7
	_, err = decodeTodo(raw)
	assert.Error(t, err)
}
