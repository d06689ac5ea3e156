package transport

import (
	"encoding/json"
	"fmt"

	"github.com/fastygo/todoapp/domain"
)

// Priority is the wire form of the three-level priority. Names are
// case-preserving and map one-to-one onto the domain enum.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		*p = Priority(s)
		return nil
	default:
		return fmt.Errorf("unknown priority %q", s)
	}
}

// Domain converts the wire priority to its domain counterpart.
func (p Priority) Domain() domain.Priority {
	switch p {
	case PriorityMedium:
		return domain.PriorityMedium
	case PriorityHigh:
		return domain.PriorityHigh
	default:
		return domain.PriorityLow
	}
}

// PriorityFromDomain converts a domain priority to its wire form.
func PriorityFromDomain(p domain.Priority) Priority {
	switch p {
	case domain.PriorityMedium:
		return PriorityMedium
	case domain.PriorityHigh:
		return PriorityHigh
	default:
		return PriorityLow
	}
}
