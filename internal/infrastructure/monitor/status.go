package monitor

import "time"

// Status is the last storage health sample.
type Status struct {
	Storage   bool      `json:"storage"`
	TodoCount int       `json:"todo_count"`
	LastCheck time.Time `json:"last_check"`
}
