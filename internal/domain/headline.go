package domain

import (
	"fmt"
	"time"
)

type HeadlineRecord struct {
	Title     string
	Level     int
	Todo      string
	Scheduled *time.Time
	Deadline  *time.Time
}

// Validate checks structural invariants. Titles are not validated: an empty
// title is passed through as-is and left to the output layer to display.
func (h *HeadlineRecord) Validate() error {
	if h.Level < 1 {
		return fmt.Errorf("headline %q: level must be >= 1, got %d", h.Title, h.Level)
	}
	if h.Scheduled != nil && h.Deadline != nil {
		return fmt.Errorf("headline %q: scheduled and deadline are mutually exclusive", h.Title)
	}
	return nil
}

// PlanningDate returns whichever of Scheduled/Deadline is set, or nil.
func (h *HeadlineRecord) PlanningDate() *time.Time {
	if h.Deadline != nil {
		return h.Deadline
	}
	return h.Scheduled
}

// Dated reports whether the record carries a planning date.
func (h *HeadlineRecord) Dated() bool {
	return h.Scheduled != nil || h.Deadline != nil
}
