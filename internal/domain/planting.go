package domain

import "time"

// Planting is an audit record of one successful tree insertion. Only run
// metadata is kept; the generated tree itself lives in the target document.
type Planting struct {
	ID           string
	Name         string
	Category     string
	File         string
	DueDate      time.Time
	SubtaskCount int
	CreatedAt    time.Time
}
