package service

import (
	"context"
	"time"

	"github.com/alexanderramin/orgplant/internal/domain"
)

// PlantRequest carries everything needed to grow a project tree into an
// outline file. Due holds the raw user input ("2024-06-14", "+3d", "fri")
// and is resolved against the service clock.
type PlantRequest struct {
	File     string
	After    string // anchor headline; empty appends at the end of the file
	Name     string
	Category string
	Due      string
	Level    int // 0 inherits the anchor's level, or 1 without an anchor
	Todo     string
	Weekends *bool // nil follows the configured policy
}

// PlantPreview is the resolved outcome of a request: the tree that would
// be (or was) inserted, its rendered block, and where it lands.
type PlantPreview struct {
	Tree    *domain.ProjectTree
	Block   string
	File    string
	Line    int // zero-based line index of the insertion point
	DueDate time.Time
}

type PlantService interface {
	// Preview resolves the request without touching the target file.
	Preview(ctx context.Context, req PlantRequest) (*PlantPreview, error)
	// Plant resolves the request, writes the updated document, and records
	// the planting in the history ledger.
	Plant(ctx context.Context, req PlantRequest) (*PlantPreview, error)
}

// DocumentStore is the boundary to outline documents on disk. Read returns
// an empty document for a path that does not exist yet.
type DocumentStore interface {
	Read(path string) (string, error)
	Write(path, content string) error
}
