package repository

import (
	"context"

	"github.com/alexanderramin/orgplant/internal/domain"
)

// PlantingRepo records planted projects and reads them back for the
// history listing.
type PlantingRepo interface {
	Create(ctx context.Context, p *domain.Planting) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Planting, error)
}
