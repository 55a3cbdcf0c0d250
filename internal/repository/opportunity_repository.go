package repository

import (
	"context"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
)

type OpportunityRepository interface {
	// Search matches on title, description, location fields, sport and
	// role; status, when non-empty, narrows the set.
	Search(ctx context.Context, pattern, status string, limit, offset int) ([]*domain.Opportunity, error)
	Count(ctx context.Context, pattern, status string) (int, error)
}
