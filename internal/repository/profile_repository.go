package repository

import (
	"context"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
)

// CandidateFilter selects suggestion candidates. Zone and Sport are
// optional narrowing filters; with neither set the query is recency-only.
type CandidateFilter struct {
	Zone      domain.ZoneField
	ZoneValue string
	Sport     string
	Exclude   []string
	Limit     int
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	ByIDs(ctx context.Context, ids []string) (map[string]*domain.Profile, error)

	// DisplayByIDs and DisplayByAccountIDs back the reference resolver's
	// first two fallback steps. Both return maps keyed by the queried id.
	DisplayByIDs(ctx context.Context, ids []string) (map[string]domain.DisplayRef, error)
	DisplayByAccountIDs(ctx context.Context, ids []string) (map[string]domain.DisplayRef, error)

	// SearchAthletes matches active athlete profiles on name, location,
	// sport and role with a contains pattern.
	SearchAthletes(ctx context.Context, pattern string, limit, offset int) ([]*domain.Profile, error)
	CountAthletes(ctx context.Context, pattern string) (int, error)

	// FindCandidates returns active/pending/unset-status profiles matching
	// the filter, newest activity first.
	FindCandidates(ctx context.Context, filter CandidateFilter) ([]*domain.Profile, error)
}

// ClubViewRepository reads the type-specific clubs view.
type ClubViewRepository interface {
	SearchByName(ctx context.Context, pattern string, limit, offset int) ([]*domain.ClubRecord, error)
	CountByName(ctx context.Context, pattern string) (int, error)
	ByIDs(ctx context.Context, ids []string) (map[string]domain.ClubRecord, error)
}

// AthleteViewRepository reads the type-specific athletes view.
type AthleteViewRepository interface {
	ByIDs(ctx context.Context, ids []string) (map[string]domain.AthleteRecord, error)
}
