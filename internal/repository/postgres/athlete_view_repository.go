package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

type athleteViewRepository struct {
	db *sqlx.DB
}

func NewAthleteViewRepository(db *sqlx.DB) repository.AthleteViewRepository {
	return &athleteViewRepository{db: db}
}

func (r *athleteViewRepository) ByIDs(ctx context.Context, ids []string) (map[string]domain.AthleteRecord, error) {
	out := make(map[string]domain.AthleteRecord, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := psql.Select("id", "full_name", "display_name", "avatar_url").
		From("athletes").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("athletes by ids", err)
	}

	var athletes []domain.AthleteRecord
	if err := r.db.SelectContext(ctx, &athletes, query, args...); err != nil {
		return nil, domain.NewStoreError("athletes by ids", err)
	}
	for _, athlete := range athletes {
		out[athlete.ID] = athlete
	}
	return out, nil
}
