package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

// clubViewRepository reads the clubs view. The view only exposes active
// club profiles, which keeps the global-search eligibility invariant on
// the store side.
type clubViewRepository struct {
	db *sqlx.DB
}

func NewClubViewRepository(db *sqlx.DB) repository.ClubViewRepository {
	return &clubViewRepository{db: db}
}

func (r *clubViewRepository) SearchByName(ctx context.Context, pattern string, limit, offset int) ([]*domain.ClubRecord, error) {
	query, args, err := psql.Select("id", "name", "avatar_url").
		From("clubs").
		Where(sq.ILike{"name": pattern}).
		OrderBy("name ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("search clubs", err)
	}

	var clubs []*domain.ClubRecord
	if err := r.db.SelectContext(ctx, &clubs, query, args...); err != nil {
		return nil, domain.NewStoreError("search clubs", err)
	}
	return clubs, nil
}

func (r *clubViewRepository) CountByName(ctx context.Context, pattern string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("clubs").
		Where(sq.ILike{"name": pattern}).
		ToSql()
	if err != nil {
		return 0, domain.NewStoreError("count clubs", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, domain.NewStoreError("count clubs", err)
	}
	return count, nil
}

func (r *clubViewRepository) ByIDs(ctx context.Context, ids []string) (map[string]domain.ClubRecord, error) {
	out := make(map[string]domain.ClubRecord, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := psql.Select("id", "name", "avatar_url").
		From("clubs").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("clubs by ids", err)
	}

	var clubs []domain.ClubRecord
	if err := r.db.SelectContext(ctx, &clubs, query, args...); err != nil {
		return nil, domain.NewStoreError("clubs by ids", err)
	}
	for _, club := range clubs {
		out[club.ID] = club
	}
	return out, nil
}
