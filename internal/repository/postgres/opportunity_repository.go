package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

var opportunityColumns = []string{
	"id", "title", "description",
	"city", "province", "region", "country",
	"sport", "role", "status",
	"club_id", "created_by", "owner_id",
	"club_name", "club_avatar_url",
	"created_at",
}

var opportunityMatchColumns = []string{
	"title", "description", "city", "province", "region", "country", "sport", "role",
}

type opportunityRepository struct {
	db *sqlx.DB
}

func NewOpportunityRepository(db *sqlx.DB) repository.OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Search(ctx context.Context, pattern, status string, limit, offset int) ([]*domain.Opportunity, error) {
	builder := psql.Select(opportunityColumns...).
		From("opportunities").
		Where(orILike(pattern, opportunityMatchColumns...))
	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("search opportunities", err)
	}

	var opportunities []*domain.Opportunity
	if err := r.db.SelectContext(ctx, &opportunities, query, args...); err != nil {
		return nil, domain.NewStoreError("search opportunities", err)
	}
	return opportunities, nil
}

func (r *opportunityRepository) Count(ctx context.Context, pattern, status string) (int, error) {
	builder := psql.Select("COUNT(*)").
		From("opportunities").
		Where(orILike(pattern, opportunityMatchColumns...))
	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, domain.NewStoreError("count opportunities", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, domain.NewStoreError("count opportunities", err)
	}
	return count, nil
}
