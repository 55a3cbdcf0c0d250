package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) TargetIDs(ctx context.Context, followerID string, limit int) ([]string, error) {
	query, args, err := psql.Select("target_profile_id").
		From("follows").
		Where(sq.Eq{"follower_profile_id": followerID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("follow targets", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, domain.NewStoreError("follow targets", err)
	}
	return ids, nil
}
