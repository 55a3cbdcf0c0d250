package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

var postColumns = []string{
	"id", "author_id", "author_name", "author_avatar_url",
	"content", "kind",
	"event_title", "event_date", "event_description", "event_location", "event_poster_url",
	"created_at",
}

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) searchKind(ctx context.Context, op string, match sq.Sqlizer, kind string, limit, offset int) ([]*domain.Post, error) {
	query, args, err := psql.Select(postColumns...).
		From("posts").
		Where(sq.Eq{"kind": kind}).
		Where(match).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}

	var posts []*domain.Post
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	return posts, nil
}

func (r *postRepository) countKind(ctx context.Context, op string, match sq.Sqlizer, kind string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("posts").
		Where(sq.Eq{"kind": kind}).
		Where(match).
		ToSql()
	if err != nil {
		return 0, domain.NewStoreError(op, err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, domain.NewStoreError(op, err)
	}
	return count, nil
}

func (r *postRepository) SearchPosts(ctx context.Context, pattern string, limit, offset int) ([]*domain.Post, error) {
	return r.searchKind(ctx, "search posts", orILike(pattern, "content"), domain.PostKindNormal, limit, offset)
}

func (r *postRepository) CountPosts(ctx context.Context, pattern string) (int, error) {
	return r.countKind(ctx, "count posts", orILike(pattern, "content"), domain.PostKindNormal)
}

func eventMatch(pattern string) sq.Sqlizer {
	return orILike(pattern, "content", "event_title", "event_description", "event_location")
}

func (r *postRepository) SearchEvents(ctx context.Context, pattern string, limit, offset int) ([]*domain.Post, error) {
	return r.searchKind(ctx, "search events", eventMatch(pattern), domain.PostKindEvent, limit, offset)
}

func (r *postRepository) CountEvents(ctx context.Context, pattern string) (int, error) {
	return r.countKind(ctx, "count events", eventMatch(pattern), domain.PostKindEvent)
}
