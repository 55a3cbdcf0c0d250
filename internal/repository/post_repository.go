package repository

import (
	"context"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
)

type PostRepository interface {
	// SearchPosts matches normal posts on content only.
	SearchPosts(ctx context.Context, pattern string, limit, offset int) ([]*domain.Post, error)
	CountPosts(ctx context.Context, pattern string) (int, error)

	// SearchEvents matches event posts on content or any of the event
	// payload's title, description and location.
	SearchEvents(ctx context.Context, pattern string, limit, offset int) ([]*domain.Post, error)
	CountEvents(ctx context.Context, pattern string) (int, error)
}
