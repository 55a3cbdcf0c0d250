package repository

import "context"

type FollowRepository interface {
	// TargetIDs returns the ids the given profile follows, capped at
	// limit rows. The cap bounds the exclusion set, it is not pagination.
	TargetIDs(ctx context.Context, followerID string, limit int) ([]string, error)
}
