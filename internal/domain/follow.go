package domain

import "time"

// Follow is a directed follow edge. It is only ever read to build
// exclusion sets; the edge itself is never surfaced.
type Follow struct {
	FollowerProfileID string    `json:"follower_profile_id" db:"follower_profile_id"`
	TargetProfileID   string    `json:"target_profile_id" db:"target_profile_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
