package domain

import "time"

const (
	PostKindNormal = "normal"
	PostKindEvent  = "event"
)

// Post is a read-only projection of a feed post. Event posts share the
// collection with normal posts and carry the event_* payload columns.
type Post struct {
	ID               string     `json:"id" db:"id"`
	AuthorID         *string    `json:"author_id" db:"author_id"`
	AuthorName       *string    `json:"author_name" db:"author_name"`
	AuthorAvatar     *string    `json:"author_avatar_url" db:"author_avatar_url"`
	Content          *string    `json:"content" db:"content"`
	Kind             string     `json:"kind" db:"kind"`
	EventTitle       *string    `json:"event_title" db:"event_title"`
	EventDate        *time.Time `json:"event_date" db:"event_date"`
	EventDescription *string    `json:"event_description" db:"event_description"`
	EventLocation    *string    `json:"event_location" db:"event_location"`
	EventPosterURL   *string    `json:"event_poster_url" db:"event_poster_url"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}
