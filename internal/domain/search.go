package domain

import "strings"

// SearchKind identifies one searchable entity collection.
type SearchKind string

const (
	KindAll           SearchKind = "all"
	KindOpportunities SearchKind = "opportunities"
	KindClubs         SearchKind = "clubs"
	KindPlayers       SearchKind = "players"
	KindPosts         SearchKind = "posts"
	KindEvents        SearchKind = "events"
)

// SearchKinds lists the five concrete kinds in response order.
var SearchKinds = []SearchKind{KindOpportunities, KindClubs, KindPlayers, KindPosts, KindEvents}

var kindAliases = map[string]SearchKind{
	"all":           KindAll,
	"opportunity":   KindOpportunities,
	"opportunities": KindOpportunities,
	"club":          KindClubs,
	"clubs":         KindClubs,
	"player":        KindPlayers,
	"players":       KindPlayers,
	"athlete":       KindPlayers,
	"athletes":      KindPlayers,
	"post":          KindPosts,
	"posts":         KindPosts,
	"event":         KindEvents,
	"events":        KindEvents,
}

// ParseSearchKind maps a raw type parameter to a kind. Matching is
// case-insensitive and accepts singular aliases; anything unrecognized
// falls back to "all".
func ParseSearchKind(raw string) SearchKind {
	if kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return kind
	}
	return KindAll
}

// SearchResult is one entry of a search response. It is assembled fresh
// per request and never persisted.
type SearchResult struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Subtitle *string    `json:"subtitle"`
	ImageURL *string    `json:"image_url"`
	Href     string     `json:"href"`
	Kind     SearchKind `json:"kind"`
}
