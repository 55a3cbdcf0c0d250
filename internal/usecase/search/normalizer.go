package search

import (
	"strings"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
)

const (
	minTermLength = 2
	defaultLimit  = 10
	maxLimit      = 50
	maxPage       = 1000
	previewCap    = 3
)

// Opportunity statuses accepted as a search filter; anything else is
// treated as "no filter".
var allowedStatuses = map[string]bool{
	"open":     true,
	"closed":   true,
	"archived": true,
	"draft":    true,
}

// Query is a normalized, validated search request.
type Query struct {
	Term   string
	Kind   domain.SearchKind
	Page   int
	Limit  int
	Status string
}

// NormalizeQuery validates and clamps raw search parameters. The term is
// trimmed and must be at least two characters; kind falls back to "all";
// page clamps to [1,1000] and limit to [1,50] with a default of 10.
func NormalizeQuery(term, kind string, page, limit int, status string) (Query, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < minTermLength {
		return Query{}, domain.ErrInvalidPayload
	}

	if page < 1 {
		page = 1
	} else if page > maxPage {
		page = maxPage
	}

	if limit < 1 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	status = strings.ToLower(strings.TrimSpace(status))
	if !allowedStatuses[status] {
		status = ""
	}

	return Query{
		Term:   term,
		Kind:   domain.ParseSearchKind(kind),
		Page:   page,
		Limit:  limit,
		Status: status,
	}, nil
}

// Offset returns the row offset for the query's page.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// preview returns a copy of the query bounded to the per-kind preview
// size used in "all" mode.
func (q Query) preview() Query {
	p := q
	p.Page = 1
	if p.Limit > previewCap {
		p.Limit = previewCap
	}
	return p
}
