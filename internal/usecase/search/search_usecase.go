package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
)

// Counts holds the per-kind total match counts of one response.
type Counts struct {
	Opportunities int `json:"opportunities"`
	Clubs         int `json:"clubs"`
	Players       int `json:"players"`
	Posts         int `json:"posts"`
	Events        int `json:"events"`
}

func (c *Counts) set(kind domain.SearchKind, n int) {
	switch kind {
	case domain.KindOpportunities:
		c.Opportunities = n
	case domain.KindClubs:
		c.Clubs = n
	case domain.KindPlayers:
		c.Players = n
	case domain.KindPosts:
		c.Posts = n
	case domain.KindEvents:
		c.Events = n
	}
}

// Results holds the per-kind result lists of one response. Lists are
// always present, empty when a kind was not searched.
type Results struct {
	Opportunities []domain.SearchResult `json:"opportunities"`
	Clubs         []domain.SearchResult `json:"clubs"`
	Players       []domain.SearchResult `json:"players"`
	Posts         []domain.SearchResult `json:"posts"`
	Events        []domain.SearchResult `json:"events"`
}

func newResults() Results {
	return Results{
		Opportunities: []domain.SearchResult{},
		Clubs:         []domain.SearchResult{},
		Players:       []domain.SearchResult{},
		Posts:         []domain.SearchResult{},
		Events:        []domain.SearchResult{},
	}
}

func (r *Results) set(kind domain.SearchKind, list []domain.SearchResult) {
	switch kind {
	case domain.KindOpportunities:
		r.Opportunities = list
	case domain.KindClubs:
		r.Clubs = list
	case domain.KindPlayers:
		r.Players = list
	case domain.KindPosts:
		r.Posts = list
	case domain.KindEvents:
		r.Events = list
	}
}

// Response is the global search payload.
type Response struct {
	OK      bool    `json:"ok"`
	Query   string  `json:"query"`
	Type    string  `json:"type"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
	Counts  Counts  `json:"counts"`
	Results Results `json:"results"`
}

// SearchUseCase aggregates the five entity providers into the two search
// response modes: a bounded multi-kind preview for "all" and a single-kind
// paginated list otherwise. Sub-queries fan out concurrently; the first
// error aborts the whole aggregation so counts stay mutually consistent.
type SearchUseCase struct {
	providers map[domain.SearchKind]Provider
	resolver  Resolver
}

func NewSearchUseCase(resolver Resolver, providers ...Provider) (*SearchUseCase, error) {
	byKind := make(map[domain.SearchKind]Provider, len(providers))
	for _, p := range providers {
		byKind[p.Kind()] = p
	}
	for _, kind := range domain.SearchKinds {
		if byKind[kind] == nil {
			return nil, fmt.Errorf("missing search provider for kind %q", kind)
		}
	}
	return &SearchUseCase{providers: byKind, resolver: resolver}, nil
}

func (uc *SearchUseCase) Search(ctx context.Context, q Query) (*Response, error) {
	if q.Kind == domain.KindAll {
		return uc.searchAll(ctx, q)
	}
	return uc.searchKind(ctx, q)
}

// searchAll fans out to every provider with the preview limit. Each
// provider also reports its true total, which is never capped by the
// preview size.
func (uc *SearchUseCase) searchAll(ctx context.Context, q Query) (*Response, error) {
	itemsByKind := make([][]Item, len(domain.SearchKinds))
	totals := make([]int, len(domain.SearchKinds))

	g, gctx := errgroup.WithContext(ctx)
	preview := q.preview()
	for i, kind := range domain.SearchKinds {
		i := i
		provider := uc.providers[kind]
		g.Go(func() error {
			items, total, err := provider.Search(gctx, preview)
			if err != nil {
				return err
			}
			itemsByKind[i], totals[i] = items, total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return uc.assemble(ctx, q, itemsByKind, totals)
}

// searchKind runs counts for every kind (for kind-switcher badges) in
// parallel with the paginated search of the requested kind. The requested
// kind's count is taken from the search branch, which saw the exact same
// filter set.
func (uc *SearchUseCase) searchKind(ctx context.Context, q Query) (*Response, error) {
	itemsByKind := make([][]Item, len(domain.SearchKinds))
	totals := make([]int, len(domain.SearchKinds))

	var kindItems []Item
	var kindTotal int

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range domain.SearchKinds {
		i := i
		provider := uc.providers[kind]
		g.Go(func() error {
			total, err := provider.Count(gctx, q)
			if err != nil {
				return err
			}
			totals[i] = total
			return nil
		})
	}
	g.Go(func() error {
		items, total, err := uc.providers[q.Kind].Search(gctx, q)
		if err != nil {
			return err
		}
		kindItems, kindTotal = items, total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, kind := range domain.SearchKinds {
		if kind == q.Kind {
			itemsByKind[i] = kindItems
			totals[i] = kindTotal
		}
	}

	return uc.assemble(ctx, q, itemsByKind, totals)
}

// assemble resolves club/author references and builds the final payload.
// Enrichment must finish before serialization, so it runs after the
// provider join.
func (uc *SearchUseCase) assemble(ctx context.Context, q Query, itemsByKind [][]Item, totals []int) (*Response, error) {
	var clubIDs, authorIDs []string
	for _, items := range itemsByKind {
		for _, it := range items {
			if it.ClubRef != "" {
				clubIDs = append(clubIDs, it.ClubRef)
			}
			if it.AuthorRef != "" {
				authorIDs = append(authorIDs, it.AuthorRef)
			}
		}
	}

	var clubs, authors map[string]domain.DisplayRef
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clubs, err = uc.resolver.ResolveClubs(gctx, clubIDs)
		return err
	})
	g.Go(func() error {
		var err error
		authors, err = uc.resolver.ResolveAuthors(gctx, authorIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &Response{
		OK:      true,
		Query:   q.Term,
		Type:    string(q.Kind),
		Page:    q.Page,
		Limit:   q.Limit,
		Results: newResults(),
	}
	for i, kind := range domain.SearchKinds {
		resp.Counts.set(kind, totals[i])
		if len(itemsByKind[i]) == 0 {
			continue
		}
		list := make([]domain.SearchResult, 0, len(itemsByKind[i]))
		for _, it := range itemsByKind[i] {
			list = append(list, enrichItem(it, clubs, authors))
		}
		resp.Results.set(kind, list)
	}
	return resp, nil
}

// enrichItem fills the subtitle and image of a hit from its resolved
// reference, falling back to the owning row's denormalized copies.
func enrichItem(it Item, clubs, authors map[string]domain.DisplayRef) domain.SearchResult {
	result := it.Result
	if it.ClubRef == "" && it.AuthorRef == "" && it.FallbackName == nil && it.FallbackAvatar == nil {
		return result
	}

	var ref domain.DisplayRef
	var ok bool
	if it.ClubRef != "" {
		ref, ok = clubs[it.ClubRef]
	} else if it.AuthorRef != "" {
		ref, ok = authors[it.AuthorRef]
	}

	name := ""
	if ok {
		name = ref.Name()
	}
	if name == "" {
		name = firstNonEmpty(it.FallbackName)
	}
	if result.Subtitle == nil && name != "" {
		result.Subtitle = &name
	}

	if result.ImageURL == nil {
		if ok && ref.AvatarURL != nil && *ref.AvatarURL != "" {
			result.ImageURL = ref.AvatarURL
		} else {
			result.ImageURL = it.FallbackAvatar
		}
	}
	return result
}
