package search

import (
	"context"
	"strings"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

// Item is one provider hit before reference enrichment. ClubRef/AuthorRef
// name a profile the aggregator must resolve; the fallback fields are the
// owning row's own denormalized copies, used when resolution comes up empty.
type Item struct {
	Result         domain.SearchResult
	ClubRef        string
	AuthorRef      string
	FallbackName   *string
	FallbackAvatar *string
}

// Provider searches and counts one entity kind. Search returns the page
// of hits plus the uncapped total match count for the same predicate.
type Provider interface {
	Kind() domain.SearchKind
	Search(ctx context.Context, q Query) ([]Item, int, error)
	Count(ctx context.Context, q Query) (int, error)
}

const snippetLength = 80

func snippet(s *string) string {
	if s == nil {
		return ""
	}
	text := strings.Join(strings.Fields(*s), " ")
	runes := []rune(text)
	if len(runes) <= snippetLength {
		return text
	}
	return string(runes[:snippetLength]) + "…"
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

func joinParts(values ...*string) *string {
	var parts []string
	for _, v := range values {
		if v != nil && *v != "" {
			parts = append(parts, *v)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, " · ")
	return &joined
}

// clubProvider matches clubs on display name only; location, sport and
// avatar are enrichment read from the profile collection after the match.
type clubProvider struct {
	clubs    repository.ClubViewRepository
	profiles repository.ProfileRepository
}

func NewClubProvider(clubs repository.ClubViewRepository, profiles repository.ProfileRepository) Provider {
	return &clubProvider{clubs: clubs, profiles: profiles}
}

func (p *clubProvider) Kind() domain.SearchKind { return domain.KindClubs }

func (p *clubProvider) Search(ctx context.Context, q Query) ([]Item, int, error) {
	pattern := ContainsPattern(q.Term)

	records, err := p.clubs.SearchByName(ctx, pattern, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	total, err := p.clubs.CountByName(ctx, pattern)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	profiles, err := p.profiles.ByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]Item, 0, len(records))
	for _, rec := range records {
		result := domain.SearchResult{
			ID:       rec.ID,
			Kind:     domain.KindClubs,
			Title:    firstNonEmpty(rec.Name),
			ImageURL: rec.AvatarURL,
			Href:     "/clubs/" + rec.ID,
		}
		if profile, ok := profiles[rec.ID]; ok {
			result.Subtitle = joinParts(profile.City, profile.Sport)
			if result.ImageURL == nil {
				result.ImageURL = profile.AvatarURL
			}
		}
		items = append(items, Item{Result: result})
	}
	return items, total, nil
}

func (p *clubProvider) Count(ctx context.Context, q Query) (int, error) {
	return p.clubs.CountByName(ctx, ContainsPattern(q.Term))
}

type playerProvider struct {
	profiles repository.ProfileRepository
}

func NewPlayerProvider(profiles repository.ProfileRepository) Provider {
	return &playerProvider{profiles: profiles}
}

func (p *playerProvider) Kind() domain.SearchKind { return domain.KindPlayers }

func (p *playerProvider) Search(ctx context.Context, q Query) ([]Item, int, error) {
	pattern := ContainsPattern(q.Term)

	profiles, err := p.profiles.SearchAthletes(ctx, pattern, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	total, err := p.profiles.CountAthletes(ctx, pattern)
	if err != nil {
		return nil, 0, err
	}

	items := make([]Item, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, Item{Result: domain.SearchResult{
			ID:       profile.ID,
			Kind:     domain.KindPlayers,
			Title:    firstNonEmpty(profile.FullName, profile.DisplayName),
			Subtitle: joinParts(profile.City, profile.Sport, profile.Role),
			ImageURL: profile.AvatarURL,
			Href:     "/athletes/" + profile.ID,
		}})
	}
	return items, total, nil
}

func (p *playerProvider) Count(ctx context.Context, q Query) (int, error) {
	return p.profiles.CountAthletes(ctx, ContainsPattern(q.Term))
}

type opportunityProvider struct {
	opportunities repository.OpportunityRepository
}

func NewOpportunityProvider(opportunities repository.OpportunityRepository) Provider {
	return &opportunityProvider{opportunities: opportunities}
}

func (p *opportunityProvider) Kind() domain.SearchKind { return domain.KindOpportunities }

func (p *opportunityProvider) Search(ctx context.Context, q Query) ([]Item, int, error) {
	pattern := ContainsPattern(q.Term)

	opportunities, err := p.opportunities.Search(ctx, pattern, q.Status, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	total, err := p.opportunities.Count(ctx, pattern, q.Status)
	if err != nil {
		return nil, 0, err
	}

	items := make([]Item, 0, len(opportunities))
	for _, opp := range opportunities {
		items = append(items, Item{
			Result: domain.SearchResult{
				ID:    opp.ID,
				Kind:  domain.KindOpportunities,
				Title: opp.Title,
				Href:  "/opportunities/" + opp.ID,
			},
			ClubRef:        opp.CanonicalClubID(),
			FallbackName:   opp.ClubName,
			FallbackAvatar: opp.ClubAvatar,
		})
	}
	return items, total, nil
}

func (p *opportunityProvider) Count(ctx context.Context, q Query) (int, error) {
	return p.opportunities.Count(ctx, ContainsPattern(q.Term), q.Status)
}

type postProvider struct {
	posts repository.PostRepository
}

func NewPostProvider(posts repository.PostRepository) Provider {
	return &postProvider{posts: posts}
}

func (p *postProvider) Kind() domain.SearchKind { return domain.KindPosts }

func (p *postProvider) Search(ctx context.Context, q Query) ([]Item, int, error) {
	pattern := ContainsPattern(q.Term)

	posts, err := p.posts.SearchPosts(ctx, pattern, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	total, err := p.posts.CountPosts(ctx, pattern)
	if err != nil {
		return nil, 0, err
	}
	return postItems(posts, domain.KindPosts), total, nil
}

func (p *postProvider) Count(ctx context.Context, q Query) (int, error) {
	return p.posts.CountPosts(ctx, ContainsPattern(q.Term))
}

type eventProvider struct {
	posts repository.PostRepository
}

func NewEventProvider(posts repository.PostRepository) Provider {
	return &eventProvider{posts: posts}
}

func (p *eventProvider) Kind() domain.SearchKind { return domain.KindEvents }

func (p *eventProvider) Search(ctx context.Context, q Query) ([]Item, int, error) {
	pattern := ContainsPattern(q.Term)

	posts, err := p.posts.SearchEvents(ctx, pattern, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	total, err := p.posts.CountEvents(ctx, pattern)
	if err != nil {
		return nil, 0, err
	}
	return postItems(posts, domain.KindEvents), total, nil
}

func (p *eventProvider) Count(ctx context.Context, q Query) (int, error) {
	return p.posts.CountEvents(ctx, ContainsPattern(q.Term))
}

func postItems(posts []*domain.Post, kind domain.SearchKind) []Item {
	items := make([]Item, 0, len(posts))
	for _, post := range posts {
		result := domain.SearchResult{
			ID:   post.ID,
			Kind: kind,
			Href: "/posts/" + post.ID,
		}
		if kind == domain.KindEvents {
			result.Title = firstNonEmpty(post.EventTitle)
			if result.Title == "" {
				result.Title = snippet(post.Content)
			}
			result.ImageURL = post.EventPosterURL
			result.Href = "/events/" + post.ID
		} else {
			result.Title = snippet(post.Content)
		}

		item := Item{
			Result:         result,
			FallbackName:   post.AuthorName,
			FallbackAvatar: post.AuthorAvatar,
		}
		if post.AuthorID != nil {
			item.AuthorRef = *post.AuthorID
		}
		items = append(items, item)
	}
	return items
}
