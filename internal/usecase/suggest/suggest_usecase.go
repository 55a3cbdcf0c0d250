package suggest

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

const (
	defaultLimit = 5
	maxLimit     = 10

	// followCap bounds the exclusion set, it is not a pagination contract.
	followCap = 500

	// Each tier over-fetches so dedup and name drops don't starve it.
	tierFactor = 3
)

var emailShaped = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Suggestion is one "who to follow" entry.
type Suggestion struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	DisplayName *string `json:"display_name"`
	FullName    *string `json:"full_name"`
	AvatarURL   *string `json:"avatar_url"`
	Sport       *string `json:"sport"`
	Role        *string `json:"role"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
}

// DebugTrace exposes cascade internals for diagnostics. All counts come
// from the cascade state already in hand; no extra queries are issued.
type DebugTrace struct {
	TraceID           string   `json:"traceId"`
	Limit             int      `json:"limit"`
	ExcludedTotal     int      `json:"excludedTotal"`
	SampleExclusions  []string `json:"sampleExclusions"`
	ZoneCandidates    int      `json:"zoneCandidates"`
	SportCandidates   int      `json:"sportCandidates"`
	RecencyCandidates int      `json:"recencyCandidates"`
	Dropped           int      `json:"dropped"`
	Returned          int      `json:"returned"`
}

// SuggestUseCase ranks follow candidates through a cascade of location,
// sport and recency tiers. Each tier is only consulted when the previous
// tiers under-supply, and a candidate surfaced early is never displaced.
type SuggestUseCase struct {
	profiles repository.ProfileRepository
	athletes repository.AthleteViewRepository
	follows  repository.FollowRepository
}

func NewSuggestUseCase(
	profiles repository.ProfileRepository,
	athletes repository.AthleteViewRepository,
	follows repository.FollowRepository,
) *SuggestUseCase {
	return &SuggestUseCase{profiles: profiles, athletes: athletes, follows: follows}
}

// WhoToFollow returns up to limit suggestions for the given caller. An
// unauthenticated or non-active caller gets an empty list, not an error,
// so auth state never leaks through the error channel.
func (uc *SuggestUseCase) WhoToFollow(ctx context.Context, profileID string, limit int, debug bool) ([]Suggestion, *DebugTrace, error) {
	if limit < 1 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	empty := []Suggestion{}
	if profileID == "" {
		return empty, nil, nil
	}

	caller, err := uc.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return empty, nil, nil
		}
		return nil, nil, err
	}
	if !caller.IsActive() {
		return empty, nil, nil
	}

	followed, err := uc.follows.TargetIDs(ctx, profileID, followCap)
	if err != nil {
		return nil, nil, err
	}
	exclude := append([]string{profileID}, followed...)

	col := &collector{
		limit:    limit,
		seen:     make(map[string]bool, limit*tierFactor),
		athletes: uc.athletes,
	}
	var trace *DebugTrace
	if debug {
		trace = &DebugTrace{
			TraceID:          uuid.NewString(),
			Limit:            limit,
			ExcludedTotal:    len(exclude),
			SampleExclusions: exclude[:min(len(exclude), 5)],
		}
	}

	// Zone cascade, narrowest tier first. Stops as soon as the limit is
	// reached; later tiers never run in that case.
	for _, zone := range domain.ZoneCascade {
		if col.full() {
			break
		}
		value := caller.ZoneValue(zone)
		if value == "" {
			continue
		}
		fetched, err := uc.tier(ctx, col, repository.CandidateFilter{
			Zone:      zone,
			ZoneValue: value,
			Exclude:   exclude,
			Limit:     limit * tierFactor,
		})
		if err != nil {
			return nil, nil, err
		}
		if trace != nil {
			trace.ZoneCandidates += fetched
		}
	}

	if !col.full() && caller.Sport != nil && *caller.Sport != "" {
		fetched, err := uc.tier(ctx, col, repository.CandidateFilter{
			Sport:   *caller.Sport,
			Exclude: exclude,
			Limit:   limit * tierFactor,
		})
		if err != nil {
			return nil, nil, err
		}
		if trace != nil {
			trace.SportCandidates = fetched
		}
	}

	if !col.full() {
		fetched, err := uc.tier(ctx, col, repository.CandidateFilter{
			Exclude: exclude,
			Limit:   limit * tierFactor,
		})
		if err != nil {
			return nil, nil, err
		}
		if trace != nil {
			trace.RecencyCandidates = fetched
		}
	}

	if trace != nil {
		trace.Dropped = col.dropped
		trace.Returned = len(col.out)
	}
	return col.out, trace, nil
}

// tier runs one cascade query and feeds its rows through the collector.
// It returns the number of rows the store supplied for the tier.
func (uc *SuggestUseCase) tier(ctx context.Context, col *collector, filter repository.CandidateFilter) (int, error) {
	candidates, err := uc.profiles.FindCandidates(ctx, filter)
	if err != nil {
		return 0, err
	}
	if err := col.add(ctx, candidates); err != nil {
		return 0, err
	}
	return len(candidates), nil
}

type collector struct {
	limit    int
	seen     map[string]bool
	out      []Suggestion
	dropped  int
	athletes repository.AthleteViewRepository
}

func (c *collector) full() bool {
	return len(c.out) >= c.limit
}

// add appends newly-seen candidates until the limit is reached. Athlete
// names are re-resolved through the athletes view; a candidate whose
// resolved name is empty or email-shaped is dropped outright.
func (c *collector) add(ctx context.Context, candidates []*domain.Profile) error {
	if c.out == nil {
		c.out = []Suggestion{}
	}

	var athleteIDs []string
	for _, p := range candidates {
		if p.AccountType == domain.AccountTypeAthlete && !c.seen[p.ID] {
			athleteIDs = append(athleteIDs, p.ID)
		}
	}
	records, err := c.athletes.ByIDs(ctx, athleteIDs)
	if err != nil {
		return err
	}

	for _, p := range candidates {
		if c.full() {
			break
		}
		if c.seen[p.ID] {
			continue
		}
		c.seen[p.ID] = true

		suggestion := Suggestion{
			ID:          p.ID,
			Type:        p.AccountType,
			DisplayName: p.DisplayName,
			FullName:    p.FullName,
			AvatarURL:   p.AvatarURL,
			Sport:       p.Sport,
			Role:        p.Role,
			City:        p.City,
			Country:     p.Country,
		}
		if p.AccountType == domain.AccountTypeAthlete {
			record := records[p.ID]
			name := resolveName(record.FullName, record.DisplayName, p.FullName, p.DisplayName)
			if name == "" {
				c.dropped++
				continue
			}
			suggestion.FullName = &name
			if record.DisplayName != nil && *record.DisplayName != "" {
				suggestion.DisplayName = record.DisplayName
			}
			if suggestion.AvatarURL == nil {
				suggestion.AvatarURL = record.AvatarURL
			}
		}
		c.out = append(c.out, suggestion)
	}
	return nil
}

// resolveName walks an ordered list of name sources and returns the
// first non-empty value that does not look like an email address.
func resolveName(sources ...*string) string {
	for _, s := range sources {
		if s == nil || *s == "" {
			continue
		}
		if emailShaped.MatchString(*s) {
			continue
		}
		return *s
	}
	return ""
}
