package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

func strPtr(s string) *string { return &s }

type fakeProfiles struct {
	caller *domain.Profile
	find   func(repository.CandidateFilter) []*domain.Profile
	calls  []repository.CandidateFilter
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	if f.caller == nil || f.caller.ID != id {
		return nil, domain.ErrProfileNotFound
	}
	return f.caller, nil
}

func (f *fakeProfiles) ByIDs(context.Context, []string) (map[string]*domain.Profile, error) {
	return map[string]*domain.Profile{}, nil
}

func (f *fakeProfiles) DisplayByIDs(context.Context, []string) (map[string]domain.DisplayRef, error) {
	return map[string]domain.DisplayRef{}, nil
}

func (f *fakeProfiles) DisplayByAccountIDs(context.Context, []string) (map[string]domain.DisplayRef, error) {
	return map[string]domain.DisplayRef{}, nil
}

func (f *fakeProfiles) SearchAthletes(context.Context, string, int, int) ([]*domain.Profile, error) {
	return nil, nil
}

func (f *fakeProfiles) CountAthletes(context.Context, string) (int, error) {
	return 0, nil
}

func (f *fakeProfiles) FindCandidates(_ context.Context, filter repository.CandidateFilter) ([]*domain.Profile, error) {
	f.calls = append(f.calls, filter)
	if f.find == nil {
		return nil, nil
	}
	excluded := make(map[string]bool, len(filter.Exclude))
	for _, id := range filter.Exclude {
		excluded[id] = true
	}
	var out []*domain.Profile
	for _, p := range f.find(filter) {
		if !excluded[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAthletes struct {
	records map[string]domain.AthleteRecord
}

func (f *fakeAthletes) ByIDs(_ context.Context, ids []string) (map[string]domain.AthleteRecord, error) {
	out := make(map[string]domain.AthleteRecord)
	for _, id := range ids {
		if rec, ok := f.records[id]; ok {
			out[id] = rec
		}
	}
	return out, nil
}

type fakeFollows struct {
	targets []string
	calls   int
}

func (f *fakeFollows) TargetIDs(_ context.Context, _ string, limit int) ([]string, error) {
	f.calls++
	if len(f.targets) > limit {
		return f.targets[:limit], nil
	}
	return f.targets, nil
}

func activeCaller() *domain.Profile {
	return &domain.Profile{
		ID:           "me",
		AccountType:  domain.AccountTypeAthlete,
		Status:       strPtr(domain.StatusActive),
		InterestCity: strPtr("Carlentini"),
	}
}

func athlete(id, name string) *domain.Profile {
	return &domain.Profile{
		ID:          id,
		AccountType: domain.AccountTypeAthlete,
		Status:      strPtr(domain.StatusActive),
		FullName:    strPtr(name),
		City:        strPtr("Carlentini"),
	}
}

func newUseCase(profiles *fakeProfiles, athletes *fakeAthletes, follows *fakeFollows) *SuggestUseCase {
	if athletes == nil {
		athletes = &fakeAthletes{}
	}
	if follows == nil {
		follows = &fakeFollows{}
	}
	return NewSuggestUseCase(profiles, athletes, follows)
}

func TestWhoToFollowAnonymousCallerGetsEmptyList(t *testing.T) {
	profiles := &fakeProfiles{}
	uc := newUseCase(profiles, nil, nil)

	suggestions, trace, err := uc.WhoToFollow(context.Background(), "", 5, true)
	require.NoError(t, err, "missing auth is a valid empty result, not an error")
	assert.Empty(t, suggestions)
	assert.NotNil(t, suggestions, "serializes as [] rather than null")
	assert.Nil(t, trace)
	assert.Empty(t, profiles.calls, "no store queries for anonymous callers")
}

func TestWhoToFollowUnknownOrInactiveCaller(t *testing.T) {
	uc := newUseCase(&fakeProfiles{}, nil, nil)
	suggestions, _, err := uc.WhoToFollow(context.Background(), "ghost", 5, false)
	require.NoError(t, err)
	assert.Empty(t, suggestions)

	pending := activeCaller()
	pending.Status = strPtr(domain.StatusPending)
	uc = newUseCase(&fakeProfiles{caller: pending}, nil, nil)
	suggestions, _, err = uc.WhoToFollow(context.Background(), "me", 5, false)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestWhoToFollowZoneCandidatesComeFirst(t *testing.T) {
	profiles := &fakeProfiles{
		caller: activeCaller(),
		find: func(filter repository.CandidateFilter) []*domain.Profile {
			switch {
			case filter.Zone == domain.ZoneCity && filter.ZoneValue == "Carlentini":
				return []*domain.Profile{athlete("z1", "Rosario Gibilisco"), athlete("z2", "Manlio Rossitto")}
			case filter.Zone == "" && filter.Sport == "":
				return []*domain.Profile{athlete("r1", "Pino Recente")}
			}
			return nil
		},
	}

	uc := newUseCase(profiles, nil, nil)
	suggestions, trace, err := uc.WhoToFollow(context.Background(), "me", 5, true)
	require.NoError(t, err)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "z1", suggestions[0].ID, "zone tier results are never displaced")
	assert.Equal(t, "z2", suggestions[1].ID)
	assert.Equal(t, "r1", suggestions[2].ID)

	require.NotNil(t, trace)
	assert.Equal(t, 2, trace.ZoneCandidates)
	assert.Equal(t, 0, trace.SportCandidates, "caller has no sport, tier skipped")
	assert.Equal(t, 1, trace.RecencyCandidates)
	assert.Equal(t, 3, trace.Returned)
}

func TestWhoToFollowEarlyStopSkipsLaterTiers(t *testing.T) {
	caller := activeCaller()
	caller.Sport = strPtr("calcio")

	profiles := &fakeProfiles{
		caller: caller,
		find: func(filter repository.CandidateFilter) []*domain.Profile {
			if filter.Zone == domain.ZoneCity {
				return []*domain.Profile{
					athlete("z1", "Uno"), athlete("z2", "Due"), athlete("z3", "Tre"),
				}
			}
			t.Fatalf("unexpected tier query: %+v", filter)
			return nil
		},
	}

	uc := newUseCase(profiles, nil, nil)
	suggestions, _, err := uc.WhoToFollow(context.Background(), "me", 2, false)
	require.NoError(t, err)

	assert.Len(t, suggestions, 2, "truncated to limit")
	require.Len(t, profiles.calls, 1, "no sport or recency query once the limit is met")
	assert.Equal(t, domain.ZoneCity, profiles.calls[0].Zone)
	assert.Equal(t, 6, profiles.calls[0].Limit, "tiers over-fetch at limit*3")
}

func TestWhoToFollowExcludesSelfAndFollowed(t *testing.T) {
	profiles := &fakeProfiles{
		caller: activeCaller(),
		find: func(repository.CandidateFilter) []*domain.Profile {
			return []*domain.Profile{athlete("me", "Io"), athlete("f1", "Seguito"), athlete("n1", "Nuovo")}
		},
	}
	follows := &fakeFollows{targets: []string{"f1"}}

	uc := newUseCase(profiles, nil, follows)
	suggestions, _, err := uc.WhoToFollow(context.Background(), "me", 5, false)
	require.NoError(t, err)

	require.NotEmpty(t, profiles.calls)
	assert.Contains(t, profiles.calls[0].Exclude, "me")
	assert.Contains(t, profiles.calls[0].Exclude, "f1")
	for _, s := range suggestions {
		assert.NotEqual(t, "me", s.ID)
		assert.NotEqual(t, "f1", s.ID)
	}
	assert.Equal(t, 1, follows.calls, "exclusion set fetched once")
}

func TestWhoToFollowDeduplicatesAcrossTiers(t *testing.T) {
	profiles := &fakeProfiles{
		caller: activeCaller(),
		find: func(filter repository.CandidateFilter) []*domain.Profile {
			// Every tier returns the same candidate plus one unique row.
			switch {
			case filter.Zone == domain.ZoneCity:
				return []*domain.Profile{athlete("dup", "Doppione")}
			case filter.Zone == "" && filter.Sport == "":
				return []*domain.Profile{athlete("dup", "Doppione"), athlete("solo", "Unico")}
			}
			return nil
		},
	}

	uc := newUseCase(profiles, nil, nil)
	suggestions, _, err := uc.WhoToFollow(context.Background(), "me", 5, false)
	require.NoError(t, err)

	ids := make(map[string]int)
	for _, s := range suggestions {
		ids[s.ID]++
	}
	assert.Equal(t, 1, ids["dup"], "a candidate surfaces at most once")
	assert.Equal(t, 1, ids["solo"])
}

func TestWhoToFollowDropsEmailShapedNames(t *testing.T) {
	stale := athlete("a1", "rossitto@example.com")
	fresh := athlete("a2", "manlio.r@example.com")

	profiles := &fakeProfiles{
		caller: activeCaller(),
		find: func(filter repository.CandidateFilter) []*domain.Profile {
			if filter.Zone == domain.ZoneCity {
				return []*domain.Profile{stale, fresh}
			}
			return nil
		},
	}
	// a2's view row has a real name, so only a1 is dropped.
	athletes := &fakeAthletes{records: map[string]domain.AthleteRecord{
		"a2": {ID: "a2", FullName: strPtr("Manlio Rossitto")},
	}}

	uc := newUseCase(profiles, athletes, nil)
	suggestions, trace, err := uc.WhoToFollow(context.Background(), "me", 5, true)
	require.NoError(t, err)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "a2", suggestions[0].ID)
	require.NotNil(t, suggestions[0].FullName)
	assert.Equal(t, "Manlio Rossitto", *suggestions[0].FullName, "view name preferred over the stale profile field")
	require.NotNil(t, trace)
	assert.Equal(t, 1, trace.Dropped)
}

func TestWhoToFollowLimitClamping(t *testing.T) {
	profiles := &fakeProfiles{
		caller: activeCaller(),
		find: func(filter repository.CandidateFilter) []*domain.Profile {
			if filter.Zone != domain.ZoneCity {
				return nil
			}
			var out []*domain.Profile
			for i := 0; i < 30; i++ {
				out = append(out, athlete(string(rune('A'+i)), "Atleta"))
			}
			return out
		},
	}

	uc := newUseCase(profiles, nil, nil)
	suggestions, _, err := uc.WhoToFollow(context.Background(), "me", 50, false)
	require.NoError(t, err)
	assert.Len(t, suggestions, 10, "limit clamps to 10")

	profiles.calls = nil
	suggestions, _, err = uc.WhoToFollow(context.Background(), "me", 0, false)
	require.NoError(t, err)
	assert.Len(t, suggestions, 5, "unset limit defaults to 5")
	require.NotEmpty(t, profiles.calls)
	assert.Equal(t, 15, profiles.calls[0].Limit)
}
