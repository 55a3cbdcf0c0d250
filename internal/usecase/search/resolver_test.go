package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

func strPtr(s string) *string { return &s }

// fakeProfileStore implements repository.ProfileRepository; only the
// display lookups matter to the resolver, the rest are unused.
type fakeProfileStore struct {
	byID        map[string]domain.DisplayRef
	byAccountID map[string]domain.DisplayRef

	idQueries      [][]string
	accountQueries [][]string
}

func (f *fakeProfileStore) GetByID(context.Context, string) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileStore) ByIDs(context.Context, []string) (map[string]*domain.Profile, error) {
	return map[string]*domain.Profile{}, nil
}

func (f *fakeProfileStore) DisplayByIDs(_ context.Context, ids []string) (map[string]domain.DisplayRef, error) {
	f.idQueries = append(f.idQueries, ids)
	return pick(f.byID, ids), nil
}

func (f *fakeProfileStore) DisplayByAccountIDs(_ context.Context, ids []string) (map[string]domain.DisplayRef, error) {
	f.accountQueries = append(f.accountQueries, ids)
	return pick(f.byAccountID, ids), nil
}

func (f *fakeProfileStore) SearchAthletes(context.Context, string, int, int) ([]*domain.Profile, error) {
	return nil, nil
}

func (f *fakeProfileStore) CountAthletes(context.Context, string) (int, error) {
	return 0, nil
}

func (f *fakeProfileStore) FindCandidates(context.Context, repository.CandidateFilter) ([]*domain.Profile, error) {
	return nil, nil
}

type fakeClubView struct {
	records map[string]domain.ClubRecord
	queries [][]string
}

func (f *fakeClubView) SearchByName(context.Context, string, int, int) ([]*domain.ClubRecord, error) {
	return nil, nil
}

func (f *fakeClubView) CountByName(context.Context, string) (int, error) {
	return 0, nil
}

func (f *fakeClubView) ByIDs(_ context.Context, ids []string) (map[string]domain.ClubRecord, error) {
	f.queries = append(f.queries, ids)
	return pick(f.records, ids), nil
}

type fakeAthleteView struct {
	records map[string]domain.AthleteRecord
	queries [][]string
}

func (f *fakeAthleteView) ByIDs(_ context.Context, ids []string) (map[string]domain.AthleteRecord, error) {
	f.queries = append(f.queries, ids)
	return pick(f.records, ids), nil
}

func pick[V any](source map[string]V, ids []string) map[string]V {
	out := make(map[string]V)
	for _, id := range ids {
		if v, ok := source[id]; ok {
			out[id] = v
		}
	}
	return out
}

func TestResolveClubsFallbackChain(t *testing.T) {
	profiles := &fakeProfileStore{
		byID: map[string]domain.DisplayRef{
			"p1": {DisplayName: strPtr("Polisportiva Lentini")},
		},
		byAccountID: map[string]domain.DisplayRef{
			"a1": {FullName: strPtr("US Megara")},
		},
	}
	clubs := &fakeClubView{records: map[string]domain.ClubRecord{
		"v1": {ID: "v1", Name: strPtr("ASD Climiti"), AvatarURL: strPtr("https://cdn.example/v1.png")},
	}}

	resolver := NewReferenceResolver(profiles, clubs, &fakeAthleteView{})
	refs, err := resolver.ResolveClubs(context.Background(), []string{"p1", "a1", "v1", "missing"})
	require.NoError(t, err)

	assert.Equal(t, "Polisportiva Lentini", refs["p1"].Name())
	assert.Equal(t, "US Megara", refs["a1"].Name())
	assert.Equal(t, "ASD Climiti", refs["v1"].Name())
	_, ok := refs["missing"]
	assert.False(t, ok, "unresolvable ids stay absent")

	// Each step only sees ids the previous step left unresolved.
	require.Len(t, profiles.idQueries, 1)
	assert.ElementsMatch(t, []string{"p1", "a1", "v1", "missing"}, profiles.idQueries[0])
	require.Len(t, profiles.accountQueries, 1)
	assert.ElementsMatch(t, []string{"a1", "v1", "missing"}, profiles.accountQueries[0])
	require.Len(t, clubs.queries, 1)
	assert.ElementsMatch(t, []string{"v1", "missing"}, clubs.queries[0])
}

func TestResolveClubsSkipsLaterStepsWhenDone(t *testing.T) {
	profiles := &fakeProfileStore{
		byID: map[string]domain.DisplayRef{
			"p1": {DisplayName: strPtr("Club Uno")},
			"p2": {DisplayName: strPtr("Club Due")},
		},
	}
	clubs := &fakeClubView{}

	resolver := NewReferenceResolver(profiles, clubs, &fakeAthleteView{})
	refs, err := resolver.ResolveClubs(context.Background(), []string{"p1", "p2", "p1"})
	require.NoError(t, err)

	assert.Len(t, refs, 2, "duplicate input ids collapse")
	assert.Empty(t, profiles.accountQueries, "account step skipped when everything resolved")
	assert.Empty(t, clubs.queries)
}

func TestResolveAuthorsPrefersAthleteView(t *testing.T) {
	profiles := &fakeProfileStore{}
	clubs := &fakeClubView{records: map[string]domain.ClubRecord{
		"c9": {ID: "c9", Name: strPtr("Circolo Nautico")},
	}}
	athletes := &fakeAthleteView{records: map[string]domain.AthleteRecord{
		"a9": {ID: "a9", FullName: strPtr("Manlio Rossitto")},
	}}

	resolver := NewReferenceResolver(profiles, clubs, athletes)
	refs, err := resolver.ResolveAuthors(context.Background(), []string{"a9", "c9"})
	require.NoError(t, err)

	assert.Equal(t, "Manlio Rossitto", refs["a9"].Name())
	assert.Equal(t, "Circolo Nautico", refs["c9"].Name())
	require.Len(t, clubs.queries, 1)
	assert.ElementsMatch(t, []string{"c9"}, clubs.queries[0], "club view only sees what the athlete view missed")
}

func TestResolveEmptyInput(t *testing.T) {
	profiles := &fakeProfileStore{}
	resolver := NewReferenceResolver(profiles, &fakeClubView{}, &fakeAthleteView{})

	refs, err := resolver.ResolveClubs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, refs)
}
