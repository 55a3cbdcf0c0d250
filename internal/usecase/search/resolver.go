package search

import (
	"context"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

// Resolver batch-resolves display name/avatar for foreign profile ids.
// The profile collection is keyed inconsistently (profile id for newer
// rows, account id for old ones), so resolution walks a fallback chain
// where each step only queries ids the previous step left unresolved.
type Resolver interface {
	ResolveClubs(ctx context.Context, ids []string) (map[string]domain.DisplayRef, error)
	ResolveAuthors(ctx context.Context, ids []string) (map[string]domain.DisplayRef, error)
}

type referenceResolver struct {
	profiles repository.ProfileRepository
	clubs    repository.ClubViewRepository
	athletes repository.AthleteViewRepository
}

func NewReferenceResolver(
	profiles repository.ProfileRepository,
	clubs repository.ClubViewRepository,
	athletes repository.AthleteViewRepository,
) Resolver {
	return &referenceResolver{profiles: profiles, clubs: clubs, athletes: athletes}
}

func resolved(ref domain.DisplayRef) bool {
	return ref.Name() != ""
}

// resolveCommon runs the two profile-collection steps and returns the
// partial result plus the ids still unresolved for the view fallback.
func (r *referenceResolver) resolveCommon(ctx context.Context, ids []string) (map[string]domain.DisplayRef, []string, error) {
	out := make(map[string]domain.DisplayRef, len(ids))
	pending := dedupe(ids)

	byID, err := r.profiles.DisplayByIDs(ctx, pending)
	if err != nil {
		return nil, nil, err
	}
	pending = absorb(out, byID, pending)
	if len(pending) == 0 {
		return out, nil, nil
	}

	byAccount, err := r.profiles.DisplayByAccountIDs(ctx, pending)
	if err != nil {
		return nil, nil, err
	}
	pending = absorb(out, byAccount, pending)
	return out, pending, nil
}

func (r *referenceResolver) ResolveClubs(ctx context.Context, ids []string) (map[string]domain.DisplayRef, error) {
	out, pending, err := r.resolveCommon(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return out, nil
	}

	records, err := r.clubs.ByIDs(ctx, pending)
	if err != nil {
		return nil, err
	}
	for _, id := range pending {
		if rec, ok := records[id]; ok {
			out[id] = domain.DisplayRef{DisplayName: rec.Name, AvatarURL: rec.AvatarURL}
		}
	}
	return out, nil
}

func (r *referenceResolver) ResolveAuthors(ctx context.Context, ids []string) (map[string]domain.DisplayRef, error) {
	out, pending, err := r.resolveCommon(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return out, nil
	}

	// Feed authors are usually athletes; clubs are the rarer case, so the
	// athlete view is consulted first and the club view mops up the rest.
	athletes, err := r.athletes.ByIDs(ctx, pending)
	if err != nil {
		return nil, err
	}
	var remaining []string
	for _, id := range pending {
		if rec, ok := athletes[id]; ok {
			ref := domain.DisplayRef{DisplayName: rec.DisplayName, FullName: rec.FullName, AvatarURL: rec.AvatarURL}
			if resolved(ref) {
				out[id] = ref
				continue
			}
		}
		remaining = append(remaining, id)
	}
	if len(remaining) == 0 {
		return out, nil
	}

	records, err := r.clubs.ByIDs(ctx, remaining)
	if err != nil {
		return nil, err
	}
	for _, id := range remaining {
		if rec, ok := records[id]; ok {
			out[id] = domain.DisplayRef{DisplayName: rec.Name, AvatarURL: rec.AvatarURL}
		}
	}
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// absorb copies resolved refs into out and returns the ids still pending.
func absorb(out map[string]domain.DisplayRef, refs map[string]domain.DisplayRef, ids []string) []string {
	var pending []string
	for _, id := range ids {
		if ref, ok := refs[id]; ok && resolved(ref) {
			out[id] = ref
			continue
		}
		pending = append(pending, id)
	}
	return pending
}
