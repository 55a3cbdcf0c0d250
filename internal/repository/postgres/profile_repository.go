package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/sportlinkapp/sportlink-backend/internal/domain"
	"github.com/sportlinkapp/sportlink-backend/internal/repository"
)

var profileColumns = []string{
	"id", "account_id", "account_type", "status",
	"full_name", "display_name",
	"city", "province", "region", "country",
	"interest_city", "interest_province", "interest_region", "interest_country",
	"sport", "role", "avatar_url",
	"created_at", "updated_at",
}

// Fields an athlete search term is matched against.
var athleteMatchColumns = []string{
	"full_name", "city", "province", "region", "country", "sport", "role",
}

// Candidate zone filters match the candidate's direct location column;
// interest overrides only apply to the caller's side of the comparison.
var zoneColumns = map[domain.ZoneField]string{
	domain.ZoneCity:     "city",
	domain.ZoneProvince: "province",
	domain.ZoneRegion:   "region",
	domain.ZoneCountry:  "country",
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("get profile", err)
	}

	var profile domain.Profile
	if err := r.db.GetContext(ctx, &profile, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, domain.NewStoreError("get profile", err)
	}
	return &profile, nil
}

func (r *profileRepository) ByIDs(ctx context.Context, ids []string) (map[string]*domain.Profile, error) {
	out := make(map[string]*domain.Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("profiles by ids", err)
	}

	var profiles []*domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, domain.NewStoreError("profiles by ids", err)
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}

type displayRow struct {
	Key string `db:"key"`
	domain.DisplayRef
}

func (r *profileRepository) displayBy(ctx context.Context, keyColumn string, ids []string) (map[string]domain.DisplayRef, error) {
	out := make(map[string]domain.DisplayRef, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	op := fmt.Sprintf("display refs by %s", keyColumn)
	query, args, err := psql.Select(keyColumn+" AS key", "display_name", "full_name", "avatar_url").
		From("profiles").
		Where(sq.Eq{keyColumn: ids}).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}

	var rows []displayRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	for _, row := range rows {
		out[row.Key] = row.DisplayRef
	}
	return out, nil
}

func (r *profileRepository) DisplayByIDs(ctx context.Context, ids []string) (map[string]domain.DisplayRef, error) {
	return r.displayBy(ctx, "id", ids)
}

func (r *profileRepository) DisplayByAccountIDs(ctx context.Context, ids []string) (map[string]domain.DisplayRef, error) {
	return r.displayBy(ctx, "account_id", ids)
}

func (r *profileRepository) SearchAthletes(ctx context.Context, pattern string, limit, offset int) ([]*domain.Profile, error) {
	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"account_type": domain.AccountTypeAthlete}).
		Where(sq.Eq{"status": domain.StatusActive}).
		Where(orILike(pattern, athleteMatchColumns...)).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("search athletes", err)
	}

	var profiles []*domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, domain.NewStoreError("search athletes", err)
	}
	return profiles, nil
}

func (r *profileRepository) CountAthletes(ctx context.Context, pattern string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("profiles").
		Where(sq.Eq{"account_type": domain.AccountTypeAthlete}).
		Where(sq.Eq{"status": domain.StatusActive}).
		Where(orILike(pattern, athleteMatchColumns...)).
		ToSql()
	if err != nil {
		return 0, domain.NewStoreError("count athletes", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, domain.NewStoreError("count athletes", err)
	}
	return count, nil
}

func (r *profileRepository) FindCandidates(ctx context.Context, filter repository.CandidateFilter) ([]*domain.Profile, error) {
	builder := psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Or{
			sq.Eq{"status": []string{domain.StatusActive, domain.StatusPending}},
			sq.Eq{"status": nil},
		})

	if filter.Zone != "" {
		col, ok := zoneColumns[filter.Zone]
		if !ok {
			return nil, domain.NewStoreError("find candidates", fmt.Errorf("unknown zone field %q", filter.Zone))
		}
		builder = builder.Where(sq.Eq{col: filter.ZoneValue})
	}
	if filter.Sport != "" {
		builder = builder.Where(sq.Eq{"sport": filter.Sport})
	}
	if len(filter.Exclude) > 0 {
		builder = builder.Where(sq.NotEq{"id": filter.Exclude})
	}

	query, args, err := builder.
		OrderBy("updated_at DESC").
		Limit(uint64(filter.Limit)).
		ToSql()
	if err != nil {
		return nil, domain.NewStoreError("find candidates", err)
	}

	var profiles []*domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, domain.NewStoreError("find candidates", err)
	}
	return profiles, nil
}
