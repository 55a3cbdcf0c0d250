package domain

import "time"

const (
	AccountTypeClub    = "club"
	AccountTypeAthlete = "athlete"

	StatusActive  = "active"
	StatusPending = "pending"
)

// Profile is the canonical profile projection. Some rows are keyed by
// profile id, older ones reference the underlying account id; both keys
// are kept so lookups can fall back from one to the other.
type Profile struct {
	ID               string    `json:"id" db:"id"`
	AccountID        *string   `json:"account_id" db:"account_id"`
	AccountType      string    `json:"account_type" db:"account_type"`
	Status           *string   `json:"status" db:"status"`
	FullName         *string   `json:"full_name" db:"full_name"`
	DisplayName      *string   `json:"display_name" db:"display_name"`
	City             *string   `json:"city" db:"city"`
	Province         *string   `json:"province" db:"province"`
	Region           *string   `json:"region" db:"region"`
	Country          *string   `json:"country" db:"country"`
	InterestCity     *string   `json:"interest_city" db:"interest_city"`
	InterestProvince *string   `json:"interest_province" db:"interest_province"`
	InterestRegion   *string   `json:"interest_region" db:"interest_region"`
	InterestCountry  *string   `json:"interest_country" db:"interest_country"`
	Sport            *string   `json:"sport" db:"sport"`
	Role             *string   `json:"role" db:"role"`
	AvatarURL        *string   `json:"avatar_url" db:"avatar_url"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Profile) IsActive() bool {
	return p.Status != nil && *p.Status == StatusActive
}

// ZoneField names one level of the location cascade.
type ZoneField string

const (
	ZoneCity     ZoneField = "city"
	ZoneProvince ZoneField = "province"
	ZoneRegion   ZoneField = "region"
	ZoneCountry  ZoneField = "country"
)

// ZoneCascade is the order in which location tiers are consulted,
// narrowest first.
var ZoneCascade = []ZoneField{ZoneCity, ZoneProvince, ZoneRegion, ZoneCountry}

// ZoneValue returns the profile's value for a zone field, preferring the
// interest_* override when set.
func (p *Profile) ZoneValue(field ZoneField) string {
	var override, direct *string
	switch field {
	case ZoneCity:
		override, direct = p.InterestCity, p.City
	case ZoneProvince:
		override, direct = p.InterestProvince, p.Province
	case ZoneRegion:
		override, direct = p.InterestRegion, p.Region
	case ZoneCountry:
		override, direct = p.InterestCountry, p.Country
	}
	if override != nil && *override != "" {
		return *override
	}
	if direct != nil {
		return *direct
	}
	return ""
}

// DisplayRef carries the display fields resolved for a referenced profile.
type DisplayRef struct {
	DisplayName *string `db:"display_name"`
	FullName    *string `db:"full_name"`
	AvatarURL   *string `db:"avatar_url"`
}

// Name returns the first non-empty of display name and full name.
func (r DisplayRef) Name() string {
	if r.DisplayName != nil && *r.DisplayName != "" {
		return *r.DisplayName
	}
	if r.FullName != nil && *r.FullName != "" {
		return *r.FullName
	}
	return ""
}

// ClubRecord is a row from the type-specific clubs view.
type ClubRecord struct {
	ID        string  `db:"id"`
	Name      *string `db:"name"`
	AvatarURL *string `db:"avatar_url"`
}

// AthleteRecord is a row from the type-specific athletes view. Its name
// fields are authoritative over the canonical profile row, which may hold
// stale or email-shaped names.
type AthleteRecord struct {
	ID          string  `db:"id"`
	FullName    *string `db:"full_name"`
	DisplayName *string `db:"display_name"`
	AvatarURL   *string `db:"avatar_url"`
}
