package domain

import "time"

// Opportunity is a read-only projection of an opportunity listing. Three
// generations of the schema referenced the owning club differently, so all
// three legacy columns are carried and reconciled via CanonicalClubID.
type Opportunity struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	City        *string   `json:"city" db:"city"`
	Province    *string   `json:"province" db:"province"`
	Region      *string   `json:"region" db:"region"`
	Country     *string   `json:"country" db:"country"`
	Sport       *string   `json:"sport" db:"sport"`
	Role        *string   `json:"role" db:"role"`
	Status      *string   `json:"status" db:"status"`
	ClubID      *string   `json:"club_id" db:"club_id"`
	CreatedBy   *string   `json:"created_by" db:"created_by"`
	OwnerID     *string   `json:"owner_id" db:"owner_id"`
	ClubName    *string   `json:"club_name" db:"club_name"`
	ClubAvatar  *string   `json:"club_avatar_url" db:"club_avatar_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CanonicalClubID reconciles the three legacy club reference columns to a
// single club id: first non-empty of club_id, created_by, owner_id.
func (o *Opportunity) CanonicalClubID() string {
	for _, ref := range []*string{o.ClubID, o.CreatedBy, o.OwnerID} {
		if ref != nil && *ref != "" {
			return *ref
		}
	}
	return ""
}
