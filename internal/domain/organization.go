package domain

import "time"

type OrganizationStatus string

const (
	OrganizationActive   OrganizationStatus = "active"
	OrganizationInactive OrganizationStatus = "inactive"
)

// Organization is a client business synced from the CRM. The
// HighLevel location id is the unique external key used by the
// webhook upsert.
type Organization struct {
	ID                  string             `json:"id"`
	HighLevelLocationID *string            `json:"highlevel_location_id"`
	Name                string             `json:"name"`
	Status              OrganizationStatus `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}
