package domain

import "time"

// Project is a single portfolio entry shown on the public site.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Categories offered by the admin UI. Stored as free text; the schema does
// not enforce membership.
const (
	CategoryResidential = "Residential"
	CategoryCommercial  = "Commercial"
	CategoryIndustrial  = "Industrial"
	CategoryRenovation  = "Renovation"
)

// NewProject carries the validated fields for a create.
type NewProject struct {
	Title       string
	Description string
	Images      []string
	Category    string
}

// ProjectUpdate is a partial-merge payload: nil fields are left untouched in
// the stored record. Images is all-or-nothing (nil means keep).
type ProjectUpdate struct {
	Title       *string
	Description *string
	Images      []string
	Category    *string
}
