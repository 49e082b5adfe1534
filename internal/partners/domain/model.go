package domain

import "time"

// Partner is a supplier/manufacturer the contractor is accredited with:
// a logo for the partner strip on the landing page plus the accreditation
// certificate shown in the dialog.
type Partner struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LogoURL     string    `json:"logoUrl"`
	Website     string    `json:"website"`
	Certificate string    `json:"certificate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewPartner struct {
	Name        string
	LogoURL     string
	Website     string
	Certificate string
}

// PartnerUpdate is a partial-merge payload: nil fields keep their stored value.
type PartnerUpdate struct {
	Name        *string
	LogoURL     *string
	Website     *string
	Certificate *string
}
