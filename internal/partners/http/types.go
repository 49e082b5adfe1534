package http

import (
	"context"

	"github.com/procoat-sa/site-backend/internal/partners/domain"
)

// Store is the repository surface the handlers need.
type Store interface {
	Create(ctx context.Context, np domain.NewPartner) (*domain.Partner, error)
	List(ctx context.Context) ([]domain.Partner, error)
	Update(ctx context.Context, id string, upd domain.PartnerUpdate) (*domain.Partner, error)
	Delete(ctx context.Context, id string) error
}

type createReq struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl"`
	Website     string `json:"website"`
	Certificate string `json:"certificate"`
}

type updateReq struct {
	Name        *string `json:"name"`
	LogoURL     *string `json:"logoUrl"`
	Website     *string `json:"website"`
	Certificate *string `json:"certificate"`
}
