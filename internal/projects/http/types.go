package http

import (
	"context"

	"github.com/procoat-sa/site-backend/internal/projects/domain"
)

// Store is the repository surface the handlers need.
type Store interface {
	Create(ctx context.Context, np domain.NewProject) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type createReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	// Image is the legacy single-image form still sent by old admin builds;
	// it is folded into Images.
	Image string `json:"image"`
}

type updateReq struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Images      []string `json:"images"`
	Image       *string  `json:"image"`
}
