package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/procoat-sa/site-backend/internal/db"
	"github.com/procoat-sa/site-backend/internal/partners/domain"
)

const partnerCols = "id::text, name, logo_url, website, certificate, created_at, updated_at"

// Repo provides persistence operations for partners.
type Repo struct {
	db *db.DB
}

func NewRepo(d *db.DB) *Repo {
	return &Repo{db: d}
}

func (r *Repo) Create(ctx context.Context, np domain.NewPartner) (*domain.Partner, error) {
	if np.Name == "" || np.LogoURL == "" || np.Certificate == "" {
		return nil, fmt.Errorf("name, logo and certificate required")
	}

	return db.Write(ctx, r.db, func(ctx context.Context, pool *pgxpool.Pool) (*domain.Partner, error) {
		const q = `
insert into partners (name, logo_url, website, certificate)
values ($1, $2, $3, $4)
returning ` + partnerCols + `;
`
		var p domain.Partner
		err := pool.QueryRow(ctx, q, np.Name, np.LogoURL, np.Website, np.Certificate).
			Scan(&p.ID, &p.Name, &p.LogoURL, &p.Website, &p.Certificate, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// List returns all partners, newest first. Offline mode yields an empty list.
func (r *Repo) List(ctx context.Context) ([]domain.Partner, error) {
	return db.Read(ctx, r.db, []domain.Partner{}, func(ctx context.Context, pool *pgxpool.Pool) ([]domain.Partner, error) {
		const q = `
select ` + partnerCols + `
from partners
order by created_at desc;
`
		rows, err := pool.Query(ctx, q)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		out := make([]domain.Partner, 0, 16)
		for rows.Next() {
			var p domain.Partner
			if err := rows.Scan(&p.ID, &p.Name, &p.LogoURL, &p.Website, &p.Certificate, &p.CreatedAt, &p.UpdatedAt); err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, rows.Err()
	})
}

// Update applies a partial merge: only non-nil fields overwrite stored values.
func (r *Repo) Update(ctx context.Context, id string, upd domain.PartnerUpdate) (*domain.Partner, error) {
	return db.Write(ctx, r.db, func(ctx context.Context, pool *pgxpool.Pool) (*domain.Partner, error) {
		sets := []string{"updated_at = now()"}
		args := []any{}
		arg := 1

		if upd.Name != nil {
			sets = append(sets, fmt.Sprintf("name = $%d", arg))
			args = append(args, *upd.Name)
			arg++
		}
		if upd.LogoURL != nil {
			sets = append(sets, fmt.Sprintf("logo_url = $%d", arg))
			args = append(args, *upd.LogoURL)
			arg++
		}
		if upd.Website != nil {
			sets = append(sets, fmt.Sprintf("website = $%d", arg))
			args = append(args, *upd.Website)
			arg++
		}
		if upd.Certificate != nil {
			sets = append(sets, fmt.Sprintf("certificate = $%d", arg))
			args = append(args, *upd.Certificate)
			arg++
		}

		args = append(args, id)
		q := fmt.Sprintf(`update partners set %s where id = $%d::uuid returning %s;`,
			strings.Join(sets, ", "), arg, partnerCols)

		var p domain.Partner
		err := pool.QueryRow(ctx, q, args...).
			Scan(&p.ID, &p.Name, &p.LogoURL, &p.Website, &p.Certificate, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		return &p, nil
	})
}

// Delete hard-removes the partner; deleting an unknown id is an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := db.Write(ctx, r.db, func(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
		const q = `delete from partners where id = $1::uuid;`
		ct, err := pool.Exec(ctx, q, id)
		if err != nil {
			return false, err
		}
		if ct.RowsAffected() == 0 {
			return false, domain.ErrNotFound
		}
		return true, nil
	})
	return err
}
