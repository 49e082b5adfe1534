package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/procoat-sa/site-backend/internal/db"
	"github.com/procoat-sa/site-backend/internal/projects/domain"
)

const projectCols = "id::text, title, description, images, category, created_at, updated_at"

// Repo provides persistence operations for projects.
type Repo struct {
	db *db.DB
}

func NewRepo(d *db.DB) *Repo {
	return &Repo{db: d}
}

func (r *Repo) Create(ctx context.Context, np domain.NewProject) (*domain.Project, error) {
	if np.Title == "" {
		return nil, fmt.Errorf("title required")
	}
	if len(np.Images) == 0 {
		return nil, fmt.Errorf("at least one image required")
	}

	return db.Write(ctx, r.db, func(ctx context.Context, pool *pgxpool.Pool) (*domain.Project, error) {
		const q = `
insert into projects (title, description, images, category)
values ($1, $2, $3, $4)
returning ` + projectCols + `;
`
		var p domain.Project
		err := pool.QueryRow(ctx, q, np.Title, np.Description, np.Images, np.Category).
			Scan(&p.ID, &p.Title, &p.Description, &p.Images, &p.Category, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// List returns all projects, newest first. Offline mode yields an empty list.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	return db.Read(ctx, r.db, []domain.Project{}, func(ctx context.Context, pool *pgxpool.Pool) ([]domain.Project, error) {
		const q = `
select ` + projectCols + `
from projects
order by created_at desc;
`
		rows, err := pool.Query(ctx, q)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		out := make([]domain.Project, 0, 16)
		for rows.Next() {
			var p domain.Project
			if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Images, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, rows.Err()
	})
}

// Update applies a partial merge: only non-nil fields overwrite stored values.
func (r *Repo) Update(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error) {
	return db.Write(ctx, r.db, func(ctx context.Context, pool *pgxpool.Pool) (*domain.Project, error) {
		sets := []string{"updated_at = now()"}
		args := []any{}
		arg := 1

		if upd.Title != nil {
			sets = append(sets, fmt.Sprintf("title = $%d", arg))
			args = append(args, *upd.Title)
			arg++
		}
		if upd.Description != nil {
			sets = append(sets, fmt.Sprintf("description = $%d", arg))
			args = append(args, *upd.Description)
			arg++
		}
		if upd.Images != nil {
			sets = append(sets, fmt.Sprintf("images = $%d", arg))
			args = append(args, upd.Images)
			arg++
		}
		if upd.Category != nil {
			sets = append(sets, fmt.Sprintf("category = $%d", arg))
			args = append(args, *upd.Category)
			arg++
		}

		args = append(args, id)
		q := fmt.Sprintf(`update projects set %s where id = $%d::uuid returning %s;`,
			strings.Join(sets, ", "), arg, projectCols)

		var p domain.Project
		err := pool.QueryRow(ctx, q, args...).
			Scan(&p.ID, &p.Title, &p.Description, &p.Images, &p.Category, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrNotFound
			}
			return nil, err
		}
		return &p, nil
	})
}

// Delete hard-removes the project. Deleting an unknown id is an error, so a
// repeat delete fails instead of succeeding silently.
func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := db.Write(ctx, r.db, func(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
		const q = `delete from projects where id = $1::uuid;`
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

// Count reports how many projects exist; used by the health endpoint.
// Offline mode yields zero.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	return db.Read(ctx, r.db, 0, func(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
		var n int64
		err := pool.QueryRow(ctx, `select count(*) from projects;`).Scan(&n)
		return n, err
	})
}
