package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nonprofit-cms-backend/internal/domains/project"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) project.Repository {
	return &postgresRepository{pool: pool}
}

const projectColumns = `id, title, goal, icon, description, gradient, images, is_active, sort_order, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.Title, &p.Goal, &p.Icon, &p.Description, &p.Gradient,
		&p.Images, &p.IsActive, &p.Order, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *project.Project) error {
	query := `INSERT INTO projects (id, title, goal, icon, description, gradient, images, is_active, sort_order)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Goal, p.Icon, p.Description, p.Gradient, p.Images, p.IsActive, p.Order).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)
	return scanProject(r.pool.QueryRow(ctx, query, id))
}

// List sorts by the explicit display order, then recency.
func (r *postgresRepository) List(ctx context.Context, filter project.ListFilter) ([]project.Project, int64, error) {
	where := []string{"TRUE"}
	args := []interface{}{}
	idx := 1

	if filter.ActiveOnly {
		where = append(where, "is_active = TRUE")
	}

	whereStr := strings.Join(where, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM projects WHERE %s`, whereStr), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE %s
    ORDER BY sort_order ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		projectColumns, whereStr, idx, idx+1)
	args = append(args, filter.Page.Limit, filter.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *p)
	}
	return items, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, p *project.Project) error {
	query := `UPDATE projects
    SET title=$2, goal=$3, icon=$4, description=$5, gradient=$6, images=$7, is_active=$8, sort_order=$9, updated_at=NOW()
    WHERE id=$1
    RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Goal, p.Icon, p.Description, p.Gradient, p.Images, p.IsActive, p.Order).
		Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrNotFound
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*project.Stats, error) {
	var s project.Stats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
            COUNT(*) FILTER (WHERE is_active),
            COUNT(*) FILTER (WHERE NOT is_active)
        FROM projects`).
		Scan(&s.Total, &s.Active, &s.Inactive)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}
	return &s, nil
}
