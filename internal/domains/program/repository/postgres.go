package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"nonprofit-cms-backend/internal/domains/program"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) program.Repository {
	return &postgresRepository{pool: pool}
}

const programColumns = `id, title, description, program_type, images, features, status, slug, created_at, updated_at`

func scanProgram(row pgx.Row) (*program.Program, error) {
	var p program.Program
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ProgramType, &p.Images,
		&p.Features, &p.Status, &p.Slug, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, program.ErrNotFound
		}
		return nil, fmt.Errorf("scan program: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *program.Program) error {
	query := `INSERT INTO programs (id, title, description, program_type, images, features, status, slug)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Description, p.ProgramType, p.Images, p.Features, p.Status, p.Slug).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return program.ErrSlugTaken
		}
		return fmt.Errorf("failed to create program: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByIDOrSlug(ctx context.Context, idOrSlug string) (*program.Program, error) {
	query := fmt.Sprintf(`SELECT %s FROM programs WHERE id::text = $1 OR slug = $1`, programColumns)
	return scanProgram(r.pool.QueryRow(ctx, query, idOrSlug))
}

func (r *postgresRepository) List(ctx context.Context, filter program.ListFilter) ([]program.Program, int64, error) {
	where := []string{"TRUE"}
	args := []interface{}{}
	idx := 1

	if filter.ProgramType != "" {
		where = append(where, fmt.Sprintf("program_type = $%d", idx))
		args = append(args, filter.ProgramType)
		idx++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+filter.Search+"%")
		idx++
	}

	whereStr := strings.Join(where, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM programs WHERE %s`, whereStr), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count programs: %w", err)
	}

	order := filter.Page.OrderClause(map[string]string{
		"createdAt": "created_at",
		"title":     "title",
	}, "created_at")

	query := fmt.Sprintf(`SELECT %s FROM programs WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		programColumns, whereStr, order, idx, idx+1)
	args = append(args, filter.Page.Limit, filter.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var items []program.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *p)
	}
	return items, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, p *program.Program) error {
	query := `UPDATE programs
    SET title=$2, description=$3, program_type=$4, images=$5, features=$6, status=$7, slug=$8, updated_at=NOW()
    WHERE id=$1
    RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Description, p.ProgramType, p.Images, p.Features, p.Status, p.Slug).
		Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return program.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return program.ErrSlugTaken
		}
		return fmt.Errorf("failed to update program: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}
	if result.RowsAffected() == 0 {
		return program.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*program.Stats, error) {
	s := &program.Stats{ByType: map[string]int64{}}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
            COUNT(*) FILTER (WHERE status = 'active'),
            COUNT(*) FILTER (WHERE status = 'inactive')
        FROM programs`).
		Scan(&s.Total, &s.Active, &s.Inactive)
	if err != nil {
		return nil, fmt.Errorf("program stats: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT program_type, COUNT(*) FROM programs GROUP BY program_type`)
	if err != nil {
		return nil, fmt.Errorf("program stats by type: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var programType string
		var count int64
		if err := rows.Scan(&programType, &count); err != nil {
			return nil, fmt.Errorf("scan program stats: %w", err)
		}
		s.ByType[programType] = count
	}
	return s, rows.Err()
}
