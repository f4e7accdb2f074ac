package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"nonprofit-cms-backend/internal/domains/about"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) about.Repository {
	return &postgresRepository{pool: pool}
}

const aboutColumns = `id, hero, vision, mission, objectives, history, timeline, cta, version, is_active, last_updated_by, created_at, updated_at`

func scanDocument(row pgx.Row) (*about.Document, error) {
	var d about.Document
	err := row.Scan(&d.ID, &d.Hero, &d.Vision, &d.Mission, &d.Objectives,
		&d.History, &d.Timeline, &d.CTA, &d.Version, &d.IsActive,
		&d.LastUpdatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, about.ErrNotFound
		}
		return nil, fmt.Errorf("scan about content: %w", err)
	}
	return &d, nil
}

func (r *postgresRepository) Create(ctx context.Context, doc *about.Document) error {
	query := `INSERT INTO about_contents
    (id, hero, vision, mission, objectives, history, timeline, cta, version, is_active, last_updated_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		doc.ID, doc.Hero, doc.Vision, doc.Mission, doc.Objectives,
		doc.History, doc.Timeline, doc.CTA, doc.Version, doc.IsActive, doc.LastUpdatedBy).
		Scan(&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return about.ErrVersionTaken
		}
		return fmt.Errorf("failed to create about content: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*about.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM about_contents WHERE id = $1`, aboutColumns)
	return scanDocument(r.pool.QueryRow(ctx, query, id))
}

// FindActive returns the most recently created active version.
func (r *postgresRepository) FindActive(ctx context.Context) (*about.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM about_contents
    WHERE is_active ORDER BY created_at DESC LIMIT 1`, aboutColumns)
	doc, err := scanDocument(r.pool.QueryRow(ctx, query))
	if errors.Is(err, about.ErrNotFound) {
		return nil, about.ErrNoActiveDoc
	}
	return doc, err
}

func (r *postgresRepository) List(ctx context.Context, filter about.ListFilter) ([]about.Document, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM about_contents`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count about contents: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM about_contents
    ORDER BY created_at DESC LIMIT $1 OFFSET $2`, aboutColumns)
	rows, err := r.pool.Query(ctx, query, filter.Page.Limit, filter.Page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list about contents: %w", err)
	}
	defer rows.Close()

	var docs []about.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, *d)
	}
	return docs, total, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, doc *about.Document) error {
	query := `UPDATE about_contents
    SET hero=$2, vision=$3, mission=$4, objectives=$5, history=$6, timeline=$7,
        cta=$8, version=$9, last_updated_by=$10, updated_at=NOW()
    WHERE id=$1
    RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		doc.ID, doc.Hero, doc.Vision, doc.Mission, doc.Objectives,
		doc.History, doc.Timeline, doc.CTA, doc.Version, doc.LastUpdatedBy).
		Scan(&doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return about.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return about.ErrVersionTaken
		}
		return fmt.Errorf("failed to update about content: %w", err)
	}
	return nil
}

// Activate runs deactivate-all-then-activate in one transaction. Without the
// transaction two concurrent activations could both survive the first step
// and leave two versions active.
func (r *postgresRepository) Activate(ctx context.Context, id uuid.UUID) (*about.Document, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin activate: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE about_contents SET is_active = FALSE, updated_at = NOW()
        WHERE is_active AND id <> $1`, id); err != nil {
		return nil, fmt.Errorf("deactivate about contents: %w", err)
	}

	query := fmt.Sprintf(`UPDATE about_contents
    SET is_active = TRUE, updated_at = NOW()
    WHERE id = $1
    RETURNING %s`, aboutColumns)
	doc, err := scanDocument(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit activate: %w", err)
	}
	return doc, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM about_contents WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete about content: %w", err)
	}
	if result.RowsAffected() == 0 {
		return about.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*about.Stats, error) {
	var s about.Stats
	var latest *string
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
            COUNT(*) FILTER (WHERE is_active),
            (SELECT version FROM about_contents ORDER BY created_at DESC LIMIT 1),
            MAX(updated_at)
        FROM about_contents`).
		Scan(&s.Total, &s.Active, &latest, &s.LastUpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("about stats: %w", err)
	}
	if latest != nil {
		s.LatestVersion = *latest
	}
	return &s, nil
}
