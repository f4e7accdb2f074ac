package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nonprofit-cms-backend/internal/domains/gallery"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) gallery.Repository {
	return &postgresRepository{pool: pool}
}

const itemColumns = `id, title, description, category, event, location, photographer, images, tags, likes, views, created_at, updated_at`

func scanItem(row pgx.Row) (*gallery.Item, error) {
	var it gallery.Item
	err := row.Scan(&it.ID, &it.Title, &it.Description, &it.Category, &it.Event,
		&it.Location, &it.Photographer, &it.Images, &it.Tags, &it.Likes, &it.Views,
		&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, gallery.ErrNotFound
		}
		return nil, fmt.Errorf("scan gallery item: %w", err)
	}
	return &it, nil
}

func (r *postgresRepository) Create(ctx context.Context, item *gallery.Item) error {
	query := `INSERT INTO gallery_items (id, title, description, category, event, location, photographer, images, tags)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING likes, views, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		item.ID, item.Title, item.Description, item.Category, item.Event,
		item.Location, item.Photographer, item.Images, item.Tags).
		Scan(&item.Likes, &item.Views, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*gallery.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM gallery_items WHERE id = $1`, itemColumns)
	return scanItem(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindAndIncrementViews(ctx context.Context, id uuid.UUID) (*gallery.Item, error) {
	query := fmt.Sprintf(`UPDATE gallery_items SET views = views + 1 WHERE id = $1 RETURNING %s`, itemColumns)
	return scanItem(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (*gallery.Item, error) {
	query := fmt.Sprintf(`UPDATE gallery_items SET likes = likes + 1 WHERE id = $1 RETURNING %s`, itemColumns)
	return scanItem(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) List(ctx context.Context, filter gallery.ListFilter) ([]gallery.Item, int64, error) {
	where := []string{"TRUE"}
	args := []interface{}{}
	idx := 1

	if filter.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", idx))
		args = append(args, filter.Category)
		idx++
	}
	if len(filter.Tags) > 0 {
		where = append(where, fmt.Sprintf("tags && $%d", idx))
		args = append(args, filter.Tags)
		idx++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR array_to_string(tags, ' ') ILIKE $%d)",
			idx, idx, idx))
		args = append(args, "%"+filter.Search+"%")
		idx++
	}

	whereStr := strings.Join(where, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM gallery_items WHERE %s`, whereStr), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count gallery items: %w", err)
	}

	order := filter.Page.OrderClause(map[string]string{
		"createdAt": "created_at",
		"title":     "title",
		"likes":     "likes",
		"views":     "views",
	}, "created_at")

	query := fmt.Sprintf(`SELECT %s FROM gallery_items WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		itemColumns, whereStr, order, idx, idx+1)
	args = append(args, filter.Page.Limit, filter.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list gallery items: %w", err)
	}
	defer rows.Close()

	var items []gallery.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *it)
	}
	return items, total, rows.Err()
}

// Update leaves the counters alone: likes/views only move through their
// dedicated relative-write methods.
func (r *postgresRepository) Update(ctx context.Context, item *gallery.Item) error {
	query := `UPDATE gallery_items
    SET title=$2, description=$3, category=$4, event=$5, location=$6, photographer=$7, images=$8, tags=$9, updated_at=NOW()
    WHERE id=$1
    RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		item.ID, item.Title, item.Description, item.Category, item.Event,
		item.Location, item.Photographer, item.Images, item.Tags).
		Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return gallery.ErrNotFound
		}
		return fmt.Errorf("failed to update gallery item: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM gallery_items WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return gallery.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*gallery.Stats, error) {
	s := &gallery.Stats{ByCategory: map[string]int64{}}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(views), 0), COALESCE(SUM(likes), 0) FROM gallery_items`).
		Scan(&s.Total, &s.TotalViews, &s.TotalLikes)
	if err != nil {
		return nil, fmt.Errorf("gallery stats: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT category, COUNT(*) FROM gallery_items GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("gallery stats by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan gallery stats: %w", err)
		}
		s.ByCategory[category] = count
	}
	return s, rows.Err()
}
