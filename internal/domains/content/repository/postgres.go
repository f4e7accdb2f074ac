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

	"nonprofit-cms-backend/internal/domains/content"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) content.Repository {
	return &postgresRepository{pool: pool}
}

const contentColumns = `c.id, c.topic, c.subtopics, c.images, c.creator_id, c.status, c.slug, c.tags, c.views, c.created_at, c.updated_at, u.username`

func scanContent(row pgx.Row) (*content.Content, error) {
	var c content.Content
	var creatorName *string
	err := row.Scan(&c.ID, &c.Topic, &c.Subtopics, &c.Images, &c.CreatorID,
		&c.Status, &c.Slug, &c.Tags, &c.Views, &c.CreatedAt, &c.UpdatedAt, &creatorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("scan content: %w", err)
	}
	if c.CreatorID != nil && creatorName != nil {
		c.Creator = &content.Creator{ID: *c.CreatorID, Username: *creatorName}
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *content.Content) error {
	query := `INSERT INTO contents (id, topic, subtopics, images, creator_id, status, slug, tags)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING views, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		c.ID, c.Topic, c.Subtopics, c.Images, c.CreatorID, c.Status, c.Slug, c.Tags).
		Scan(&c.Views, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return content.ErrSlugTaken
		}
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

// FindByIDOrSlug compares the raw parameter against both keys; casting the
// id to text sidesteps uuid parse errors for slug lookups.
func (r *postgresRepository) FindByIDOrSlug(ctx context.Context, idOrSlug string) (*content.Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM contents c
    LEFT JOIN users u ON u.id = c.creator_id
    WHERE c.id::text = $1 OR c.slug = $1`, contentColumns)
	return scanContent(r.pool.QueryRow(ctx, query, idOrSlug))
}

func (r *postgresRepository) FindAndIncrementViews(ctx context.Context, idOrSlug string) (*content.Content, error) {
	query := `WITH bumped AS (
        UPDATE contents SET views = views + 1
        WHERE id::text = $1 OR slug = $1
        RETURNING *
    )
    SELECT c.id, c.topic, c.subtopics, c.images, c.creator_id, c.status, c.slug, c.tags, c.views, c.created_at, c.updated_at, u.username
    FROM bumped c LEFT JOIN users u ON u.id = c.creator_id`
	return scanContent(r.pool.QueryRow(ctx, query, idOrSlug))
}

func (r *postgresRepository) List(ctx context.Context, filter content.ListFilter) ([]content.Content, int64, error) {
	where := []string{"TRUE"}
	args := []interface{}{}
	idx := 1

	if filter.Status != "" {
		where = append(where, fmt.Sprintf("c.status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if len(filter.Tags) > 0 {
		// any-of: the document matches when tag sets intersect
		where = append(where, fmt.Sprintf("c.tags && $%d", idx))
		args = append(args, filter.Tags)
		idx++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(c.topic ILIKE $%d OR c.subtopics::text ILIKE $%d OR array_to_string(c.tags, ' ') ILIKE $%d)",
			idx, idx, idx))
		args = append(args, "%"+filter.Search+"%")
		idx++
	}

	whereStr := strings.Join(where, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM contents c WHERE %s`, whereStr)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contents: %w", err)
	}

	order := filter.Page.OrderClause(map[string]string{
		"createdAt": "c.created_at",
		"updatedAt": "c.updated_at",
		"topic":     "c.topic",
		"views":     "c.views",
	}, "c.created_at")

	query := fmt.Sprintf(`SELECT %s FROM contents c
    LEFT JOIN users u ON u.id = c.creator_id
    WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`, contentColumns, whereStr, order, idx, idx+1)
	args = append(args, filter.Page.Limit, filter.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	var items []content.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *c)
	}
	return items, total, rows.Err()
}

// Update never touches the slug: it is immutable after creation.
func (r *postgresRepository) Update(ctx context.Context, c *content.Content) error {
	query := `UPDATE contents
    SET topic=$2, subtopics=$3, images=$4, status=$5, tags=$6, updated_at=NOW()
    WHERE id=$1
    RETURNING updated_at`
	err := r.pool.QueryRow(ctx, query,
		c.ID, c.Topic, c.Subtopics, c.Images, c.Status, c.Tags).
		Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return content.ErrNotFound
		}
		return fmt.Errorf("failed to update content: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM contents WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if result.RowsAffected() == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*content.Stats, error) {
	query := `SELECT COUNT(*),
        COUNT(*) FILTER (WHERE status = 'draft'),
        COUNT(*) FILTER (WHERE status = 'published'),
        COUNT(*) FILTER (WHERE status = 'archived'),
        COALESCE(SUM(views), 0)
    FROM contents`
	var s content.Stats
	err := r.pool.QueryRow(ctx, query).Scan(&s.Total, &s.Draft, &s.Published, &s.Archived, &s.TotalViews)
	if err != nil {
		return nil, fmt.Errorf("content stats: %w", err)
	}
	return &s, nil
}
