package repository

import (
	"context"
	"fmt"
	"strconv"

	"listing-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the listings table. Positions are stored as PostGIS geography points.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL CHECK (price >= 0),
		images TEXT[] NOT NULL DEFAULT '{}',
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS listings_geom_idx ON listings USING GIST (geom);
`

// Repository is the PostgreSQL listing catalog.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the catalog tables if they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ListListings returns the whole catalog in its natural order (ascending id).
func (r *Repository) ListListings(ctx context.Context) ([]models.ListingItem, error) {
	sql := `
		SELECT
			id,
			title,
			content,
			price,
			images,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM listings
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute listing query: %w", err)
	}
	defer rows.Close()

	items := []models.ListingItem{}
	for rows.Next() {
		var item models.ListingItem
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Content,
			&item.Price,
			&item.Images,
			&item.Coordinate.Latitude,
			&item.Coordinate.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan listing: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return items, nil
}

// ImportListings bulk loads items with COPY. Item ids are ignored and assigned by the database.
func (r *Repository) ImportListings(ctx context.Context, items []models.ListingItem) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"listings"},
		[]string{"title", "content", "price", "images", "geom"},
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			it := items[i]
			images := it.Images
			if images == nil {
				images = []string{}
			}
			return []any{it.Title, it.Content, it.Price, images, pointEWKT(it.Coordinate)}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy listings: %w", err)
	}
	return n, nil
}

// pointEWKT renders c as a PostGIS point (lon lat) without losing precision.
func pointEWKT(c models.Coordinate) string {
	return "SRID=4326;POINT(" +
		strconv.FormatFloat(c.Longitude, 'f', -1, 64) + " " +
		strconv.FormatFloat(c.Latitude, 'f', -1, 64) + ")"
}

// CountListings returns the number of catalog rows.
func (r *Repository) CountListings(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM listings").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count listings: %w", err)
	}
	return count, nil
}
