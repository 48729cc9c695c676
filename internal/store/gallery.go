package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ErrQuotaExceeded is returned when saving an image would exceed the
// gallery's storage cap.
var ErrQuotaExceeded = errors.New("store: gallery storage is full")

const galleryTable = "gallery_images"

// GalleryImage is a saved drawing or illustration.
type GalleryImage struct {
	ID        int64
	Name      string
	Size      int64
	CreatedAt time.Time
	Data      []byte // only populated by Get
}

// Gallery stores images up to a total byte cap.
type Gallery struct {
	drv      *entsql.Driver
	maxBytes int64
}

// Used returns the total bytes stored.
func (g *Gallery) Used(ctx context.Context) (int64, error) {
	rows := &entsql.Rows{}
	if err := g.drv.Query(ctx, "SELECT COALESCE(SUM(size), 0) FROM gallery_images", []any{}, rows); err != nil {
		return 0, fmt.Errorf("gallery usage: %w", err)
	}
	defer rows.Close()
	var used int64
	if rows.Next() {
		if err := rows.Scan(&used); err != nil {
			return 0, err
		}
	}
	return used, rows.Err()
}

// Save stores data under name and returns the new image id.
func (g *Gallery) Save(ctx context.Context, name string, data []byte) (int64, error) {
	if g.maxBytes > 0 {
		used, err := g.Used(ctx)
		if err != nil {
			return 0, err
		}
		if used+int64(len(data)) > g.maxBytes {
			return 0, ErrQuotaExceeded
		}
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(galleryTable).
		Columns("name", "data", "size", "created_at").
		Values(name, data, len(data), time.Now().UTC().Format(time.RFC3339Nano)).
		Query()
	var res sql.Result
	if err := g.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("gallery save: %w", err)
	}
	return res.LastInsertId()
}

// List returns image metadata, newest first.
func (g *Gallery) List(ctx context.Context) ([]GalleryImage, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "name", "size", "created_at").
		From(entsql.Table(galleryTable)).
		OrderBy(entsql.Desc("id")).
		Query()
	rows := &entsql.Rows{}
	if err := g.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("gallery list: %w", err)
	}
	defer rows.Close()

	var images []GalleryImage
	for rows.Next() {
		var (
			img GalleryImage
			ts  string
		)
		if err := rows.Scan(&img.ID, &img.Name, &img.Size, &ts); err != nil {
			return nil, err
		}
		img.CreatedAt, _ = time.Parse(time.RFC3339Nano, ts)
		images = append(images, img)
	}
	return images, rows.Err()
}

// Get returns one image with its bytes, or ErrNotFound.
func (g *Gallery) Get(ctx context.Context, id int64) (*GalleryImage, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "name", "size", "created_at", "data").
		From(entsql.Table(galleryTable)).
		Where(entsql.EQ("id", id)).
		Query()
	rows := &entsql.Rows{}
	if err := g.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("gallery get: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	var (
		img GalleryImage
		ts  string
	)
	if err := rows.Scan(&img.ID, &img.Name, &img.Size, &ts, &img.Data); err != nil {
		return nil, err
	}
	img.CreatedAt, _ = time.Parse(time.RFC3339Nano, ts)
	return &img, nil
}

// Delete removes an image.
func (g *Gallery) Delete(ctx context.Context, id int64) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(galleryTable).
		Where(entsql.EQ("id", id)).
		Query()
	if err := g.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("gallery delete: %w", err)
	}
	return nil
}
