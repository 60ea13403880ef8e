package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SQLiteStore persists the catalog in the site database. Catalog order is kept
// in the position column.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Migrate creates the projects table if needed.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	const q = `
	CREATE TABLE IF NOT EXISTS projects (
		slug TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		long_description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		completed TEXT NOT NULL DEFAULT '',
		technologies TEXT NOT NULL DEFAULT '[]',
		featured INTEGER NOT NULL DEFAULT 0,
		website_url TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		gallery TEXT NOT NULL DEFAULT '[]',
		testimonial TEXT
	)`
	if _, err := s.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	return nil
}

// Load returns every project in catalog order.
func (s *SQLiteStore) Load(ctx context.Context) ([]Project, error) {
	const q = `
		SELECT slug, title, description, long_description, category, completed,
		       technologies, featured, website_url, image, gallery, testimonial
		FROM projects
		ORDER BY position ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var (
			p                     Project
			completed             string
			techJSON, galleryJSON string
			testimonial           sql.NullString
		)
		if err := rows.Scan(&p.Slug, &p.Title, &p.Description, &p.LongDescription, &p.Category,
			&completed, &techJSON, &p.Featured, &p.WebsiteURL, &p.Image, &galleryJSON, &testimonial); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}

		if completed != "" {
			t, err := time.Parse(time.DateOnly, completed)
			if err != nil {
				return nil, fmt.Errorf("project %s: completed date: %w", p.Slug, err)
			}
			p.Completed = t
		}
		if err := json.Unmarshal([]byte(techJSON), &p.Technologies); err != nil {
			return nil, fmt.Errorf("project %s: technologies: %w", p.Slug, err)
		}
		if err := json.Unmarshal([]byte(galleryJSON), &p.Gallery); err != nil {
			return nil, fmt.Errorf("project %s: gallery: %w", p.Slug, err)
		}
		if testimonial.Valid && testimonial.String != "" {
			var t Testimonial
			if err := json.Unmarshal([]byte(testimonial.String), &t); err != nil {
				return nil, fmt.Errorf("project %s: testimonial: %w", p.Slug, err)
			}
			p.Testimonial = &t
		}

		out = append(out, p)
	}
	return out, rows.Err()
}

// Replace swaps the whole catalog inside one transaction.
func (s *SQLiteStore) Replace(ctx context.Context, list []Project) error {
	if err := ValidateCatalog(list); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clear projects: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO projects (slug, position, title, description, long_description, category,
			completed, technologies, featured, website_url, image, gallery, testimonial)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range list {
		techJSON, err := json.Marshal(nonNil(p.Technologies))
		if err != nil {
			return err
		}
		galleryJSON, err := json.Marshal(nonNil(p.Gallery))
		if err != nil {
			return err
		}

		var testimonial sql.NullString
		if p.Testimonial != nil {
			raw, err := json.Marshal(p.Testimonial)
			if err != nil {
				return err
			}
			testimonial = sql.NullString{String: string(raw), Valid: true}
		}

		completed := ""
		if !p.Completed.IsZero() {
			completed = p.Completed.Format(time.DateOnly)
		}

		if _, err := stmt.ExecContext(ctx, p.Slug, i, p.Title, p.Description, p.LongDescription, p.Category,
			completed, string(techJSON), p.Featured, p.WebsiteURL, p.Image, string(galleryJSON), testimonial); err != nil {
			return fmt.Errorf("insert project %s: %w", p.Slug, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored projects.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	return n, err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
