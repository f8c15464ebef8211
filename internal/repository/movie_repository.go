// Package repository contains the data access layer for the assistant's
// catalog: movies, their showings and guest reservations. All queries are
// parameterized and take a context so callers control their lifetime.
package repository

import (
	"context"
	"database/sql"
)

// Movie is a catalog entry. DurationMin is the running time in minutes.
type Movie struct {
	ID          int64
	Title       string
	DurationMin int
	Description string
}

// MovieRepo manages persistence for movies.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// ListTitles returns every movie title in insertion order. When the
// catalog is empty it returns an empty slice and nil error.
func (r *MovieRepo) ListTitles(ctx context.Context) ([]string, error) {
	const q = `SELECT title FROM movies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	titles := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}

// Insert adds a movie and assigns the generated ID back onto m.
func (r *MovieRepo) Insert(ctx context.Context, m *Movie) error {
	const q = `INSERT INTO movies (title, duration_min, description) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.DurationMin, m.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}
