package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Showing is a scheduled screening of a movie at a given time, room and
// price. StartsAt is kept as entered ("20:00"); the assistant echoes it
// back verbatim in replies.
type Showing struct {
	ID       int64
	MovieID  int64
	StartsAt string
	Room     string
	Price    float64
}

// ScheduleEntry pairs a movie title with one of its showing times.
type ScheduleEntry struct {
	Title    string
	StartsAt string
}

// PriceEntry pairs a movie title with a showing price.
type PriceEntry struct {
	Title string
	Price float64
}

// ShowingInfo is a showing joined with its movie title, as presented to
// guests when listing or confirming reservations.
type ShowingInfo struct {
	ID       int64
	Title    string
	StartsAt string
	Price    float64
}

// ErrShowingNotFound indicates that a showing was not located in the DB.
var ErrShowingNotFound = errors.New("showing not found")

// ShowingRepo manages persistence for showings.
type ShowingRepo struct {
	db *sql.DB
}

// NewShowingRepo constructs a ShowingRepo with the given DB handle.
func NewShowingRepo(db *sql.DB) *ShowingRepo {
	return &ShowingRepo{db: db}
}

// ListSchedule returns every showing's title and time, ordered by time.
func (r *ShowingRepo) ListSchedule(ctx context.Context) ([]ScheduleEntry, error) {
	const q = `SELECT m.title, s.starts_at
	           FROM movies m
	           JOIN showings s ON m.id = s.movie_id
	           ORDER BY s.starts_at`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]ScheduleEntry, 0)
	for rows.Next() {
		var e ScheduleEntry
		if err := rows.Scan(&e.Title, &e.StartsAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListPrices returns every showing's title and price.
func (r *ShowingRepo) ListPrices(ctx context.Context) ([]PriceEntry, error) {
	const q = `SELECT m.title, s.price
	           FROM movies m
	           JOIN showings s ON m.id = s.movie_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]PriceEntry, 0)
	for rows.Next() {
		var e PriceEntry
		if err := rows.Scan(&e.Title, &e.Price); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListWithMovies returns every showing with its id, movie title, time and
// price, ordered by id. Used to present reservation choices.
func (r *ShowingRepo) ListWithMovies(ctx context.Context) ([]ShowingInfo, error) {
	const q = `SELECT s.id, m.title, s.starts_at, s.price
	           FROM movies m
	           JOIN showings s ON m.id = s.movie_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	infos := make([]ShowingInfo, 0)
	for rows.Next() {
		var s ShowingInfo
		if err := rows.Scan(&s.ID, &s.Title, &s.StartsAt, &s.Price); err != nil {
			return nil, err
		}
		infos = append(infos, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

// FindByID retrieves one showing with its movie title. It returns
// ErrShowingNotFound when there is no matching row.
func (r *ShowingRepo) FindByID(ctx context.Context, id int64) (*ShowingInfo, error) {
	const q = `SELECT m.title, s.starts_at, s.price
	           FROM movies m
	           JOIN showings s ON m.id = s.movie_id
	           WHERE s.id = ?`
	info := ShowingInfo{ID: id}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&info.Title, &info.StartsAt, &info.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowingNotFound
		}
		return nil, err
	}
	return &info, nil
}

// FirstByTitle retrieves the earliest showing of the movie with the given
// title. It returns ErrShowingNotFound when the movie has no showings.
func (r *ShowingRepo) FirstByTitle(ctx context.Context, title string) (*ShowingInfo, error) {
	const q = `SELECT s.id, m.title, s.starts_at, s.price
	           FROM movies m
	           JOIN showings s ON m.id = s.movie_id
	           WHERE m.title = ?
	           ORDER BY s.starts_at
	           LIMIT 1`
	var info ShowingInfo
	err := r.db.QueryRowContext(ctx, q, title).Scan(&info.ID, &info.Title, &info.StartsAt, &info.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowingNotFound
		}
		return nil, err
	}
	return &info, nil
}

// Insert adds a showing and assigns the generated ID back onto s.
func (r *ShowingRepo) Insert(ctx context.Context, s *Showing) error {
	const q = `INSERT INTO showings (movie_id, starts_at, room, price) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.MovieID, s.StartsAt, s.Room, s.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}
