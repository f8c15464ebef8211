package repository

import (
	"context"
	"database/sql"
)

// Reservation is a guest's ticket reservation for one showing. Total is
// computed by the caller (price times quantity) before the write; a
// Reservation is only constructed once its showing is known to exist.
type Reservation struct {
	ID        int64
	Name      string
	Email     string
	ShowingID int64
	Quantity  int64
	Total     float64
}

// ReservationRepo manages persistence for reservations.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo constructs a ReservationRepo with the given DB handle.
func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// Insert adds a reservation and assigns the generated ID back onto res.
func (r *ReservationRepo) Insert(ctx context.Context, res *Reservation) error {
	const q = `INSERT INTO reservations (name, email, showing_id, quantity, total) VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, res.Name, res.Email, res.ShowingID, res.Quantity, res.Total)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = id
	return nil
}
