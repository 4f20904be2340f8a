package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Trip mirrors the 'trips' table. Dates and timestamps are kept as the TEXT
// the database stores; no ordering or format validation is applied to them.
type Trip struct {
	ID          int64
	UserID      int64
	Destination string
	StartDate   string
	EndDate     string
	Budget      decimal.Decimal
	Status      string
	Notes       string
	CreatedAt   string
	UpdatedAt   string
}

// TripUpdate carries the optional fields of an edit. A nil pointer leaves
// the corresponding column unchanged.
type TripUpdate struct {
	Destination *string
	StartDate   *string
	EndDate     *string
	Budget      *decimal.Decimal
	Notes       *string
}

// TripRepo manages persistence for trips.
type TripRepo struct{ db *sql.DB }

// NewTripRepo constructs a TripRepo with the given DB handle.
func NewTripRepo(db *sql.DB) *TripRepo { return &TripRepo{db: db} }

// now returns the timestamp stored in created_at/updated_at. Nanosecond
// precision so that even an immediate no-op edit yields a distinct value.
func now() string { return time.Now().Format(time.RFC3339Nano) }

// tripOwned reports whether the trip exists and belongs to userID. Every
// trip-scoped operation goes through this predicate before touching child
// rows.
func tripOwned(ctx context.Context, db *sql.DB, tripID, userID int64) (bool, error) {
	var owner int64
	err := db.QueryRowContext(ctx, "SELECT user_id FROM trips WHERE id = ?", tripID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return owner == userID, nil
}

// Create inserts a trip for userID with status 'planned' and both
// timestamps set to the current time, then returns the stored row.
// End-before-start dates and negative budgets are accepted as given.
func (r *TripRepo) Create(ctx context.Context, userID int64, destination, startDate, endDate string, budget decimal.Decimal, notes string) (*Trip, error) {
	ts := now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO trips (user_id, destination, start_date, end_date, budget, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, 'planned', ?, ?, ?)`,
		userID, destination, startDate, endDate, budget, notes, ts, ts)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.get(ctx, id)
}

const tripColumns = "id, user_id, destination, start_date, end_date, budget, status, notes, created_at, updated_at"

func scanTrip(row interface{ Scan(...any) error }, t *Trip) error {
	return row.Scan(&t.ID, &t.UserID, &t.Destination, &t.StartDate, &t.EndDate,
		&t.Budget, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
}

// get fetches a trip by primary key regardless of owner. Internal use only;
// callers holding a user identity must go through the owner-scoped methods.
func (r *TripRepo) get(ctx context.Context, id int64) (*Trip, error) {
	var t Trip
	err := scanTrip(r.db.QueryRowContext(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE id = ?", id), &t)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all trips owned by userID in insertion (id) order. It is
// also the row source for CSV export, which serializes the same rows in the
// same order.
func (r *TripRepo) List(ctx context.Context, userID int64) ([]Trip, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+tripColumns+" FROM trips WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Trip
	for rows.Next() {
		var t Trip
		if err := scanTrip(rows, &t); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// Update applies the non-nil fields of upd to the trip and unconditionally
// refreshes updated_at, even when every field is nil. Returns
// ErrTripNotFound (and changes nothing) when the trip is absent or owned by
// another user.
func (r *TripRepo) Update(ctx context.Context, userID, tripID int64, upd TripUpdate) error {
	owned, err := tripOwned(ctx, r.db, tripID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrTripNotFound
	}

	set := []string{"updated_at = ?"}
	args := []any{now()}
	if upd.Destination != nil {
		set = append(set, "destination = ?")
		args = append(args, *upd.Destination)
	}
	if upd.StartDate != nil {
		set = append(set, "start_date = ?")
		args = append(args, *upd.StartDate)
	}
	if upd.EndDate != nil {
		set = append(set, "end_date = ?")
		args = append(args, *upd.EndDate)
	}
	if upd.Budget != nil {
		set = append(set, "budget = ?")
		args = append(args, *upd.Budget)
	}
	if upd.Notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *upd.Notes)
	}
	args = append(args, tripID)
	_, err = r.db.ExecContext(ctx,
		"UPDATE trips SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	return err
}

// Delete removes the trip row when owned by userID; ErrTripNotFound when
// zero rows matched. Child line items are intentionally left in place (the
// planner has never cascaded; see the orphan test).
func (r *TripRepo) Delete(ctx context.Context, userID, tripID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM trips WHERE id = ? AND user_id = ?", tripID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTripNotFound
	}
	return nil
}
