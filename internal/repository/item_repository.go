package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemKind selects one of the four line-item tables attached to a trip.
type ItemKind string

const (
	KindTransport     ItemKind = "transport"
	KindAccommodation ItemKind = "accommodation"
	KindActivity      ItemKind = "activity"
	KindExpense       ItemKind = "expense"
)

// kindSpec maps a kind to its table and column names. The four tables are
// structurally identical apart from naming, so one repository serves all of
// them.
type kindSpec struct {
	table     string
	labelCol  string
	amountCol string
}

var kindSpecs = map[ItemKind]kindSpec{
	KindTransport:     {table: "transport", labelCol: "mode", amountCol: "cost"},
	KindAccommodation: {table: "accommodation", labelCol: "name", amountCol: "cost"},
	KindActivity:      {table: "activities", labelCol: "name", amountCol: "cost"},
	KindExpense:       {table: "expenses", labelCol: "category", amountCol: "amount"},
}

// LineItem is one transport/accommodation/activity/expense record. Label
// holds the kind-specific descriptive column (mode, name, or category).
type LineItem struct {
	ID     int64
	TripID int64
	Label  string
	Amount decimal.Decimal
}

// ItemRepo manages persistence for all four line-item kinds.
type ItemRepo struct{ db *sql.DB }

// NewItemRepo constructs an ItemRepo with the given DB handle.
func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{db: db} }

func spec(kind ItemKind) (kindSpec, error) {
	s, ok := kindSpecs[kind]
	if !ok {
		return kindSpec{}, fmt.Errorf("unknown line item kind %q", kind)
	}
	return s, nil
}

// Add attaches a line item of the given kind to the trip. The trip must
// exist and belong to userID, otherwise ErrTripNotFound is returned and
// nothing is written.
func (r *ItemRepo) Add(ctx context.Context, kind ItemKind, userID, tripID int64, label string, amount decimal.Decimal) error {
	s, err := spec(kind)
	if err != nil {
		return err
	}
	owned, err := tripOwned(ctx, r.db, tripID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrTripNotFound
	}
	// Table and column names come from kindSpecs, never from input.
	q := fmt.Sprintf("INSERT INTO %s (trip_id, %s, %s) VALUES (?, ?, ?)",
		s.table, s.labelCol, s.amountCol)
	_, err = r.db.ExecContext(ctx, q, tripID, label, amount)
	return err
}

// List returns the trip's line items of the given kind in insertion order,
// after the same ownership check as Add.
func (r *ItemRepo) List(ctx context.Context, kind ItemKind, userID, tripID int64) ([]LineItem, error) {
	s, err := spec(kind)
	if err != nil {
		return nil, err
	}
	owned, err := tripOwned(ctx, r.db, tripID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrTripNotFound
	}
	q := fmt.Sprintf("SELECT id, trip_id, %s, %s FROM %s WHERE trip_id = ? ORDER BY id",
		s.labelCol, s.amountCol, s.table)
	rows, err := r.db.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []LineItem
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.ID, &it.TripID, &it.Label, &it.Amount); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	return result, rows.Err()
}

// ListByTripID returns line items for a trip with no ownership check. It
// exists for inspecting rows orphaned by a trip deletion and for tests;
// user-facing paths must use List.
func (r *ItemRepo) ListByTripID(ctx context.Context, kind ItemKind, tripID int64) ([]LineItem, error) {
	s, err := spec(kind)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf("SELECT id, trip_id, %s, %s FROM %s WHERE trip_id = ? ORDER BY id",
		s.labelCol, s.amountCol, s.table)
	rows, err := r.db.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []LineItem
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.ID, &it.TripID, &it.Label, &it.Amount); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	return result, rows.Err()
}
