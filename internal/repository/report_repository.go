package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

// BudgetRow is one trip's budget-vs-spent line. Spent is the sum of all
// four line-item kinds; Difference is Budget minus Spent and goes negative
// when a trip is over budget.
type BudgetRow struct {
	Destination string
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	Difference  decimal.Decimal
}

// TripSpend is one entry of the most-expensive-trips ranking.
type TripSpend struct {
	Destination string
	Total       decimal.Decimal
}

// DestinationCount is one entry of the favorite-destinations report.
type DestinationCount struct {
	Destination string
	Count       int
}

// ReportRepo runs the aggregate queries. All reports are scoped to one
// user's trips.
type ReportRepo struct{ db *sql.DB }

// NewReportRepo constructs a ReportRepo with the given DB handle.
func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

// spentExpr computes a trip's total spend as the sum of the four per-table
// sums, each coalesced to 0 when the trip has no rows of that kind. Kept as
// correlated subqueries: joining all four tables at once would multiply
// rows before summing.
const spentExpr = `COALESCE((SELECT SUM(cost) FROM transport WHERE trip_id = t.id), 0)
	+ COALESCE((SELECT SUM(cost) FROM accommodation WHERE trip_id = t.id), 0)
	+ COALESCE((SELECT SUM(cost) FROM activities WHERE trip_id = t.id), 0)
	+ COALESCE((SELECT SUM(amount) FROM expenses WHERE trip_id = t.id), 0)`

// BudgetVsSpent returns destination, budget, spent and difference for every
// trip owned by userID, in trip id order. A trip with no line items reports
// spent 0 and difference equal to its budget.
func (r *ReportRepo) BudgetVsSpent(ctx context.Context, userID int64) ([]BudgetRow, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT t.destination, t.budget, "+spentExpr+" FROM trips t WHERE t.user_id = ? ORDER BY t.id",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []BudgetRow
	for rows.Next() {
		var b BudgetRow
		if err := rows.Scan(&b.Destination, &b.Budget, &b.Spent); err != nil {
			return nil, err
		}
		b.Difference = b.Budget.Sub(b.Spent)
		result = append(result, b)
	}
	return result, rows.Err()
}

// TopExpensiveTrips ranks the user's trips by total spend descending and
// returns at most limit rows. Ties fall in whatever order the engine
// yields; no secondary sort key is defined.
func (r *ReportRepo) TopExpensiveTrips(ctx context.Context, userID int64, limit int) ([]TripSpend, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT t.destination, "+spentExpr+" AS total FROM trips t WHERE t.user_id = ? ORDER BY total DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []TripSpend
	for rows.Next() {
		var ts TripSpend
		if err := rows.Scan(&ts.Destination, &ts.Total); err != nil {
			return nil, err
		}
		result = append(result, ts)
	}
	return result, rows.Err()
}

// FavoriteDestinations counts the user's trips per destination string
// (exact, case-sensitive match) sorted by count descending.
func (r *ReportRepo) FavoriteDestinations(ctx context.Context, userID int64) ([]DestinationCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT destination, COUNT(*) AS cnt FROM trips WHERE user_id = ? GROUP BY destination ORDER BY cnt DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []DestinationCount
	for rows.Next() {
		var dc DestinationCount
		if err := rows.Scan(&dc.Destination, &dc.Count); err != nil {
			return nil, err
		}
		result = append(result, dc)
	}
	return result, rows.Err()
}
