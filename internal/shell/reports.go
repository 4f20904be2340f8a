package shell

import (
	"context"
	"fmt"
)

// topTripsLimit caps the most-expensive-trips report.
const topTripsLimit = 3

// reportsMenu serves the three aggregate reports.
func (s *Shell) reportsMenu(ctx context.Context, userID int64) error {
	fmt.Fprintln(s.out, "a. Budget vs Spent")
	fmt.Fprintln(s.out, "b. Top Expensive")
	fmt.Fprintln(s.out, "c. Favorite Destinations")
	sub, err := s.prompt("Subchoice: ")
	if err != nil {
		return err
	}
	switch sub {
	case "a":
		return s.budgetVsSpent(ctx, userID)
	case "b":
		return s.topExpensive(ctx, userID)
	case "c":
		return s.favoriteDestinations(ctx, userID)
	default:
		fmt.Fprintln(s.out, "Invalid.")
		return nil
	}
}

func (s *Shell) budgetVsSpent(ctx context.Context, userID int64) error {
	rows, err := s.reports.BudgetVsSpent(ctx, userID)
	if err != nil {
		return s.fail(err)
	}
	for _, r := range rows {
		fmt.Fprintf(s.out, "Trip %s: Budget %s, Spent %s, Difference %s\n",
			r.Destination, r.Budget, r.Spent, r.Difference)
	}
	return nil
}

func (s *Shell) topExpensive(ctx context.Context, userID int64) error {
	rows, err := s.reports.TopExpensiveTrips(ctx, userID, topTripsLimit)
	if err != nil {
		return s.fail(err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "No trips found.")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(s.out, "Dest: %s, Total: %s\n", r.Destination, r.Total)
	}
	return nil
}

func (s *Shell) favoriteDestinations(ctx context.Context, userID int64) error {
	rows, err := s.reports.FavoriteDestinations(ctx, userID)
	if err != nil {
		return s.fail(err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "No trips found.")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(s.out, "%s: %d times\n", r.Destination, r.Count)
	}
	return nil
}
