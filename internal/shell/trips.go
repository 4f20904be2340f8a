package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Avinash949367/terminal-vacation-planner/internal/repository"
)

func (s *Shell) addTrip(ctx context.Context, userID int64) error {
	dest, err := s.prompt("Destination: ")
	if err != nil {
		return err
	}
	start, err := s.prompt("Start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := s.prompt("End date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	budget, err := s.promptDecimal("Budget: ")
	if err != nil {
		return handled(err)
	}
	notes, err := s.prompt("Notes: ")
	if err != nil {
		return err
	}
	if _, err := s.trips.Create(ctx, userID, dest, start, end, budget, notes); err != nil {
		return s.fail(err)
	}
	fmt.Fprintln(s.out, "Trip added.")
	return nil
}

func (s *Shell) viewTrips(ctx context.Context, userID int64) error {
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return s.fail(err)
	}
	if len(trips) == 0 {
		fmt.Fprintln(s.out, "No trips found.")
		return nil
	}
	for _, t := range trips {
		fmt.Fprintf(s.out, "ID: %d, Dest: %s, Dates: %s to %s, Budget: %s, Status: %s\n",
			t.ID, t.Destination, t.StartDate, t.EndDate, t.Budget, t.Status)
	}
	return nil
}

func (s *Shell) editTrip(ctx context.Context, userID int64) error {
	tripID, err := s.promptID("Trip ID to edit: ")
	if err != nil {
		return handled(err)
	}
	var upd repository.TripUpdate
	if v, err := s.prompt("New destination (leave blank to keep): "); err != nil {
		return err
	} else if v != "" {
		upd.Destination = &v
	}
	if v, err := s.prompt("New start date: "); err != nil {
		return err
	} else if v != "" {
		upd.StartDate = &v
	}
	if v, err := s.prompt("New end date: "); err != nil {
		return err
	} else if v != "" {
		upd.EndDate = &v
	}
	if v, err := s.prompt("New budget: "); err != nil {
		return err
	} else if v != "" {
		b, perr := decimal.NewFromString(v)
		if perr != nil {
			fmt.Fprintln(s.out, "Invalid number.")
			return nil
		}
		upd.Budget = &b
	}
	if v, err := s.prompt("New notes: "); err != nil {
		return err
	} else if v != "" {
		upd.Notes = &v
	}
	if err := s.trips.Update(ctx, userID, tripID, upd); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			fmt.Fprintln(s.out, "Trip not found or not yours.")
			return nil
		}
		return s.fail(err)
	}
	fmt.Fprintln(s.out, "Trip updated.")
	return nil
}

func (s *Shell) deleteTrip(ctx context.Context, userID int64) error {
	tripID, err := s.promptID("Trip ID to delete: ")
	if err != nil {
		return handled(err)
	}
	if err := s.trips.Delete(ctx, userID, tripID); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			fmt.Fprintln(s.out, "Trip not found.")
			return nil
		}
		return s.fail(err)
	}
	fmt.Fprintln(s.out, "Trip deleted.")
	return nil
}
