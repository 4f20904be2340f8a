package shell

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// exportHeader is the fixed header row of a trips export, matching the
// trips table column order.
var exportHeader = []string{
	"ID", "UserID", "Destination", "Start", "End",
	"Budget", "Status", "Notes", "Created", "Updated",
}

// exportCSV writes all of the user's trips to <name>.csv inside the
// configured export directory, header row first, rows in the same order
// View Trips shows them.
func (s *Shell) exportCSV(ctx context.Context, userID int64) error {
	base, err := s.prompt("Export filename (without .csv): ")
	if err != nil {
		return err
	}
	trips, err := s.trips.List(ctx, userID)
	if err != nil {
		return s.fail(err)
	}

	path := filepath.Join(s.exportDir, base+".csv")
	f, err := os.Create(path)
	if err != nil {
		return s.fail(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return s.fail(err)
	}
	for _, t := range trips {
		rec := []string{
			strconv.FormatInt(t.ID, 10),
			strconv.FormatInt(t.UserID, 10),
			t.Destination,
			t.StartDate,
			t.EndDate,
			t.Budget.String(),
			t.Status,
			t.Notes,
			t.CreatedAt,
			t.UpdatedAt,
		}
		if err := w.Write(rec); err != nil {
			return s.fail(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return s.fail(err)
	}
	fmt.Fprintf(s.out, "Exported to %s\n", base+".csv")
	return nil
}
