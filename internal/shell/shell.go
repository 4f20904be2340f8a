// Package shell implements the terminal menu surface. It owns all
// prompting, parsing and rendering; every store call receives the acting
// user's ID explicitly, taken from the loop-local session variable.
package shell

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Avinash949367/terminal-vacation-planner/internal/repository"
)

// Shell bundles the repositories and the terminal streams. Reader and
// writer are injectable so tests can script a whole session.
type Shell struct {
	users   *repository.UserRepo
	trips   *repository.TripRepo
	items   *repository.ItemRepo
	reports *repository.ReportRepo

	in        *bufio.Scanner
	out       io.Writer
	exportDir string
}

// New constructs a Shell over the given database handle and streams.
func New(db *sql.DB, exportDir string, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		users:     repository.NewUserRepo(db),
		trips:     repository.NewTripRepo(db),
		items:     repository.NewItemRepo(db),
		reports:   repository.NewReportRepo(db),
		in:        bufio.NewScanner(in),
		out:       out,
		exportDir: exportDir,
	}
}

// errQuit signals a clean exit of the menu loop (Exit choice or EOF).
var errQuit = errors.New("quit")

// Run drives the two-mode menu until the user exits or input ends. The
// authenticated identity lives in the loop variable userID (0 = anonymous)
// and is handed to every store operation.
func (s *Shell) Run(ctx context.Context) error {
	var userID int64
	for {
		var err error
		if userID == 0 {
			userID, err = s.anonymousMenu(ctx)
		} else {
			userID, err = s.userMenu(ctx, userID)
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// anonymousMenu serves the unauthenticated choices and returns the user ID
// on a successful login, 0 otherwise.
func (s *Shell) anonymousMenu(ctx context.Context) (int64, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "1. Register")
	fmt.Fprintln(s.out, "2. Login")
	fmt.Fprintln(s.out, "3. Reset Password")
	fmt.Fprintln(s.out, "4. Exit")
	choice, err := s.prompt("Choice: ")
	if err != nil {
		return 0, err
	}
	switch choice {
	case "1":
		return 0, s.register(ctx)
	case "2":
		return s.login(ctx)
	case "3":
		return 0, s.resetPassword(ctx)
	case "4":
		return 0, errQuit
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
		return 0, nil
	}
}

// userMenu serves the authenticated choices. It returns the (possibly
// cleared) user ID for the next iteration.
func (s *Shell) userMenu(ctx context.Context, userID int64) (int64, error) {
	fmt.Fprintf(s.out, "\nLogged in as user %d\n", userID)
	fmt.Fprintln(s.out, "1. Add Trip")
	fmt.Fprintln(s.out, "2. View Trips")
	fmt.Fprintln(s.out, "3. Edit Trip")
	fmt.Fprintln(s.out, "4. Delete Trip")
	fmt.Fprintln(s.out, "5. Manage Transport")
	fmt.Fprintln(s.out, "6. Manage Accommodation")
	fmt.Fprintln(s.out, "7. Manage Activities")
	fmt.Fprintln(s.out, "8. Manage Expenses")
	fmt.Fprintln(s.out, "9. Reports")
	fmt.Fprintln(s.out, "10. Export")
	fmt.Fprintln(s.out, "11. Logout")
	choice, err := s.prompt("Choice: ")
	if err != nil {
		return 0, err
	}
	switch choice {
	case "1":
		return userID, s.addTrip(ctx, userID)
	case "2":
		return userID, s.viewTrips(ctx, userID)
	case "3":
		return userID, s.editTrip(ctx, userID)
	case "4":
		return userID, s.deleteTrip(ctx, userID)
	case "5":
		return userID, s.manageItems(ctx, userID, uiTransport)
	case "6":
		return userID, s.manageItems(ctx, userID, uiAccommodation)
	case "7":
		return userID, s.manageItems(ctx, userID, uiActivity)
	case "8":
		return userID, s.manageItems(ctx, userID, uiExpense)
	case "9":
		return userID, s.reportsMenu(ctx, userID)
	case "10":
		return userID, s.exportCSV(ctx, userID)
	case "11":
		return 0, nil
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
		return userID, nil
	}
}

// ----- auth actions -----

func (s *Shell) register(ctx context.Context) error {
	username, err := s.prompt("Enter username: ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Enter password: ")
	if err != nil {
		return err
	}
	secret, err := s.prompt("Enter secret keyword for password reset: ")
	if err != nil {
		return err
	}
	if _, err := s.users.Register(ctx, username, password, secret); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			fmt.Fprintln(s.out, "Username already exists.")
			return nil
		}
		return s.fail(err)
	}
	fmt.Fprintln(s.out, "User registered successfully.")
	return nil
}

func (s *Shell) login(ctx context.Context) (int64, error) {
	username, err := s.prompt("Enter username: ")
	if err != nil {
		return 0, err
	}
	password, err := s.prompt("Enter password: ")
	if err != nil {
		return 0, err
	}
	id, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			fmt.Fprintln(s.out, "Invalid credentials.")
			return 0, nil
		}
		return 0, s.fail(err)
	}
	return id, nil
}

func (s *Shell) resetPassword(ctx context.Context) error {
	username, err := s.prompt("Enter username: ")
	if err != nil {
		return err
	}
	secret, err := s.prompt("Enter secret keyword: ")
	if err != nil {
		return err
	}
	newPass, err := s.prompt("Enter new password: ")
	if err != nil {
		return err
	}
	if err := s.users.ResetPassword(ctx, username, secret, newPass); err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			fmt.Fprintln(s.out, "Invalid username or secret keyword.")
			return nil
		}
		return s.fail(err)
	}
	fmt.Fprintln(s.out, "Password reset successfully.")
	return nil
}

// ----- prompting helpers -----

// prompt prints the label and reads one input line. Returns errQuit when
// input has ended.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return s.in.Text(), nil
}

// errInvalidInput marks malformed numeric input. It aborts the current
// action with a message; the menu loop continues.
var errInvalidInput = errors.New("invalid input")

func (s *Shell) promptDecimal(label string) (decimal.Decimal, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid number.")
		return decimal.Zero, errInvalidInput
	}
	return d, nil
}

func (s *Shell) promptID(label string) (int64, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid number.")
		return 0, errInvalidInput
	}
	return id, nil
}

// handled turns an aborted-input error into a clean return to the menu.
func handled(err error) error {
	if errors.Is(err, errInvalidInput) {
		return nil
	}
	return err
}

// fail reports a storage fault and keeps the menu running; only input
// termination ends the loop.
func (s *Shell) fail(err error) error {
	fmt.Fprintf(s.out, "Error: %v\n", err)
	return nil
}
