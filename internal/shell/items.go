package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/Avinash949367/terminal-vacation-planner/internal/repository"
)

// kindUI holds the per-kind wording of the line-item submenus. The flow is
// identical for all four kinds; only the nouns differ.
type kindUI struct {
	kind         repository.ItemKind
	noun         string // menu noun, e.g. "Transport", "Activities"
	singular     string // confirmation noun, e.g. "Transport", "Activity"
	labelPrompt  string
	amountPrompt string
	labelField   string // rendered field name, e.g. "Mode"
	amountField  string // rendered field name, e.g. "Cost"
	emptyMsg     string
}

var (
	uiTransport = kindUI{
		kind:         repository.KindTransport,
		noun:         "Transport",
		singular:     "Transport",
		labelPrompt:  "Transport mode: ",
		amountPrompt: "Cost: ",
		labelField:   "Mode",
		amountField:  "Cost",
		emptyMsg:     "No transport found.",
	}
	uiAccommodation = kindUI{
		kind:         repository.KindAccommodation,
		noun:         "Accommodation",
		singular:     "Accommodation",
		labelPrompt:  "Accommodation name: ",
		amountPrompt: "Cost: ",
		labelField:   "Name",
		amountField:  "Cost",
		emptyMsg:     "No accommodation found.",
	}
	uiActivity = kindUI{
		kind:         repository.KindActivity,
		noun:         "Activities",
		singular:     "Activity",
		labelPrompt:  "Activity name: ",
		amountPrompt: "Cost: ",
		labelField:   "Name",
		amountField:  "Cost",
		emptyMsg:     "No activities found.",
	}
	uiExpense = kindUI{
		kind:         repository.KindExpense,
		noun:         "Expenses",
		singular:     "Expense",
		labelPrompt:  "Expense category: ",
		amountPrompt: "Amount: ",
		labelField:   "Category",
		amountField:  "Amount",
		emptyMsg:     "No expenses found.",
	}
)

// manageItems serves the Add/View submenu for one line-item kind.
func (s *Shell) manageItems(ctx context.Context, userID int64, ui kindUI) error {
	fmt.Fprintf(s.out, "a. Add %s\n", ui.singular)
	fmt.Fprintf(s.out, "b. View %s\n", ui.noun)
	sub, err := s.prompt("Subchoice: ")
	if err != nil {
		return err
	}
	switch sub {
	case "a":
		return s.addItem(ctx, userID, ui)
	case "b":
		return s.viewItems(ctx, userID, ui)
	default:
		fmt.Fprintln(s.out, "Invalid.")
		return nil
	}
}

func (s *Shell) addItem(ctx context.Context, userID int64, ui kindUI) error {
	tripID, err := s.promptID("Trip ID: ")
	if err != nil {
		return handled(err)
	}
	label, err := s.prompt(ui.labelPrompt)
	if err != nil {
		return err
	}
	amount, err := s.promptDecimal(ui.amountPrompt)
	if err != nil {
		return handled(err)
	}
	if err := s.items.Add(ctx, ui.kind, userID, tripID, label, amount); err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			fmt.Fprintln(s.out, "Invalid trip.")
			return nil
		}
		return s.fail(err)
	}
	fmt.Fprintf(s.out, "%s added.\n", ui.singular)
	return nil
}

func (s *Shell) viewItems(ctx context.Context, userID int64, ui kindUI) error {
	tripID, err := s.promptID("Trip ID: ")
	if err != nil {
		return handled(err)
	}
	items, err := s.items.List(ctx, ui.kind, userID, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			fmt.Fprintln(s.out, "Invalid trip.")
			return nil
		}
		return s.fail(err)
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, ui.emptyMsg)
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(s.out, "%s: %s, %s: %s\n", ui.labelField, it.Label, ui.amountField, it.Amount)
	}
	return nil
}
