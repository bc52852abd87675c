package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/money-tracker/internal/app"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.newFlagSet("list")
	asJSON := fs.Bool("json", false, "print raw JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	expenses, err := a.adapter.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("list expenses: %w", err)
	}

	if *asJSON {
		if expenses == nil {
			expenses = []models.Expense{}
		}
		return a.printJSON(expenses)
	}

	if len(expenses) == 0 {
		fmt.Fprintln(a.out, app.MsgNoExpenses)
		return nil
	}

	return a.printExpenseTable(expenses)
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := a.newFlagSet("get")
	asJSON := fs.Bool("json", false, "print raw JSON")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	expense, err := a.adapter.GetExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("get expense: %w", err)
	}

	if *asJSON {
		return a.printJSON(expense)
	}
	return a.printExpenseTable([]models.Expense{expense})
}

func (a *App) add(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add")
	description := fs.String("description", "", "what the money was spent on")
	amount := fs.String("amount", "", "amount, e.g. 12.50")
	category := fs.String("category", "", "expense category")
	date := fs.String("date", "", "date as YYYY-MM-DD or RFC3339 (defaults to now)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := requireFlags(map[string]string{
		"description": *description,
		"amount":      *amount,
		"category":    *category,
	}); err != nil {
		return err
	}

	request := models.CreateExpenseRequest{
		Description: *description,
		Category:    *category,
	}

	var err error
	if request.Amount, err = parseAmount(*amount); err != nil {
		return err
	}
	if *date != "" {
		if request.Date, err = parseDate(*date); err != nil {
			return err
		}
	}

	expense, err := a.adapter.CreateExpense(ctx, request)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}

	fmt.Fprintf(a.out, app.MsgExpenseCreated+"\n", expense.ID)
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := a.newFlagSet("update")
	description := fs.String("description", "", "new description")
	amount := fs.String("amount", "", "new amount")
	category := fs.String("category", "", "new category")
	date := fs.String("date", "", "new date as YYYY-MM-DD or RFC3339")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	var request models.UpdateExpenseRequest
	set := 0
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		set++
		switch f.Name {
		case "description":
			request.Description = description
		case "category":
			request.Category = category
		case "amount":
			parsed, parseErr := parseAmount(*amount)
			if parseErr != nil {
				visitErr = parseErr
				return
			}
			request.Amount = &parsed
		case "date":
			parsed, parseErr := parseDate(*date)
			if parseErr != nil {
				visitErr = parseErr
				return
			}
			request.Date = &parsed
		}
	})
	if visitErr != nil {
		return visitErr
	}
	if set == 0 {
		return ErrNothingToUpdate
	}

	if err = a.adapter.UpdateExpense(ctx, id, request); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	fmt.Fprintf(a.out, app.MsgExpenseUpdated+"\n", id)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	fmt.Fprintf(a.out, app.MsgExpenseDeleted+"\n", id)
	return nil
}

func (a *App) printExpenseTable(expenses []models.Expense) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Date.Local().Format(dateLayout), e.Category, e.Amount.StringFixed(2), e.Description)
	}
	if len(expenses) > 1 {
		fmt.Fprintf(w, "\t\tTOTAL\t%s\t\n", total.StringFixed(2))
	}

	return w.Flush()
}

func (a *App) printJSON(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseWithID accepts the expense id either before or after the flags.
func parseWithID(fs *flag.FlagSet, args []string) (uuid.UUID, error) {
	var rawID string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		rawID, args = args[0], args[1:]
	}

	if err := fs.Parse(args); err != nil {
		return uuid.Nil, err
	}
	if rawID == "" {
		rawID = fs.Arg(0)
	}
	if rawID == "" {
		return uuid.Nil, ErrMissingExpenseID
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidExpenseID, rawID)
	}
	return id, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return amount, nil
}

// parseDate reads a calendar date in the local zone or a full RFC3339
// timestamp.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateLayout, raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
