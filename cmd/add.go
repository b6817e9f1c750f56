package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hpratama/neraca"
	"github.com/hpratama/neraca/date"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	year      int
	month     string
	overwrite bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record the balance snapshot of one month" }
func (*addCmd) Usage() string {
	return `neraca add [-y <year>] [-m <month>] [-overwrite] <field>=<amount>...

  Records a snapshot under the last calendar day of the selected month.
  Fields are matched against the schema case-insensitively; unlisted fields
  default to 0. By default a month that already has a snapshot rejects the
  write; pass -overwrite to replace it.

Usage Examples:
$ neraca add -y 2024 -m January "Current Asset=1000000" "Current Liabilities=500000"

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	today := date.Today()
	f.IntVar(&c.year, "y", today.Year(), "Reporting year")
	f.StringVar(&c.month, "m", today.Month().String(), "Reporting month, by name or number")
	f.BoolVar(&c.overwrite, "overwrite", false, "Replace the snapshot if the month is already recorded")
}

// parseValues turns "field=amount" arguments into a value sequence aligned
// positionally to the schema.
func parseValues(args []string) ([]decimal.Decimal, error) {
	index := make(map[neraca.Field]int, len(neraca.Schema))
	for i, f := range neraca.Schema {
		index[f] = i
	}

	values := make([]decimal.Decimal, len(neraca.Schema))
	for _, arg := range args {
		name, amount, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument %q, want <field>=<amount>", arg)
		}
		field, ok := neraca.FindField(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown field %q", strings.TrimSpace(name))
		}
		values[index[field]] = neraca.ParseAmount(strings.TrimSpace(amount)).Decimal()
	}
	return values, nil
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := date.ParseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	on := date.EndOfMonth(c.year, month)

	values, err := parseValues(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing values: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := neraca.LoadBook(bookPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", bookPath(), err)
		return subcommands.ExitFailure
	}

	policy := neraca.RejectDuplicate
	if c.overwrite {
		policy = neraca.Overwrite
	}

	outcome := book.Upsert(on, values, policy)
	if outcome == neraca.RejectedDuplicate {
		fmt.Fprintf(os.Stderr, "Data for %s already exists and cannot be overwritten.\n", on)
		return subcommands.ExitSuccess
	}

	if err := neraca.SaveBook(bookPath(), book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book %q: %v\n", bookPath(), err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Snapshot for %s %s.\n", on, outcome)
	return subcommands.ExitSuccess
}
