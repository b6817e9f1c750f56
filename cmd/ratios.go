package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hpratama/neraca"
	"github.com/hpratama/neraca/date"
	"github.com/hpratama/neraca/renderer"
)

// ratiosCmd holds the flags for the 'ratios' subcommand.
type ratiosCmd struct {
	from      string
	to        string
	brokerage bool
}

func (*ratiosCmd) Name() string     { return "ratios" }
func (*ratiosCmd) Synopsis() string { return "display financial ratios over a date window" }
func (*ratiosCmd) Usage() string {
	return `neraca ratios [-from <date>] [-to <date>] [-brokerage]

  Displays the ratio table over the stored history, or over the window
  spanning the from-month to the to-month when given. The -brokerage flag
  switches to the brokerage ratio set.

`
}

func (c *ratiosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the analysis window (any day of the first month)")
	f.StringVar(&c.to, "to", "", "End of the analysis window (any day of the last month)")
	f.BoolVar(&c.brokerage, "brokerage", false, "Use the brokerage ratio set")
}

// window returns the snapshots selected by the from/to month flags, or the
// whole history when both are empty.
func window(book *neraca.Book, from, to string) ([]neraca.Snapshot, error) {
	if from == "" && to == "" {
		return book.Snapshots(), nil
	}

	snapshots := book.Snapshots()
	start, end := date.Today().MonthStart(), date.Today().MonthEnd()
	if len(snapshots) > 0 {
		start, end = snapshots[0].On(), snapshots[len(snapshots)-1].On()
	}
	if from != "" {
		d, err := date.Parse(from)
		if err != nil {
			return nil, fmt.Errorf("invalid -from: %w", err)
		}
		start = d
	}
	if to != "" {
		d, err := date.Parse(to)
		if err != nil {
			return nil, fmt.Errorf("invalid -to: %w", err)
		}
		end = d
	}
	return book.Between(date.MonthRange(start, end)), nil
}

func (c *ratiosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := neraca.LoadBook(bookPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", bookPath(), err)
		return subcommands.ExitFailure
	}

	snapshots, err := window(book, c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting window: %v\n", err)
		return subcommands.ExitUsageError
	}

	set := neraca.StandardRatios
	if c.brokerage {
		set = neraca.BrokerageRatios
	}

	printMarkdown(renderer.RatiosMarkdown(snapshots, set))
	return subcommands.ExitSuccess
}
