package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hpratama/neraca"
	"github.com/hpratama/neraca/renderer"
)

// seriesCmd holds the flags for the 'series' subcommand.
type seriesCmd struct {
	fields   string
	from     string
	to       string
	millions bool
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display selected account fields as a trend table" }
func (*seriesCmd) Usage() string {
	return `neraca series [-f <field>,<field>...] [-from <date>] [-to <date>] [-millions]

  Displays the selected account fields month by month over the analysis
  window. All schema fields are plotted by default.

Usage Examples:
$ neraca series -f "Revenue,Net Income" -from 2024-01-01 -to 2024-06-30

`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fields, "f", "", "Comma-separated field names; empty selects the whole schema")
	f.StringVar(&c.from, "from", "", "Start of the analysis window (any day of the first month)")
	f.StringVar(&c.to, "to", "", "End of the analysis window (any day of the last month)")
	f.BoolVar(&c.millions, "millions", true, "Scale amounts to millions for display")
}

// parseFields resolves the -f flag into schema fields, defaulting to the
// whole schema when empty.
func parseFields(spec string) ([]neraca.Field, error) {
	if strings.TrimSpace(spec) == "" {
		return neraca.Schema, nil
	}
	var fields []neraca.Field
	for _, name := range strings.Split(spec, ",") {
		field, ok := neraca.FindField(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown field %q", strings.TrimSpace(name))
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fields, err := parseFields(c.fields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing fields: %v\n", err)
		return subcommands.ExitUsageError
	}

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

	printMarkdown(renderer.SeriesMarkdown(snapshots, fields, c.millions))
	return subcommands.ExitSuccess
}
