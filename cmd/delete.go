package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hpratama/neraca"
	"github.com/hpratama/neraca/date"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	date string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove the snapshot recorded at a date" }
func (*deleteCmd) Usage() string {
	return `neraca delete -d <date>

  Removes the snapshot exactly matching the date. Deleting a date with no
  snapshot is a no-op.

`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot to delete (YYYY-MM-DD)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := neraca.LoadBook(bookPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", bookPath(), err)
		return subcommands.ExitFailure
	}

	if !book.Delete(on) {
		fmt.Printf("No snapshot recorded for %s.\n", on)
		return subcommands.ExitSuccess
	}

	if err := neraca.SaveBook(bookPath(), book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book %q: %v\n", bookPath(), err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted entry for %s.\n", on)
	return subcommands.ExitSuccess
}
