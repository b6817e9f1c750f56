package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hpratama/neraca"
	"github.com/hpratama/neraca/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	millions bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the stored data as a pivoted table" }
func (*listCmd) Usage() string {
	return `neraca list [-millions]

  Displays every stored snapshot as a pivoted table: one row per account
  field, one column per month, oldest first.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.millions, "millions", true, "Scale amounts to millions for display")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := neraca.LoadBook(bookPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book %q: %v\n", bookPath(), err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BookMarkdown(book, c.millions))
	return subcommands.ExitSuccess
}
