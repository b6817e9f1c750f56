// Package cmd implements the CLI application to manage a bookkeeping file.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "bookkeeping")
	c.Register(&deleteCmd{}, "bookkeeping")

	c.Register(&listCmd{}, "reports")
	c.Register(&seriesCmd{}, "reports")
	c.Register(&ratiosCmd{}, "reports")
}

// Environment variables honored as defaults for the global flags. They are
// also picked up from a .env file loaded by the main package.
const (
	EnvBookFile = "NERACA_BOOK_FILE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "", "Path to the book file holding the monthly snapshots (CSV format)")

// bookPath resolves the backing file location: flag, then environment,
// then the default data directory.
func bookPath() string {
	if *bookFile != "" {
		return *bookFile
	}
	if p := os.Getenv(EnvBookFile); p != "" {
		return p
	}
	return filepath.Join("data", "financial_data.csv")
}

// printMarkdown renders a markdown report for the terminal. When rendering
// fails the raw markdown is still printed, so reports stay usable in pipes.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
