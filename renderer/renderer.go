// Package renderer builds the markdown report views of a book: the pivoted
// storage table, per-field trend series, and ratio tables.
package renderer

import (
	"fmt"
	"strings"

	"github.com/hpratama/neraca"
)

// tableRenderer formats report output into a markdown string.
type tableRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *tableRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// monthHeader writes the two markdown header rows: a leading label column
// followed by one month-year column per snapshot.
func (r *tableRenderer) monthHeader(label string, snapshots []neraca.Snapshot) {
	r.Printf("| %s |", label)
	for _, s := range snapshots {
		r.Printf(" %s |", s.Label())
	}
	r.Printf("\n|:---|")
	for range snapshots {
		r.Printf("---:|")
	}
	r.Printf("\n")
}

// amountCell renders one table cell, optionally scaled to millions.
func amountCell(a neraca.Amount, inMillions bool) string {
	if inMillions {
		a = a.InMillions()
	}
	return a.String()
}

// BookMarkdown renders the stored data as a pivoted markdown table: one row
// per schema field, one column per month, oldest first.
func BookMarkdown(book *neraca.Book, inMillions bool) string {
	r := &tableRenderer{Builder: &strings.Builder{}}

	title := "## Stored Financial Data\n\n"
	if inMillions {
		title = "## Stored Financial Data (in Millions)\n\n"
	}
	r.Printf("%s", title)

	snapshots := book.Snapshots()
	if len(snapshots) == 0 {
		r.Printf("No data available.\n")
		return r.String()
	}

	r.monthHeader("Account", snapshots)
	for _, f := range neraca.Schema {
		r.Printf("| %s |", f)
		for _, s := range snapshots {
			r.Printf(" %s |", amountCell(s.Amount(f), inMillions))
		}
		r.Printf("\n")
	}
	return r.String()
}

// SeriesMarkdown renders the selected fields over the given snapshots as a
// trend table, one row per field.
func SeriesMarkdown(snapshots []neraca.Snapshot, fields []neraca.Field, inMillions bool) string {
	r := &tableRenderer{Builder: &strings.Builder{}}

	title := "## Financial Trend\n\n"
	if inMillions {
		title = "## Financial Trend (in Millions)\n\n"
	}
	r.Printf("%s", title)

	if len(snapshots) == 0 {
		r.Printf("No data to analyze.\n")
		return r.String()
	}

	r.monthHeader("Series", snapshots)
	for _, f := range fields {
		r.Printf("| %s |", f)
		for _, s := range snapshots {
			r.Printf(" %s |", amountCell(s.Amount(f), inMillions))
		}
		r.Printf("\n")
	}
	return r.String()
}

// RatiosMarkdown renders a ratio set over the given snapshots as a markdown
// table, one row per ratio in declared order. Undefined ratios render as
// empty cells.
func RatiosMarkdown(snapshots []neraca.Snapshot, set []neraca.Ratio) string {
	r := &tableRenderer{Builder: &strings.Builder{}}
	r.Printf("## Financial Ratios\n\n")

	if len(snapshots) == 0 {
		r.Printf("No data to analyze.\n")
		return r.String()
	}

	rows := neraca.ComputeRatios(snapshots, set)
	r.monthHeader("Ratio", snapshots)
	for _, ratio := range set {
		r.Printf("| %s |", ratio.Name)
		for _, cell := range rows[ratio.Name] {
			r.Printf(" %s |", cell)
		}
		r.Printf("\n")
	}
	return r.String()
}
