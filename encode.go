package neraca

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/hpratama/neraca/date"
	"github.com/shopspring/decimal"
)

// DateColumn is the header of the key column in the backing file.
const DateColumn = "Date"

// DecodeBook reads a book from delimited text with a header row and
// reconciles it against the schema:
//   - a row whose date does not parse is dropped,
//   - a cell that is not numeric (or a schema column missing from the file)
//     is coerced to 0,
//   - columns outside {Date} ∪ Schema are ignored.
//
// The result therefore always carries exactly the canonical column set,
// sorted by date, whatever the on-disk order was.
func DecodeBook(r io.Reader) (*Book, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows are repaired, not rejected
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read book data: %w", err)
	}

	book := NewBook()
	if len(records) == 0 {
		return book, nil
	}

	// Map header names to their position in the file.
	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	dateIdx, hasDate := columns[DateColumn]

	for _, row := range records[1:] {
		if !hasDate || dateIdx >= len(row) {
			continue
		}
		on, err := date.Parse(row[dateIdx])
		if err != nil {
			continue // unparseable date: drop the row
		}
		values := make([]decimal.Decimal, len(Schema))
		for i, f := range Schema {
			idx, ok := columns[string(f)]
			if !ok || idx >= len(row) {
				continue // missing column: synthesized as 0
			}
			v, err := decimal.NewFromString(row[idx])
			if err != nil {
				continue // non-numeric cell: coerced to 0
			}
			values[i] = v
		}
		// A duplicate date later in the file replaces the earlier row.
		book.Upsert(on, values, Overwrite)
	}
	return book, nil
}

// EncodeBook writes the book in its canonical form: a header row with the
// date column followed by the schema in order, then one row per snapshot,
// sorted by date ascending, with ISO dates and plain decimal amounts.
func EncodeBook(w io.Writer, book *Book) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(Schema)+1)
	header = append(header, DateColumn)
	for _, f := range Schema {
		header = append(header, string(f))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write book header: %w", err)
	}

	for _, s := range book.Snapshots() {
		row := make([]string, 0, len(Schema)+1)
		row = append(row, s.On().String())
		for _, v := range s.Values() {
			row = append(row, v.String())
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write snapshot %s: %w", s.On(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}
