package cmd

import (
	"testing"

	"github.com/hpratama/neraca"
	"github.com/hpratama/neraca/date"
	"github.com/shopspring/decimal"
)

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"Current Asset=1000000", "current liabilities = 500000"})
	if err != nil {
		t.Fatalf("parseValues: %v", err)
	}
	if len(values) != len(neraca.Schema) {
		t.Fatalf("got %d values, want one per schema field", len(values))
	}

	s := neraca.NewSnapshot(date.MustParse("2024-01-31"), values)
	if !s.Value(neraca.CurrentAsset).Equal(decimal.NewFromInt(1000000)) {
		t.Errorf("Current Asset = %s, want 1000000", s.Value(neraca.CurrentAsset))
	}
	// field names match case-insensitively
	if !s.Value(neraca.CurrentLiabilities).Equal(decimal.NewFromInt(500000)) {
		t.Errorf("Current Liabilities = %s, want 500000", s.Value(neraca.CurrentLiabilities))
	}
	// unlisted fields default to zero
	if !s.Value(neraca.Revenue).IsZero() {
		t.Errorf("Revenue = %s, want 0", s.Value(neraca.Revenue))
	}
}

func TestParseValues_Rejects(t *testing.T) {
	for _, arg := range []string{"Revenue", "Moon Dust=12"} {
		if _, err := parseValues([]string{arg}); err == nil {
			t.Errorf("parseValues(%q): expected an error", arg)
		}
	}
}

func TestParseFields(t *testing.T) {
	fields, err := parseFields("Revenue, net income")
	if err != nil {
		t.Fatalf("parseFields: %v", err)
	}
	if len(fields) != 2 || fields[0] != neraca.Revenue || fields[1] != neraca.NetIncome {
		t.Errorf("parseFields = %v, want [Revenue, Net Income]", fields)
	}

	all, err := parseFields("")
	if err != nil {
		t.Fatalf("parseFields: %v", err)
	}
	if len(all) != len(neraca.Schema) {
		t.Errorf("empty spec selected %d fields, want the whole schema", len(all))
	}
}

func TestWindow(t *testing.T) {
	book := neraca.NewBook()
	for _, d := range []string{"2023-12-31", "2024-01-31", "2024-02-29"} {
		book.Upsert(date.MustParse(d), nil, neraca.RejectDuplicate)
	}

	t.Run("no flags selects the whole history", func(t *testing.T) {
		got, err := window(book, "", "")
		if err != nil {
			t.Fatalf("window: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("got %d snapshots, want 3", len(got))
		}
	})

	t.Run("from bounds the window", func(t *testing.T) {
		got, err := window(book, "2024-01-01", "")
		if err != nil {
			t.Fatalf("window: %v", err)
		}
		if len(got) != 2 || got[0].On().String() != "2024-01-31" {
			t.Errorf("window from 2024-01 = %d snapshots starting %v, want 2 starting 2024-01-31", len(got), got)
		}
	})

	t.Run("bad date is an error", func(t *testing.T) {
		if _, err := window(book, "someday", ""); err == nil {
			t.Error("expected an error for an unparseable -from")
		}
	})
}
