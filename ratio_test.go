package neraca

import (
	"testing"

	"github.com/hpratama/neraca/date"
)

func snapshotOf(fields map[Field]float64) Snapshot {
	return NewSnapshot(date.MustParse("2024-01-31"), values(fields))
}

func TestStandardRatios(t *testing.T) {
	s := snapshotOf(map[Field]float64{
		CurrentAsset:       1_000_000,
		CurrentLiabilities: 500_000,
		TotalAsset:         4_000_000,
		TotalLiabilities:   1_200_000,
		Equity:             2_000_000,
		Revenue:            10_000,
		OperatingIncome:    2_500,
		NetIncome:          1_523,
	})

	want := map[string]string{
		"Current Ratio":           "2.00",
		"Debt to Equity":          "0.60",
		"Operating Profit Margin": "25.00%",
		"Net Profit Margin":       "15.23%",
		"Return on Assets":        "0.04%",
		"Return on Equity":        "0.08%",
	}

	for _, r := range StandardRatios {
		if got := r.Format(s); got != want[r.Name] {
			t.Errorf("%s = %q, want %q", r.Name, got, want[r.Name])
		}
	}
}

func TestRatio_ZeroDenominator(t *testing.T) {
	// every denominator field is zero here
	s := snapshotOf(map[Field]float64{CurrentAsset: 1_000_000, NetIncome: 500})

	for _, set := range [][]Ratio{StandardRatios, BrokerageRatios} {
		for _, r := range set {
			if r.Name == "Tax Rate" {
				continue // its denominator is Net Income + Tax, non-zero here
			}
			if got := r.Format(s); got != "" {
				t.Errorf("%s with zero denominator = %q, want empty", r.Name, got)
			}
		}
	}
}

func TestBrokerageRatios_TaxRate(t *testing.T) {
	testCases := []struct {
		name      string
		netIncome float64
		tax       float64
		want      string
	}{
		{"quarter of pre-tax income", 750, 250, "25.00%"},
		{"no tax", 1000, 0, "0.00%"},
		{"no income at all", 0, 0, ""},
	}

	var taxRate Ratio
	for _, r := range BrokerageRatios {
		if r.Name == "Tax Rate" {
			taxRate = r
		}
	}
	if taxRate.Formula == nil {
		t.Fatal("Tax Rate not found in BrokerageRatios")
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := snapshotOf(map[Field]float64{NetIncome: tc.netIncome, Tax: tc.tax})
			if got := taxRate.Format(s); got != tc.want {
				t.Errorf("Tax Rate = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestComputeRatios(t *testing.T) {
	snapshots := []Snapshot{
		NewSnapshot(date.MustParse("2024-01-31"), values(map[Field]float64{
			CurrentAsset: 100, CurrentLiabilities: 50,
		})),
		NewSnapshot(date.MustParse("2024-02-29"), values(map[Field]float64{
			CurrentAsset: 100, CurrentLiabilities: 0,
		})),
	}

	rows := ComputeRatios(snapshots, StandardRatios)
	if len(rows) != len(StandardRatios) {
		t.Fatalf("got %d rows, want %d", len(rows), len(StandardRatios))
	}

	got := rows["Current Ratio"]
	want := []string{"2.00", ""}
	if len(got) != len(want) {
		t.Fatalf("Current Ratio row has %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Current Ratio[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
