package neraca

import (
	"github.com/shopspring/decimal"
)

// RatioKind selects how a ratio value is rendered.
type RatioKind int

const (
	// KindDecimal renders with two fixed decimals, e.g. "2.00".
	KindDecimal RatioKind = iota
	// KindPercent renders the value scaled by 100 with a trailing "%", e.g. "15.23%".
	KindPercent
)

// Ratio is one derived metric: a display name, a pure formula over a
// snapshot, and the kind of rendering its value gets. The second return of
// Formula is false when the ratio is undefined (zero denominator); an
// undefined ratio renders as an empty string, never NaN or Inf.
type Ratio struct {
	Name    string
	Kind    RatioKind
	Formula func(Snapshot) (decimal.Decimal, bool)
}

// divide is the guarded quotient every formula is built on.
func divide(num, den decimal.Decimal) (decimal.Decimal, bool) {
	if den.IsZero() {
		return decimal.Zero, false
	}
	return num.Div(den), true
}

// quotient builds the common one-field-over-another formula.
func quotient(num, den Field) func(Snapshot) (decimal.Decimal, bool) {
	return func(s Snapshot) (decimal.Decimal, bool) {
		return divide(s.Value(num), s.Value(den))
	}
}

// StandardRatios is the fixed ratio set of the main analysis view,
// iterated in declared order.
var StandardRatios = []Ratio{
	{Name: "Current Ratio", Kind: KindDecimal, Formula: quotient(CurrentAsset, CurrentLiabilities)},
	{Name: "Debt to Equity", Kind: KindDecimal, Formula: quotient(TotalLiabilities, Equity)},
	{Name: "Operating Profit Margin", Kind: KindPercent, Formula: quotient(OperatingIncome, Revenue)},
	{Name: "Net Profit Margin", Kind: KindPercent, Formula: quotient(NetIncome, Revenue)},
	{Name: "Return on Assets", Kind: KindPercent, Formula: quotient(NetIncome, TotalAsset)},
	{Name: "Return on Equity", Kind: KindPercent, Formula: quotient(NetIncome, Equity)},
}

// BrokerageRatios is the secondary ratio set, typically computed over a
// date-filtered window rather than the full history. Both sets run over any
// snapshot collection: a window is just a filtered view of the book.
var BrokerageRatios = []Ratio{
	{Name: "Liquidity Ratio", Kind: KindDecimal, Formula: quotient(CurrentAsset, CurrentLiabilities)},
	{Name: "Leverage Ratio", Kind: KindDecimal, Formula: quotient(TotalAsset, Equity)},
	{Name: "Operating Margin", Kind: KindPercent, Formula: quotient(OperatingIncome, Revenue)},
	{Name: "Efficiency Ratio", Kind: KindPercent, Formula: quotient(OperatingExpense, Revenue)},
	{Name: "Profit Margin", Kind: KindPercent, Formula: quotient(IncomeBeforeTax, Revenue)},
	{Name: "After-Tax Margin", Kind: KindPercent, Formula: quotient(NetIncome, Revenue)},
	{Name: "Tax Rate", Kind: KindPercent, Formula: func(s Snapshot) (decimal.Decimal, bool) {
		return divide(s.Value(Tax), s.Value(NetIncome).Add(s.Value(Tax)))
	}},
}

// Format renders the ratio for one snapshot according to its kind.
// An undefined ratio renders as "", distinguishable from a legitimate zero.
func (r Ratio) Format(s Snapshot) string {
	v, ok := r.Formula(s)
	if !ok {
		return ""
	}
	if r.Kind == KindPercent {
		return FormatPercent(v)
	}
	return FormatDecimal(v)
}

// FormatDecimal renders a decimal-kind value with two fixed decimals.
func FormatDecimal(v decimal.Decimal) string { return v.StringFixed(2) }

// FormatPercent renders a percent-kind value: scaled by 100, two fixed
// decimals, trailing percent sign.
func FormatPercent(v decimal.Decimal) string {
	return v.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// ComputeRatios evaluates every ratio of the set for every snapshot. The
// result maps the ratio name to its formatted values, index-aligned with the
// snapshots; iterate the set itself for the declared row order.
func ComputeRatios(snapshots []Snapshot, set []Ratio) map[string][]string {
	out := make(map[string][]string, len(set))
	for _, r := range set {
		row := make([]string, len(snapshots))
		for i, s := range snapshots {
			row[i] = r.Format(s)
		}
		out[r.Name] = row
	}
	return out
}
