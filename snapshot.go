package neraca

import (
	"strings"

	"github.com/hpratama/neraca/date"
	"github.com/shopspring/decimal"
)

// Field names an account in the fixed bookkeeping schema.
type Field string

const (
	CurrentAsset          Field = "Current Asset"
	NonCurrentAsset       Field = "Non-Current Asset"
	TotalAsset            Field = "Total Asset"
	CashAndEquivalents    Field = "Cash and Equivalents"
	CurrentLiabilities    Field = "Current Liabilities"
	NonCurrentLiabilities Field = "Non-Current Liabilities"
	TotalLiabilities      Field = "Total Liabilities"
	Equity                Field = "Equity"
	Revenue               Field = "Revenue"
	CostOfRevenue         Field = "Cost of Revenue"
	GrossProfit           Field = "Gross Profit"
	OperatingExpense      Field = "Operating Expense"
	OperatingIncome       Field = "Operating Income"
	OtherIncome           Field = "Other Income"
	OtherExpense          Field = "Other Expense"
	InterestExpense       Field = "Interest Expense"
	IncomeBeforeTax       Field = "Income Before Tax"
	Tax                   Field = "Tax"
	NetIncome             Field = "Net Income"
	Depreciation          Field = "Depreciation"
)

// Schema is the fixed ordered set of account fields every Snapshot carries.
// Column order in the backing file and row order in reports follow it.
var Schema = []Field{
	CurrentAsset,
	NonCurrentAsset,
	TotalAsset,
	CashAndEquivalents,
	CurrentLiabilities,
	NonCurrentLiabilities,
	TotalLiabilities,
	Equity,
	Revenue,
	CostOfRevenue,
	GrossProfit,
	OperatingExpense,
	OperatingIncome,
	OtherIncome,
	OtherExpense,
	InterestExpense,
	IncomeBeforeTax,
	Tax,
	NetIncome,
	Depreciation,
}

// Snapshot holds one month's full set of account values, keyed by the last
// calendar day of the reporting month.
type Snapshot struct {
	on     date.Date
	values map[Field]decimal.Decimal
}

// NewSnapshot builds a snapshot from values aligned positionally to Schema.
// A short sequence leaves the remaining fields at zero.
func NewSnapshot(on date.Date, values []decimal.Decimal) Snapshot {
	s := Snapshot{on: on, values: make(map[Field]decimal.Decimal, len(Schema))}
	for i, f := range Schema {
		if i < len(values) {
			s.values[f] = values[i]
		}
	}
	return s
}

// On returns the date of the snapshot.
func (s Snapshot) On() date.Date { return s.on }

// Label returns the snapshot's month-year column header like "Jan 2024".
func (s Snapshot) Label() string { return s.on.Label() }

// Value returns the amount recorded for the field, zero when absent.
func (s Snapshot) Value(f Field) decimal.Decimal { return s.values[f] }

// Amount returns the field value as a formattable Amount.
func (s Snapshot) Amount(f Field) Amount { return Amount{value: s.Value(f)} }

// Values returns the snapshot's amounts in Schema order.
func (s Snapshot) Values() []decimal.Decimal {
	values := make([]decimal.Decimal, len(Schema))
	for i, f := range Schema {
		values[i] = s.values[f]
	}
	return values
}

// Equal reports whether both snapshots hold the same date and amounts.
func (s Snapshot) Equal(x Snapshot) bool {
	if s.on != x.on {
		return false
	}
	for _, f := range Schema {
		if !s.Value(f).Equal(x.Value(f)) {
			return false
		}
	}
	return true
}

// FindField resolves a user-entered field name against the schema,
// case-insensitively. It returns false for names outside the schema.
func FindField(name string) (Field, bool) {
	for _, f := range Schema {
		if strings.EqualFold(string(f), name) {
			return f, true
		}
	}
	return "", false
}
