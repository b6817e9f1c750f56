package neraca

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary account value.
type Amount struct {
	value decimal.Decimal
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported decimal source type")
	}
}

// A builds an Amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a plain decimal text amount. Non-numeric input is
// coerced to zero, matching the store's repair-not-reject loading policy.
func ParseAmount(str string) Amount {
	v, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}
	}
	return Amount{value: v}
}

// Formatters for grouped-thousand rendering. Amounts holding a whole number
// render with no decimals, others with exactly two.
var (
	wholeFormatter = money.NewFormatter(0, ".", ",", "", "1")
	centFormatter  = money.NewFormatter(2, ".", ",", "", "1")
)

// String renders the amount with grouped thousands: "1,234,567" when the
// value is integral, "1,234,567.50" otherwise.
func (a Amount) String() string {
	if a.value.IsInteger() {
		return wholeFormatter.Format(a.value.IntPart())
	}
	return centFormatter.Format(a.value.Shift(2).Round(0).IntPart())
}

// Decimal returns the underlying exact value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// InMillions returns the amount scaled down to millions, the unit the
// report tables display.
func (a Amount) InMillions() Amount { return Amount{value: a.value.Shift(-6)} }

func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
