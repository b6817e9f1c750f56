package date

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range spanning both dates, whatever their order.
func NewRange(a, b Date) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{From: a, To: b}
}

// MonthRange returns the analysis window from the first day of the from-month
// to the last day of the to-month.
func MonthRange(from, to Date) Range {
	return NewRange(from.MonthStart(), to.MonthEnd())
}

// Contains reports whether date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }
