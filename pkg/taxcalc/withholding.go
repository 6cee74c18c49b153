package taxcalc

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FinancialYear is an Indian financial year, April of StartYear through March of the next year.
type FinancialYear struct {
	StartYear int
}

// ParseFinancialYear parses a label such as "2025-26".
func ParseFinancialYear(label string) (FinancialYear, error) {
	if len(label) != 7 || label[4] != '-' {
		return FinancialYear{}, fmt.Errorf("invalid financial year %q (expected YYYY-YY)", label)
	}
	start, err := strconv.Atoi(label[:4])
	if err != nil {
		return FinancialYear{}, fmt.Errorf("invalid financial year %q: %w", label, err)
	}
	end, err := strconv.Atoi(label[5:])
	if err != nil {
		return FinancialYear{}, fmt.Errorf("invalid financial year %q: %w", label, err)
	}
	if end != (start+1)%100 {
		return FinancialYear{}, fmt.Errorf("invalid financial year %q: years are not consecutive", label)
	}
	return FinancialYear{StartYear: start}, nil
}

func (fy FinancialYear) String() string {
	return fmt.Sprintf("%d-%02d", fy.StartYear, (fy.StartYear+1)%100)
}

// Start is 1 April of the start year.
func (fy FinancialYear) Start() time.Time {
	return time.Date(fy.StartYear, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant after 31 March of the following year.
func (fy FinancialYear) End() time.Time {
	return time.Date(fy.StartYear+1, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// MonthsRemaining counts payroll months from at's month through March, inclusive.
func (fy FinancialYear) MonthsRemaining(at time.Time) int {
	at = at.UTC()
	if at.Before(fy.Start()) {
		return 12
	}
	if !at.Before(fy.End()) {
		return 0
	}
	last := (fy.StartYear+1)*12 + int(time.March)
	current := at.Year()*12 + int(at.Month())
	return last - current + 1
}

// Withholding projects the TDS still to be deducted this year.
type Withholding struct {
	Regime          Regime          `json:"regime"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	PreviousTDS     decimal.Decimal `json:"previous_tds"`
	Remaining       decimal.Decimal `json:"remaining"`
	MonthsRemaining int             `json:"months_remaining"`
	Monthly         decimal.Decimal `json:"monthly"`
}

// ProjectWithholding spreads the unpaid liability evenly over the remaining months.
// Fewer than one remaining month is treated as one.
func ProjectWithholding(res Result, previousTDS decimal.Decimal, monthsRemaining int) Withholding {
	if monthsRemaining < 1 {
		monthsRemaining = 1
	}
	prev := nonNeg(previousTDS)
	remaining := nonNeg(res.TotalTax.Sub(prev))
	return Withholding{
		Regime:          res.Regime,
		TotalTax:        res.TotalTax,
		PreviousTDS:     prev,
		Remaining:       remaining,
		MonthsRemaining: monthsRemaining,
		Monthly:         roundHalfUp(remaining.Div(decimal.NewFromInt(int64(monthsRemaining)))),
	}
}
