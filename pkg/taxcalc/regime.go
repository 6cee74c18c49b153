package taxcalc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Regime selects the income-tax computation method.
type Regime string

const (
	RegimeOld Regime = "OLD"
	RegimeNew Regime = "NEW"
)

// ParseRegime accepts OLD or NEW in any case.
func ParseRegime(s string) (Regime, error) {
	switch Regime(strings.ToUpper(strings.TrimSpace(s))) {
	case RegimeOld:
		return RegimeOld, nil
	case RegimeNew:
		return RegimeNew, nil
	}
	return "", fmt.Errorf("unknown regime %q", s)
}

// Slab taxes the portion of income above the previous slab's UpTo and at most UpTo.
// A zero UpTo marks the open-ended top slab.
type Slab struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

var (
	oldRegimeSlabs = []Slab{
		{UpTo: decimal.NewFromInt(250_000), Rate: decimal.Zero},
		{UpTo: decimal.NewFromInt(500_000), Rate: decimal.RequireFromString("0.05")},
		{UpTo: decimal.NewFromInt(1_000_000), Rate: decimal.RequireFromString("0.20")},
		{Rate: decimal.RequireFromString("0.30")},
	}

	newRegimeSlabs = []Slab{
		{UpTo: decimal.NewFromInt(400_000), Rate: decimal.Zero},
		{UpTo: decimal.NewFromInt(800_000), Rate: decimal.RequireFromString("0.05")},
		{UpTo: decimal.NewFromInt(1_200_000), Rate: decimal.RequireFromString("0.10")},
		{UpTo: decimal.NewFromInt(1_600_000), Rate: decimal.RequireFromString("0.15")},
		{UpTo: decimal.NewFromInt(2_000_000), Rate: decimal.RequireFromString("0.20")},
		{UpTo: decimal.NewFromInt(2_400_000), Rate: decimal.RequireFromString("0.25")},
		{Rate: decimal.RequireFromString("0.30")},
	}
)

// Slabs returns a copy of the slab table for a regime.
func Slabs(r Regime) []Slab {
	src := newRegimeSlabs
	if r == RegimeOld {
		src = oldRegimeSlabs
	}
	out := make([]Slab, len(src))
	copy(out, src)
	return out
}

// Statutory limits.
var (
	cap80C                  = decimal.NewFromInt(150_000)
	cap80D                  = decimal.NewFromInt(100_000)
	capSelfOccupiedInterest = decimal.NewFromInt(200_000)
	capHouseLoss            = decimal.NewFromInt(200_000)
	cap80TTA                = decimal.NewFromInt(10_000)

	oldStandardDeduction = decimal.NewFromInt(50_000)
	newStandardDeduction = decimal.NewFromInt(75_000)

	basicShare         = decimal.RequireFromString("0.5")
	hraShareOfBasic    = decimal.RequireFromString("0.4")
	rentThresholdShare = decimal.RequireFromString("0.1")
	letOutStdDeduction = decimal.RequireFromString("0.3")
	monthsPerYear      = decimal.NewFromInt(12)

	cessRate       = decimal.RequireFromString("0.04")
	cessMultiplier = decimal.RequireFromString("1.04")
)

// Titles of OTHERS line items that carry a statutory cap. Any other title passes through uncapped.
const (
	Title80CCD1B          = "Section 80CCD(1B) — Additional Exemption on voluntary NPS"
	Title80CCG            = "Section 80CCG — Rajiv Gandhi Equity Saving Scheme (RGESS)"
	Title80DDDisability   = "Section 80DD — Treatment of dependent with disability"
	Title80DDSevere       = "Section 80DD — Treatment of dependent with severe disability"
	Title80DDBBelow60     = "Section 80DDB — Medical Treatment of Specified Diseases (below 60)"
	Title80DDBAbove60     = "Section 80DDB — Medical Treatment of Specified Diseases (above 60)"
	Title80EEducationLoan = "Section 80E — Interest paid on Education Loan"
	Title80GDonations     = "Section 80G — Donations to charitable institutions"
)

var othersCaps = map[string]decimal.Decimal{
	Title80CCD1B:        decimal.NewFromInt(50_000),
	Title80CCG:          decimal.NewFromInt(25_000),
	Title80DDDisability: decimal.NewFromInt(75_000),
	Title80DDSevere:     decimal.NewFromInt(125_000),
	Title80DDBBelow60:   decimal.NewFromInt(40_000),
	Title80DDBAbove60:   decimal.NewFromInt(100_000),
}

// OthersCap reports the statutory cap for an OTHERS title.
func OthersCap(title string) (decimal.Decimal, bool) {
	c, ok := othersCaps[title]
	return c, ok
}
