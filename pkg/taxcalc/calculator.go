package taxcalc

import "github.com/shopspring/decimal"

// Breakdown lists the deduction components that make up ChapterDeductions.
type Breakdown struct {
	Section80C        decimal.Decimal `json:"section_80c"`
	Section80D        decimal.Decimal `json:"section_80d"`
	HRAExemption      decimal.Decimal `json:"hra_exemption"`
	HouseLoss         decimal.Decimal `json:"house_property_loss"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
	Section80TTA      decimal.Decimal `json:"section_80tta"`
	ProfessionalTax   decimal.Decimal `json:"professional_tax"`
	StandardDeduction decimal.Decimal `json:"standard_deduction"`
}

// Result is the outcome of one regime computation.
// IncomeTax is the unrounded slab sum; Cess and TotalTax are rounded once.
//
// ChapterDeductions is everything subtracted from GrossTotalIncome, standard deduction included,
// so TaxableIncome is always max(0, GrossTotalIncome - ChapterDeductions) in both regimes.
// Under the new regime no chapter VI-A claim applies and it equals Breakdown.StandardDeduction.
type Result struct {
	Regime            Regime          `json:"regime"`
	GrossTotalIncome  decimal.Decimal `json:"gross_total_income"`
	ChapterDeductions decimal.Decimal `json:"chapter_deductions"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	IncomeTax         decimal.Decimal `json:"income_tax"`
	Cess              decimal.Decimal `json:"cess"`
	TotalTax          decimal.Decimal `json:"total_tax"`
	Breakdown         Breakdown       `json:"breakdown"`
}

// Comparison holds both regimes side by side.
type Comparison struct {
	Old         Result          `json:"old"`
	New         Result          `json:"new"`
	Difference  decimal.Decimal `json:"difference"` // Old.TotalTax - New.TotalTax
	Recommended Regime          `json:"recommended"`
}

// ComputeLiability computes the declaration under both regimes.
func ComputeLiability(d Declaration, baseAnnualSalary decimal.Decimal) Comparison {
	oldRes := computeOld(d, baseAnnualSalary)
	newRes := computeNew(d, baseAnnualSalary)

	recommended := RegimeNew
	if oldRes.TotalTax.LessThan(newRes.TotalTax) {
		recommended = RegimeOld
	}

	return Comparison{
		Old:         oldRes,
		New:         newRes,
		Difference:  oldRes.TotalTax.Sub(newRes.TotalTax),
		Recommended: recommended,
	}
}

// Compute computes the declaration under a single regime.
func Compute(d Declaration, baseAnnualSalary decimal.Decimal, r Regime) Result {
	if r == RegimeOld {
		return computeOld(d, baseAnnualSalary)
	}
	return computeNew(d, baseAnnualSalary)
}

// GrossTotalIncome is base salary plus other income and previous-employment salary when enabled.
func GrossTotalIncome(d Declaration, baseAnnualSalary decimal.Decimal) decimal.Decimal {
	gross := nonNeg(baseAnnualSalary)
	if d.OtherIncome.Enabled {
		gross = gross.Add(d.OtherIncome.Total())
	}
	if d.PreviousEmployment.Enabled {
		gross = gross.Add(nonNeg(d.PreviousEmployment.TotalTaxableSalary))
	}
	return gross
}

func computeOld(d Declaration, baseAnnualSalary decimal.Decimal) Result {
	base := nonNeg(baseAnnualSalary)
	gross := GrossTotalIncome(d, base)

	b := Breakdown{
		Section80C:        Section80CTotal(d),
		Section80D:        Section80DTotal(d),
		HRAExemption:      HRAExemption(d, base),
		HouseLoss:         HousePropertyLoss(d),
		OtherDeductions:   OtherDeductions(d),
		StandardDeduction: oldStandardDeduction,
		Section80TTA:      decimal.Zero,
		ProfessionalTax:   decimal.Zero,
	}
	if d.OtherIncome.Enabled {
		b.Section80TTA = decimal.Min(nonNeg(d.OtherIncome.SavingsInterest), cap80TTA)
	}
	if d.PreviousEmployment.Enabled {
		b.ProfessionalTax = nonNeg(d.PreviousEmployment.ProfessionalTax)
	}

	deductions := b.Section80C.
		Add(b.Section80D).
		Add(b.HRAExemption).
		Add(b.HouseLoss).
		Add(b.OtherDeductions).
		Add(b.Section80TTA).
		Add(b.ProfessionalTax).
		Add(b.StandardDeduction)

	return finish(RegimeOld, gross, deductions, b, oldRegimeSlabs)
}

func computeNew(d Declaration, baseAnnualSalary decimal.Decimal) Result {
	gross := GrossTotalIncome(d, baseAnnualSalary)
	b := Breakdown{
		Section80C:        decimal.Zero,
		Section80D:        decimal.Zero,
		HRAExemption:      decimal.Zero,
		HouseLoss:         decimal.Zero,
		OtherDeductions:   decimal.Zero,
		Section80TTA:      decimal.Zero,
		ProfessionalTax:   decimal.Zero,
		StandardDeduction: newStandardDeduction,
	}
	return finish(RegimeNew, gross, newStandardDeduction, b, newRegimeSlabs)
}

func finish(r Regime, gross, deductions decimal.Decimal, b Breakdown, slabs []Slab) Result {
	taxable := nonNeg(gross.Sub(deductions))
	tax := SlabTax(taxable, slabs)
	return Result{
		Regime:            r,
		GrossTotalIncome:  gross,
		ChapterDeductions: deductions,
		TaxableIncome:     taxable,
		IncomeTax:         tax,
		Cess:              roundHalfUp(tax.Mul(cessRate)),
		TotalTax:          roundHalfUp(tax.Mul(cessMultiplier)),
		Breakdown:         b,
	}
}

// SlabTax applies marginal rates bracket by bracket without intermediate rounding.
func SlabTax(taxable decimal.Decimal, slabs []Slab) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, s := range slabs {
		if !taxable.GreaterThan(lower) {
			break
		}
		upper := taxable
		if !s.UpTo.IsZero() && s.UpTo.LessThan(taxable) {
			upper = s.UpTo
		}
		tax = tax.Add(upper.Sub(lower).Mul(s.Rate))
		if s.UpTo.IsZero() {
			break
		}
		lower = s.UpTo
	}
	return tax
}

// Section80CTotal sums 80C items, home-loan principal, let-out principal and previous-employer PF, capped at 150,000.
func Section80CTotal(d Declaration) decimal.Decimal {
	total := sumSection(d.LineItems, Section80C)
	if d.HomeLoan.Enabled {
		total = total.Add(nonNeg(d.HomeLoan.PrincipalPaid))
	}
	if d.LetOut.Enabled {
		for _, p := range d.LetOut.Properties {
			if p.HasHomeLoan {
				total = total.Add(nonNeg(p.PrincipalPaid))
			}
		}
	}
	if d.PreviousEmployment.Enabled {
		total = total.Add(nonNeg(d.PreviousEmployment.ProvidentFund))
	}
	return decimal.Min(total, cap80C)
}

// Section80DTotal sums 80D items, capped at 100,000.
func Section80DTotal(d Declaration) decimal.Decimal {
	return decimal.Min(sumSection(d.LineItems, Section80D), cap80D)
}

// HRAExemption is min(HRA received, annual rent - 10% of basic). Rent is always monthly × 12,
// whatever period the tenancy covers.
func HRAExemption(d Declaration, baseAnnualSalary decimal.Decimal) decimal.Decimal {
	basic := nonNeg(baseAnnualSalary).Mul(basicShare)
	hraReceived := basic.Mul(hraShareOfBasic)

	rent := decimal.Zero
	if d.HRA.Enabled {
		for _, h := range d.HRA.Houses {
			rent = rent.Add(nonNeg(h.MonthlyRent).Mul(monthsPerYear))
		}
	}

	rentOverThreshold := nonNeg(rent.Sub(basic.Mul(rentThresholdShare)))
	return decimal.Min(hraReceived, rentOverThreshold)
}

// HousePropertyLoss is the Section 24 loss set off against salary, capped at 200,000.
func HousePropertyLoss(d Declaration) decimal.Decimal {
	selfOccupied := decimal.Zero
	if d.HomeLoan.Enabled {
		selfOccupied = decimal.Min(nonNeg(d.HomeLoan.InterestPaid), capSelfOccupiedInterest)
	}

	letOutNet := decimal.Zero
	if d.LetOut.Enabled {
		for _, p := range d.LetOut.Properties {
			letOutNet = letOutNet.Add(letOutIncome(p))
		}
	}

	net := letOutNet.Sub(selfOccupied)
	if !net.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(net.Abs(), capHouseLoss)
}

func letOutIncome(p LetOutProperty) decimal.Decimal {
	nav := nonNeg(nonNeg(p.AnnualRent).Sub(nonNeg(p.MunicipalTaxes)))
	income := nav.Sub(nav.Mul(letOutStdDeduction))
	if p.HasHomeLoan {
		income = income.Sub(nonNeg(p.InterestPaid))
	}
	return income
}

// OtherDeductions sums OTHERS items, each clamped to its title's cap when one exists.
func OtherDeductions(d Declaration) decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.LineItems {
		if item.Section != SectionOthers || item.Title == "" {
			continue
		}
		amount := nonNeg(item.Amount)
		if limit, ok := OthersCap(item.Title); ok {
			amount = decimal.Min(amount, limit)
		}
		total = total.Add(amount)
	}
	return total
}

func sumSection(items []LineItem, s Section) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Section != s || item.Title == "" {
			continue
		}
		total = total.Add(nonNeg(item.Amount))
	}
	return total
}

// roundHalfUp rounds to whole currency units. Inputs are never negative here,
// so half-away-from-zero matches half-up.
func roundHalfUp(v decimal.Decimal) decimal.Decimal {
	return v.Round(0)
}
