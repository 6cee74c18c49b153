package taxcalc

import "github.com/shopspring/decimal"

// Section identifies the chapter VI-A bucket a line item is claimed under.
type Section string

const (
	Section80C    Section = "80C"
	Section80D    Section = "80D"
	SectionOthers Section = "OTHERS"
)

// LineItem is a single claimed deduction.
type LineItem struct {
	Section Section         `json:"section"`
	Title   string          `json:"title"`
	Amount  decimal.Decimal `json:"amount"`
}

// HouseRent is one rented residence used for the HRA exemption.
type HouseRent struct {
	PeriodFrom  string          `json:"period_from"` // YYYY-MM-DD
	PeriodTo    string          `json:"period_to"`   // YYYY-MM-DD
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Address     string          `json:"address,omitempty"`
	Landlord    string          `json:"landlord_name,omitempty"`
	LandlordPAN string          `json:"landlord_pan,omitempty"`
}

type HRADetails struct {
	Enabled bool        `json:"enabled"`
	Saved   bool        `json:"saved"`
	Houses  []HouseRent `json:"houses"`
}

// HomeLoan is a self-occupied property loan.
type HomeLoan struct {
	Enabled       bool            `json:"enabled"`
	Saved         bool            `json:"saved"`
	SanctionDate  string          `json:"sanction_date"` // YYYY-MM-DD
	LenderName    string          `json:"lender_name,omitempty"`
	PrincipalPaid decimal.Decimal `json:"principal_paid"`
	InterestPaid  decimal.Decimal `json:"interest_paid"`
}

// LetOutProperty is a rented-out property owned by the employee.
type LetOutProperty struct {
	AnnualRent     decimal.Decimal `json:"annual_rent"`
	MunicipalTaxes decimal.Decimal `json:"municipal_taxes"`
	HasHomeLoan    bool            `json:"has_home_loan"`
	PrincipalPaid  decimal.Decimal `json:"principal_paid"`
	InterestPaid   decimal.Decimal `json:"interest_paid"`
}

type LetOutDetails struct {
	Enabled    bool             `json:"enabled"`
	Saved      bool             `json:"saved"`
	Properties []LetOutProperty `json:"properties"`
}

// OtherIncome aggregates non-salary income.
type OtherIncome struct {
	Enabled           bool            `json:"enabled"`
	Saved             bool            `json:"saved"`
	OtherSourceIncome decimal.Decimal `json:"other_source_income"`
	SavingsInterest   decimal.Decimal `json:"savings_interest"`
	FDInterest        decimal.Decimal `json:"fd_interest"`
	NSCInterest       decimal.Decimal `json:"nsc_interest"`
}

// Total is the sum of every other-income component, negatives clamped to zero.
func (o OtherIncome) Total() decimal.Decimal {
	return nonNeg(o.OtherSourceIncome).
		Add(nonNeg(o.SavingsInterest)).
		Add(nonNeg(o.FDInterest)).
		Add(nonNeg(o.NSCInterest))
}

// PreviousEmployment carries income and TDS from an earlier employer in the same financial year.
type PreviousEmployment struct {
	Enabled            bool            `json:"enabled"`
	Saved              bool            `json:"saved"`
	TotalTaxableSalary decimal.Decimal `json:"total_taxable_salary"`
	ProfessionalTax    decimal.Decimal `json:"professional_tax"`
	ProvidentFund      decimal.Decimal `json:"provident_fund"`
	TotalTDSDeducted   decimal.Decimal `json:"total_tds_deducted"`
}

// Declaration is everything an employee has declared for one financial year.
// The Saved flags only lock editing in the console; they are never read by the calculator.
type Declaration struct {
	LineItems          []LineItem         `json:"line_items"`
	HRA                HRADetails         `json:"hra"`
	HomeLoan           HomeLoan           `json:"home_loan"`
	LetOut             LetOutDetails      `json:"let_out"`
	OtherIncome        OtherIncome        `json:"other_income"`
	PreviousEmployment PreviousEmployment `json:"previous_employment"`
}

// PreviousTDS returns the TDS already withheld by an earlier employer, or zero when that section is disabled.
func (d Declaration) PreviousTDS() decimal.Decimal {
	if !d.PreviousEmployment.Enabled {
		return decimal.Zero
	}
	return nonNeg(d.PreviousEmployment.TotalTDSDeducted)
}

func nonNeg(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
