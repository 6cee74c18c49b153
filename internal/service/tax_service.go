package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hrms/internal/metrics"
	"hrms/internal/model"
	"hrms/internal/repository"
	"hrms/pkg/taxcalc"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- DTOs ---

type ComputeTaxRequest struct {
	BaseAnnualSalary decimal.Decimal     `json:"base_annual_salary"`
	Declaration      taxcalc.Declaration `json:"declaration"`
}

type BreakdownResponse struct {
	Section80C        float64 `json:"section_80c"`
	Section80D        float64 `json:"section_80d"`
	HRAExemption      float64 `json:"hra_exemption"`
	HouseLoss         float64 `json:"house_property_loss"`
	OtherDeductions   float64 `json:"other_deductions"`
	Section80TTA      float64 `json:"section_80tta"`
	ProfessionalTax   float64 `json:"professional_tax"`
	StandardDeduction float64 `json:"standard_deduction"`
}

type TaxResultResponse struct {
	Regime            string            `json:"regime"`
	GrossTotalIncome  float64           `json:"gross_total_income"`
	ChapterDeductions float64           `json:"chapter_deductions"` // total subtracted from gross, standard deduction included
	TaxableIncome     float64           `json:"taxable_income"`
	IncomeTax         float64           `json:"income_tax"`
	Cess              float64           `json:"cess"`
	TotalTax          float64           `json:"total_tax"`
	Breakdown         BreakdownResponse `json:"breakdown"`
}

type TaxComparisonResponse struct {
	Old         TaxResultResponse `json:"old"`
	New         TaxResultResponse `json:"new"`
	Difference  float64           `json:"difference"`
	Recommended string            `json:"recommended"`
}

type WithholdingResponse struct {
	Regime          string  `json:"regime"`
	TotalTax        float64 `json:"total_tax"`
	PreviousTDS     float64 `json:"previous_tds"`
	Remaining       float64 `json:"remaining"`
	MonthsRemaining int     `json:"months_remaining"`
	Monthly         float64 `json:"monthly"`
}

type TaxSummaryResponse struct {
	EmployeeID       string                `json:"employee_id"`
	FinancialYear    string                `json:"financial_year"`
	BaseAnnualSalary float64               `json:"base_annual_salary"`
	Comparison       TaxComparisonResponse `json:"comparison"`
	Withholding      []WithholdingResponse `json:"withholding"`
}

type DeclarationResponse struct {
	ID            string              `json:"id"`
	EmployeeID    string              `json:"employee_id"`
	FinancialYear string              `json:"financial_year"`
	Declaration   taxcalc.Declaration `json:"declaration"`
	UpdatedAt     string              `json:"updated_at"`
}

// SummaryPublisher pushes a recomputed tax summary to live subscribers.
type SummaryPublisher interface {
	PublishTaxSummary(employeeID string, summary TaxSummaryResponse)
}

// --- Interface ---

type TaxService interface {
	Compute(ctx context.Context, req ComputeTaxRequest) (TaxComparisonResponse, error)
	SaveDeclaration(ctx context.Context, employeeID, financialYear string, decl taxcalc.Declaration, actor string) (DeclarationResponse, error)
	GetDeclaration(ctx context.Context, employeeID, financialYear string) (DeclarationResponse, error)
	ListDeclarations(ctx context.Context, employeeID string) ([]DeclarationResponse, error)
	GetTaxSummary(ctx context.Context, employeeID, financialYear string) (TaxSummaryResponse, error)
}

type taxService struct {
	employeeRepo    repository.EmployeeRepository
	declarationRepo repository.DeclarationRepository
	auditRepo       repository.AuditRepository
	txManager       repository.TransactionManager
	publisher       SummaryPublisher
	metrics         *metrics.Metrics
	log             *zap.Logger
	now             func() time.Time
}

type TaxServiceOption func(*taxService)

// WithPublisher enables live summary broadcasts after a declaration is saved.
func WithPublisher(p SummaryPublisher) TaxServiceOption {
	return func(s *taxService) { s.publisher = p }
}

func WithMetrics(m *metrics.Metrics) TaxServiceOption {
	return func(s *taxService) { s.metrics = m }
}

func WithLogger(log *zap.Logger) TaxServiceOption {
	return func(s *taxService) { s.log = log }
}

// WithClock overrides time.Now, used for sanction-date checks and withholding projections.
func WithClock(now func() time.Time) TaxServiceOption {
	return func(s *taxService) { s.now = now }
}

func NewTaxService(
	employeeRepo repository.EmployeeRepository,
	declarationRepo repository.DeclarationRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	opts ...TaxServiceOption,
) TaxService {
	s := &taxService{
		employeeRepo:    employeeRepo,
		declarationRepo: declarationRepo,
		auditRepo:       auditRepo,
		txManager:       txManager,
		log:             zap.NewNop(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- Implementation ---

// Compute runs a what-if comparison without touching storage.
func (s *taxService) Compute(_ context.Context, req ComputeTaxRequest) (TaxComparisonResponse, error) {
	if err := checkAmount("base_annual_salary", req.BaseAnnualSalary); err != nil {
		return TaxComparisonResponse{}, err
	}
	if !req.BaseAnnualSalary.IsPositive() {
		return TaxComparisonResponse{}, fmt.Errorf("base_annual_salary must be greater than 0: %w", ErrInvalidInput)
	}
	if err := validateAmounts(req.Declaration); err != nil {
		return TaxComparisonResponse{}, err
	}
	cmp := s.compare(req.Declaration, req.BaseAnnualSalary, "what_if")
	return toComparisonResponse(cmp), nil
}

func (s *taxService) SaveDeclaration(ctx context.Context, employeeID, financialYear string, decl taxcalc.Declaration, actor string) (DeclarationResponse, error) {
	resp, employee, err := s.saveDeclaration(ctx, employeeID, financialYear, decl, actor)
	s.metrics.DeclarationSaved(err == nil)
	if err != nil {
		return DeclarationResponse{}, err
	}

	if s.publisher != nil {
		fy, _ := taxcalc.ParseFinancialYear(financialYear)
		summary := s.summarize(employee, fy, decl, "stored")
		s.publisher.PublishTaxSummary(resp.EmployeeID, summary)
		s.metrics.SummaryBroadcast()
	}

	return resp, nil
}

func (s *taxService) saveDeclaration(ctx context.Context, employeeID, financialYear string, decl taxcalc.Declaration, actor string) (DeclarationResponse, *model.Employee, error) {
	if _, err := taxcalc.ParseFinancialYear(financialYear); err != nil {
		return DeclarationResponse{}, nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalidInput)
	}
	if err := validateDeclaration(decl, s.now()); err != nil {
		return DeclarationResponse{}, nil, err
	}

	data, err := json.Marshal(decl)
	if err != nil {
		return DeclarationResponse{}, nil, fmt.Errorf("failed to encode declaration: %w", err)
	}

	var (
		stored   *model.TaxDeclaration
		employee *model.Employee
	)
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		e, err := lookupEmployee(txCtx, s.employeeRepo, employeeID)
		if err != nil {
			return err
		}
		employee = e

		stored, err = s.declarationRepo.Upsert(txCtx, &model.TaxDeclaration{
			EmployeeID:    e.ID,
			FinancialYear: financialYear,
			Data:          datatypes.JSON(data),
		})
		if err != nil {
			return fmt.Errorf("failed to save declaration: %w", err)
		}

		return writeAudit(txCtx, s.auditRepo, actor, model.ActionSaveTaxDeclaration, stored.ID.String(), e.Name+" "+financialYear, map[string]interface{}{
			"employee_id":    e.ID.String(),
			"financial_year": financialYear,
			"sections":       enabledSections(decl),
			"line_items":     len(decl.LineItems),
		})
	})
	if err != nil {
		s.log.Warn("declaration save failed",
			zap.String("employee_id", employeeID),
			zap.String("financial_year", financialYear),
			zap.Error(err))
		return DeclarationResponse{}, nil, err
	}

	s.log.Info("declaration saved",
		zap.String("employee_id", employeeID),
		zap.String("financial_year", financialYear))

	resp, err := toDeclarationResponse(*stored)
	return resp, employee, err
}

func (s *taxService) GetDeclaration(ctx context.Context, employeeID, financialYear string) (DeclarationResponse, error) {
	_, stored, err := s.loadDeclaration(ctx, employeeID, financialYear)
	if err != nil {
		return DeclarationResponse{}, err
	}
	return toDeclarationResponse(*stored)
}

func (s *taxService) ListDeclarations(ctx context.Context, employeeID string) ([]DeclarationResponse, error) {
	employee, err := lookupEmployee(ctx, s.employeeRepo, employeeID)
	if err != nil {
		return nil, err
	}

	decls, err := s.declarationRepo.ListByEmployee(ctx, employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch declarations: %w", err)
	}

	res := make([]DeclarationResponse, 0, len(decls))
	for _, d := range decls {
		r, err := toDeclarationResponse(d)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

// GetTaxSummary compares both regimes for the stored declaration and projects the remaining TDS.
func (s *taxService) GetTaxSummary(ctx context.Context, employeeID, financialYear string) (TaxSummaryResponse, error) {
	employee, stored, err := s.loadDeclaration(ctx, employeeID, financialYear)
	if err != nil {
		return TaxSummaryResponse{}, err
	}

	decl, err := decodeDeclaration(stored.Data)
	if err != nil {
		return TaxSummaryResponse{}, err
	}
	fy, _ := taxcalc.ParseFinancialYear(stored.FinancialYear)

	return s.summarize(employee, fy, decl, "stored"), nil
}

// --- Helpers ---

func (s *taxService) loadDeclaration(ctx context.Context, employeeID, financialYear string) (*model.Employee, *model.TaxDeclaration, error) {
	if _, err := taxcalc.ParseFinancialYear(financialYear); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalidInput)
	}

	employee, err := lookupEmployee(ctx, s.employeeRepo, employeeID)
	if err != nil {
		return nil, nil, err
	}

	stored, err := s.declarationRepo.Find(ctx, employee.ID, financialYear)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("no declaration for %s: %w", financialYear, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to fetch declaration: %w", err)
	}
	return employee, stored, nil
}

func (s *taxService) compare(decl taxcalc.Declaration, base decimal.Decimal, source string) taxcalc.Comparison {
	start := time.Now()
	cmp := taxcalc.ComputeLiability(decl, base)
	s.metrics.ObserveComputation(source, string(cmp.Recommended), time.Since(start))
	return cmp
}

func (s *taxService) summarize(employee *model.Employee, fy taxcalc.FinancialYear, decl taxcalc.Declaration, source string) TaxSummaryResponse {
	cmp := s.compare(decl, employee.AnnualSalary, source)
	months := fy.MonthsRemaining(s.now())
	prevTDS := decl.PreviousTDS()

	return TaxSummaryResponse{
		EmployeeID:       employee.ID.String(),
		FinancialYear:    fy.String(),
		BaseAnnualSalary: employee.AnnualSalary.InexactFloat64(),
		Comparison:       toComparisonResponse(cmp),
		Withholding: []WithholdingResponse{
			toWithholdingResponse(taxcalc.ProjectWithholding(cmp.Old, prevTDS, months)),
			toWithholdingResponse(taxcalc.ProjectWithholding(cmp.New, prevTDS, months)),
		},
	}
}

// validateDeclaration checks what the console form checks: known sections, bounded amounts,
// well-formed dates and a home-loan sanction date that is not in the future.
// Rent periods are not cross-checked.
func validateDeclaration(decl taxcalc.Declaration, now time.Time) error {
	if err := validateAmounts(decl); err != nil {
		return err
	}
	for i, item := range decl.LineItems {
		switch item.Section {
		case taxcalc.Section80C, taxcalc.Section80D, taxcalc.SectionOthers:
		default:
			return fmt.Errorf("line_items[%d]: unknown section %q: %w", i, item.Section, ErrInvalidInput)
		}
	}

	for i, h := range decl.HRA.Houses {
		if _, err := parseOptionalDate(h.PeriodFrom); err != nil {
			return fmt.Errorf("hra.houses[%d].period_from: %w", i, err)
		}
		if _, err := parseOptionalDate(h.PeriodTo); err != nil {
			return fmt.Errorf("hra.houses[%d].period_to: %w", i, err)
		}
	}

	sanctioned, err := parseOptionalDate(decl.HomeLoan.SanctionDate)
	if err != nil {
		return fmt.Errorf("home_loan.sanction_date: %w", err)
	}
	if !sanctioned.IsZero() && sanctioned.After(now) {
		return fmt.Errorf("home_loan.sanction_date cannot be in the future: %w", ErrInvalidInput)
	}
	return nil
}

// validateAmounts bounds every money field of a declaration. Negative values pass and are
// clamped by the calculator.
func validateAmounts(decl taxcalc.Declaration) error {
	type field struct {
		name  string
		value decimal.Decimal
	}
	fields := []field{
		{"home_loan.principal_paid", decl.HomeLoan.PrincipalPaid},
		{"home_loan.interest_paid", decl.HomeLoan.InterestPaid},
		{"other_income.other_source_income", decl.OtherIncome.OtherSourceIncome},
		{"other_income.savings_interest", decl.OtherIncome.SavingsInterest},
		{"other_income.fd_interest", decl.OtherIncome.FDInterest},
		{"other_income.nsc_interest", decl.OtherIncome.NSCInterest},
		{"previous_employment.total_taxable_salary", decl.PreviousEmployment.TotalTaxableSalary},
		{"previous_employment.professional_tax", decl.PreviousEmployment.ProfessionalTax},
		{"previous_employment.provident_fund", decl.PreviousEmployment.ProvidentFund},
		{"previous_employment.total_tds_deducted", decl.PreviousEmployment.TotalTDSDeducted},
	}
	for i, item := range decl.LineItems {
		fields = append(fields, field{fmt.Sprintf("line_items[%d].amount", i), item.Amount})
	}
	for i, h := range decl.HRA.Houses {
		fields = append(fields, field{fmt.Sprintf("hra.houses[%d].monthly_rent", i), h.MonthlyRent})
	}
	for i, p := range decl.LetOut.Properties {
		prefix := fmt.Sprintf("let_out.properties[%d].", i)
		fields = append(fields,
			field{prefix + "annual_rent", p.AnnualRent},
			field{prefix + "municipal_taxes", p.MunicipalTaxes},
			field{prefix + "principal_paid", p.PrincipalPaid},
			field{prefix + "interest_paid", p.InterestPaid},
		)
	}

	for _, f := range fields {
		if err := checkAmount(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, ErrInvalidInput)
	}
	return t, nil
}

func enabledSections(decl taxcalc.Declaration) []string {
	sections := []string{}
	if decl.HRA.Enabled {
		sections = append(sections, "hra")
	}
	if decl.HomeLoan.Enabled {
		sections = append(sections, "home_loan")
	}
	if decl.LetOut.Enabled {
		sections = append(sections, "let_out")
	}
	if decl.OtherIncome.Enabled {
		sections = append(sections, "other_income")
	}
	if decl.PreviousEmployment.Enabled {
		sections = append(sections, "previous_employment")
	}
	return sections
}

func decodeDeclaration(data datatypes.JSON) (taxcalc.Declaration, error) {
	var decl taxcalc.Declaration
	if len(data) == 0 {
		return decl, nil
	}
	if err := json.Unmarshal(data, &decl); err != nil {
		return taxcalc.Declaration{}, fmt.Errorf("failed to decode stored declaration: %w", err)
	}
	return decl, nil
}

func toDeclarationResponse(d model.TaxDeclaration) (DeclarationResponse, error) {
	decl, err := decodeDeclaration(d.Data)
	if err != nil {
		return DeclarationResponse{}, err
	}
	return DeclarationResponse{
		ID:            d.ID.String(),
		EmployeeID:    d.EmployeeID.String(),
		FinancialYear: d.FinancialYear,
		Declaration:   decl,
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func toComparisonResponse(c taxcalc.Comparison) TaxComparisonResponse {
	return TaxComparisonResponse{
		Old:         toResultResponse(c.Old),
		New:         toResultResponse(c.New),
		Difference:  c.Difference.InexactFloat64(),
		Recommended: string(c.Recommended),
	}
}

func toResultResponse(r taxcalc.Result) TaxResultResponse {
	b := r.Breakdown
	return TaxResultResponse{
		Regime:            string(r.Regime),
		GrossTotalIncome:  r.GrossTotalIncome.InexactFloat64(),
		ChapterDeductions: r.ChapterDeductions.InexactFloat64(),
		TaxableIncome:     r.TaxableIncome.InexactFloat64(),
		IncomeTax:         r.IncomeTax.InexactFloat64(),
		Cess:              r.Cess.InexactFloat64(),
		TotalTax:          r.TotalTax.InexactFloat64(),
		Breakdown: BreakdownResponse{
			Section80C:        b.Section80C.InexactFloat64(),
			Section80D:        b.Section80D.InexactFloat64(),
			HRAExemption:      b.HRAExemption.InexactFloat64(),
			HouseLoss:         b.HouseLoss.InexactFloat64(),
			OtherDeductions:   b.OtherDeductions.InexactFloat64(),
			Section80TTA:      b.Section80TTA.InexactFloat64(),
			ProfessionalTax:   b.ProfessionalTax.InexactFloat64(),
			StandardDeduction: b.StandardDeduction.InexactFloat64(),
		},
	}
}

func toWithholdingResponse(w taxcalc.Withholding) WithholdingResponse {
	return WithholdingResponse{
		Regime:          string(w.Regime),
		TotalTax:        w.TotalTax.InexactFloat64(),
		PreviousTDS:     w.PreviousTDS.InexactFloat64(),
		Remaining:       w.Remaining.InexactFloat64(),
		MonthsRemaining: w.MonthsRemaining,
		Monthly:         w.Monthly.InexactFloat64(),
	}
}
