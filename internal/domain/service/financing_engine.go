package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// FinancingEngine – domain service for fixed-rate loan amortization
// ---------------------------------------------------------------------------

const (
	// centPlaces is the monetary precision: every monetary amount in a
	// schedule is rounded to whole cents.
	centPlaces int32 = 2
	// ratePlaces is the precision of the monthly rate. A rate that rounds to
	// zero at this precision takes the zero-interest branch, which keeps the
	// annuity denominator away from zero for near-zero rates.
	ratePlaces int32 = 12
)

// FinancingEngine computes standard fixed-rate, fixed-term amortization
// schedules. All monetary arithmetic is decimal at cent precision; binary
// floating point is used only for the dimensionless annuity growth factor.
type FinancingEngine struct{}

// NewFinancingEngine returns a new engine instance.
func NewFinancingEngine() *FinancingEngine {
	return &FinancingEngine{}
}

// Amortize computes the schedule for req.
//
// The monthly payment follows the annuity formula
//
//	payment = financed * r / (1 - (1+r)^-n)
//
// with r the monthly rate and n the term. Rounding drift is absorbed into the
// final installment's principal so the closing balance is exactly zero and
// the principal portions sum exactly to the financed amount.
//
// A down payment covering the full price yields an empty schedule; that is a
// valid degenerate quote, not an error. A non-positive term, a negative rate,
// or a down payment outside [0, price] fails with an InvalidInputError.
func (e *FinancingEngine) Amortize(req valueobject.LoanQuoteRequest) (model.AmortizationSchedule, error) {
	if err := validateQuoteRequest(req); err != nil {
		return model.AmortizationSchedule{}, err
	}

	financed := req.FinancedAmount().Round(centPlaces)
	if financed.IsZero() {
		// Paid in full up front: zero installments, zero interest.
		return model.AmortizationSchedule{FinancedAmount: financed}, nil
	}

	monthlyRate := req.AnnualRatePercent.
		Div(decimal.NewFromInt(1200)).
		Round(ratePlaces)

	if monthlyRate.IsZero() {
		return zeroRateSchedule(financed, req.TermMonths), nil
	}
	return annuitySchedule(financed, monthlyRate, req.TermMonths), nil
}

// CompareTerms quotes the same request across candidate terms, summarizing
// each so a borrower can weigh monthly payment against total interest cost.
func (e *FinancingEngine) CompareTerms(
	req valueobject.LoanQuoteRequest,
	terms []int,
) ([]model.TermQuote, error) {
	quotes := make([]model.TermQuote, 0, len(terms))
	for _, term := range terms {
		alt := req
		alt.TermMonths = term
		schedule, err := e.Amortize(alt)
		if err != nil {
			return nil, err
		}

		var monthly decimal.Decimal
		if len(schedule.Installments) > 0 {
			monthly = schedule.Installments[0].Payment
		}
		quotes = append(quotes, model.TermQuote{
			TermMonths:     term,
			MonthlyPayment: monthly,
			TotalInterest:  schedule.TotalInterest(),
			TotalCost:      schedule.TotalCost(),
		})
	}
	return quotes, nil
}

func validateQuoteRequest(req valueobject.LoanQuoteRequest) error {
	if req.Price.IsNegative() {
		return invalidInput("price", "must not be negative")
	}
	if req.DownPayment.IsNegative() {
		return invalidInput("down_payment", "must not be negative")
	}
	if req.DownPayment.GreaterThan(req.Price) {
		return invalidInput("down_payment", "must not exceed price")
	}
	if req.AnnualRatePercent.IsNegative() {
		return invalidInput("annual_rate_percent", "must not be negative")
	}
	if req.TermMonths <= 0 {
		return invalidInput("term_months", "must be positive")
	}
	return nil
}

// zeroRateSchedule splits the financed amount evenly; the cent remainder of
// the division lands on the final installment. The split rounds down so the
// remainder is always non-negative, even for amounts smaller than one cent
// per period.
func zeroRateSchedule(financed decimal.Decimal, term int) model.AmortizationSchedule {
	even := financed.
		Div(decimal.NewFromInt(int64(term))).
		RoundDown(centPlaces)

	installments := make([]model.AmortizationInstallment, 0, term)
	remaining := financed
	for period := 1; period <= term; period++ {
		principal := even
		if period == term {
			principal = remaining
		}
		remaining = remaining.Sub(principal)

		installments = append(installments, model.AmortizationInstallment{
			Period:           period,
			Payment:          principal,
			Interest:         decimal.Zero,
			Principal:        principal,
			RemainingBalance: remaining,
		})
	}

	return model.AmortizationSchedule{FinancedAmount: financed, Installments: installments}
}

func annuitySchedule(financed, monthlyRate decimal.Decimal, term int) model.AmortizationSchedule {
	// (1+r)^n is dimensionless, so float64 is fine here; money stays decimal.
	factor := math.Pow(1+monthlyRate.InexactFloat64(), float64(term))
	payment := financed.
		Mul(monthlyRate).
		Mul(decimal.NewFromFloat(factor)).
		DivRound(decimal.NewFromFloat(factor-1), centPlaces)

	installments := make([]model.AmortizationInstallment, 0, term)
	remaining := financed
	for period := 1; period <= term; period++ {
		interest := remaining.Mul(monthlyRate).Round(centPlaces)
		principal := payment.Sub(interest)
		if principal.IsNegative() {
			principal = decimal.Zero
		}

		// The principal portion never exceeds the remaining balance, so the
		// balance cannot cross zero; once it hits zero any leftover periods
		// carry zero payment. The final installment absorbs the rounding
		// remainder so the balance closes at exactly zero.
		if principal.GreaterThan(remaining) || period == term {
			principal = remaining
		}
		total := principal.Add(interest)
		remaining = remaining.Sub(principal)

		installments = append(installments, model.AmortizationInstallment{
			Period:           period,
			Payment:          total,
			Interest:         interest,
			Principal:        principal,
			RemainingBalance: remaining,
		})
	}

	return model.AmortizationSchedule{FinancedAmount: financed, Installments: installments}
}
