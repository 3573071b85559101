package model

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// Amortization value objects
// ---------------------------------------------------------------------------

// AmortizationInstallment is an immutable value object representing one
// monthly period in an amortization schedule.
type AmortizationInstallment struct {
	// Period is 1-based.
	Period int
	// Payment = Principal + Interest for this period.
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	// RemainingBalance is the balance after this payment; exactly zero on the
	// final installment.
	RemainingBalance decimal.Decimal
}

// AmortizationSchedule is the full per-period breakdown of a loan. A loan
// whose down payment covers the full price has a zero financed amount and no
// installments.
type AmortizationSchedule struct {
	FinancedAmount decimal.Decimal
	Installments   []AmortizationInstallment
}

// TotalInterest sums the interest portions across all installments.
func (s AmortizationSchedule) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, inst := range s.Installments {
		total = total.Add(inst.Interest)
	}
	return total
}

// TotalCost returns the financed amount plus all interest paid.
func (s AmortizationSchedule) TotalCost() decimal.Decimal {
	return s.FinancedAmount.Add(s.TotalInterest())
}

// TermQuote summarizes a quote at one candidate term, used by the loan UI to
// contrast payment size against total interest cost.
type TermQuote struct {
	TermMonths     int
	MonthlyPayment decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalCost      decimal.Decimal
}
