package valueobject

import "github.com/shopspring/decimal"

// LoanQuoteRequest carries the parameters of a fixed-rate, fixed-term loan
// quote. Validation happens in the financing engine; the request itself is a
// plain value.
type LoanQuoteRequest struct {
	// Price is the full vehicle price.
	Price decimal.Decimal
	// DownPayment is paid up front; the financed amount is Price - DownPayment.
	DownPayment decimal.Decimal
	// AnnualRatePercent is the nominal annual interest rate as a percentage
	// (e.g. 6 means 6% per year).
	AnnualRatePercent decimal.Decimal
	// TermMonths is the loan term in whole months.
	TermMonths int
}

// FinancedAmount returns Price - DownPayment.
func (r LoanQuoteRequest) FinancedAmount() decimal.Decimal {
	return r.Price.Sub(r.DownPayment)
}
