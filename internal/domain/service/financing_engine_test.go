package service_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/service"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

func quoteRequest(price, down, ratePercent float64, term int) valueobject.LoanQuoteRequest {
	return valueobject.LoanQuoteRequest{
		Price:             decimal.NewFromFloat(price),
		DownPayment:       decimal.NewFromFloat(down),
		AnnualRatePercent: decimal.NewFromFloat(ratePercent),
		TermMonths:        term,
	}
}

func TestFinancingEngine_StandardLoan(t *testing.T) {
	engine := service.NewFinancingEngine()

	// 20000 price, 2000 down, 6% annual, 36 months.
	schedule, err := engine.Amortize(quoteRequest(20000, 2000, 6, 36))
	require.NoError(t, err)

	require.Len(t, schedule.Installments, 36)
	assert.True(t, decimal.NewFromInt(18000).Equal(schedule.FinancedAmount))

	// Annuity payment for 18000 at 0.5% monthly over 36 months is 547.59.
	assert.Equal(t, "547.59", schedule.Installments[0].Payment.StringFixed(2))

	// First-period interest is 18000 * 0.005 = 90.00.
	assert.Equal(t, "90.00", schedule.Installments[0].Interest.StringFixed(2))

	assert.True(t, schedule.TotalInterest().IsPositive())
	assert.True(t, schedule.TotalCost().GreaterThan(schedule.FinancedAmount))
}

func TestFinancingEngine_PrincipalConservation(t *testing.T) {
	engine := service.NewFinancingEngine()

	cases := []struct {
		name    string
		request valueobject.LoanQuoteRequest
	}{
		{"standard", quoteRequest(20000, 2000, 6, 36)},
		{"small loan short term", quoteRequest(5000, 500, 12.5, 6)},
		{"long term high rate", quoteRequest(45999.99, 1234.56, 18.9, 72)},
		{"single installment", quoteRequest(9999.99, 0, 7, 1)},
		{"zero rate", quoteRequest(12000, 0, 0, 12)},
		{"micro loan zero rate long term", quoteRequest(1, 0, 0, 60)},
		{"micro loan with rate long term", quoteRequest(1, 0, 3, 60)},
		{"micro loan below one cent per period", quoteRequest(0.30, 0, 0, 60)},
		{"micro loan with rate very long term", quoteRequest(1, 0, 0.5, 120)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule, err := engine.Amortize(tc.request)
			require.NoError(t, err)
			require.NotEmpty(t, schedule.Installments)

			// Principal portions sum exactly to the financed amount.
			principalSum := decimal.Zero
			for _, inst := range schedule.Installments {
				principalSum = principalSum.Add(inst.Principal)
			}
			assert.True(t, schedule.FinancedAmount.Equal(principalSum),
				"principal sum %s != financed %s", principalSum, schedule.FinancedAmount)

			// Balance is non-increasing, never negative, strictly decreasing
			// while principal is paid, and closes at exactly zero.
			prev := schedule.FinancedAmount
			for _, inst := range schedule.Installments {
				assert.False(t, inst.RemainingBalance.IsNegative(),
					"period %d balance went negative: %s", inst.Period, inst.RemainingBalance)
				if inst.Principal.IsPositive() {
					assert.True(t, inst.RemainingBalance.LessThan(prev),
						"period %d balance did not decrease", inst.Period)
				} else {
					assert.True(t, inst.RemainingBalance.Equal(prev),
						"period %d balance changed without principal", inst.Period)
				}
				prev = inst.RemainingBalance
			}
			final := schedule.Installments[len(schedule.Installments)-1]
			assert.True(t, final.RemainingBalance.IsZero(),
				"final balance %s != 0", final.RemainingBalance)

			// Every amount is non-negative and each payment decomposes into
			// principal + interest.
			for _, inst := range schedule.Installments {
				assert.False(t, inst.Payment.IsNegative(),
					"period %d payment is negative: %s", inst.Period, inst.Payment)
				assert.False(t, inst.Principal.IsNegative(),
					"period %d principal is negative: %s", inst.Period, inst.Principal)
				assert.False(t, inst.Interest.IsNegative(),
					"period %d interest is negative: %s", inst.Period, inst.Interest)
				assert.True(t, inst.Payment.Equal(inst.Principal.Add(inst.Interest)),
					"period %d payment != principal + interest", inst.Period)
			}
		})
	}
}

func TestFinancingEngine_FullDownPayment(t *testing.T) {
	engine := service.NewFinancingEngine()

	schedule, err := engine.Amortize(quoteRequest(10000, 10000, 5, 24))
	require.NoError(t, err)

	assert.True(t, schedule.FinancedAmount.IsZero())
	assert.Empty(t, schedule.Installments)
	assert.True(t, schedule.TotalInterest().IsZero())
	assert.True(t, schedule.TotalCost().IsZero())
}

func TestFinancingEngine_ZeroRate(t *testing.T) {
	engine := service.NewFinancingEngine()

	schedule, err := engine.Amortize(quoteRequest(12000, 0, 0, 12))
	require.NoError(t, err)

	require.Len(t, schedule.Installments, 12)
	assert.True(t, schedule.TotalInterest().IsZero())

	for _, inst := range schedule.Installments {
		assert.Equal(t, "1000.00", inst.Payment.StringFixed(2))
		assert.True(t, inst.Interest.IsZero())
	}
	assert.True(t, decimal.NewFromInt(12000).Equal(schedule.TotalCost()))
}

func TestFinancingEngine_ZeroRateRemainderOnFinalInstallment(t *testing.T) {
	engine := service.NewFinancingEngine()

	// 1000 over 3 months: 333.33 + 333.33 + 333.34.
	schedule, err := engine.Amortize(quoteRequest(1000, 0, 0, 3))
	require.NoError(t, err)

	require.Len(t, schedule.Installments, 3)
	assert.Equal(t, "333.33", schedule.Installments[0].Payment.StringFixed(2))
	assert.Equal(t, "333.33", schedule.Installments[1].Payment.StringFixed(2))
	assert.Equal(t, "333.34", schedule.Installments[2].Payment.StringFixed(2))
	assert.True(t, schedule.Installments[2].RemainingBalance.IsZero())
}

func TestFinancingEngine_MicroLoanZeroRateSplitsWithoutOvershoot(t *testing.T) {
	engine := service.NewFinancingEngine()

	// 1.00 over 60 months: the even split rounds down to 0.01, so the final
	// installment absorbs a positive remainder instead of going negative.
	schedule, err := engine.Amortize(quoteRequest(1, 0, 0, 60))
	require.NoError(t, err)

	require.Len(t, schedule.Installments, 60)
	for _, inst := range schedule.Installments[:59] {
		assert.Equal(t, "0.01", inst.Payment.StringFixed(2))
	}
	final := schedule.Installments[59]
	assert.Equal(t, "0.41", final.Payment.StringFixed(2))
	assert.True(t, final.RemainingBalance.IsZero())
}

func TestFinancingEngine_MicroLoanWithRateHasZeroPaymentTail(t *testing.T) {
	engine := service.NewFinancingEngine()

	// 1.00 at 3% over 60 months: the cent-rounded payment retires the balance
	// early; the remaining periods carry zero payment rather than draining
	// the balance below zero.
	schedule, err := engine.Amortize(quoteRequest(1, 0, 3, 60))
	require.NoError(t, err)

	require.Len(t, schedule.Installments, 60)

	principalSum := decimal.Zero
	for _, inst := range schedule.Installments {
		assert.False(t, inst.Payment.IsNegative(),
			"period %d payment is negative: %s", inst.Period, inst.Payment)
		assert.False(t, inst.RemainingBalance.IsNegative(),
			"period %d balance is negative: %s", inst.Period, inst.RemainingBalance)
		principalSum = principalSum.Add(inst.Principal)
	}
	assert.True(t, decimal.NewFromInt(1).Equal(principalSum))

	final := schedule.Installments[59]
	assert.True(t, final.Payment.IsZero())
	assert.True(t, final.RemainingBalance.IsZero())
}

func TestFinancingEngine_NegligibleRateTakesZeroRateBranch(t *testing.T) {
	engine := service.NewFinancingEngine()

	req := valueobject.LoanQuoteRequest{
		Price:             decimal.NewFromInt(6000),
		DownPayment:       decimal.Zero,
		AnnualRatePercent: decimal.RequireFromString("0.0000000001"),
		TermMonths:        6,
	}
	schedule, err := engine.Amortize(req)
	require.NoError(t, err)

	require.Len(t, schedule.Installments, 6)
	assert.True(t, schedule.TotalInterest().IsZero())
	assert.Equal(t, "1000.00", schedule.Installments[0].Payment.StringFixed(2))
}

func TestFinancingEngine_InvalidInput(t *testing.T) {
	engine := service.NewFinancingEngine()

	cases := []struct {
		name    string
		request valueobject.LoanQuoteRequest
		field   string
	}{
		{"negative price", quoteRequest(-1, 0, 5, 12), "price"},
		{"negative down payment", quoteRequest(10000, -500, 5, 12), "down_payment"},
		{"down payment exceeds price", quoteRequest(10000, 10001, 5, 12), "down_payment"},
		{"negative rate", quoteRequest(10000, 0, -0.5, 12), "annual_rate_percent"},
		{"zero term", quoteRequest(10000, 0, 5, 0), "term_months"},
		{"negative term", quoteRequest(10000, 0, 5, -12), "term_months"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Amortize(tc.request)
			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrInvalidInput))

			var invalid *service.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.field, invalid.Field)
		})
	}
}

func TestFinancingEngine_CompareTerms(t *testing.T) {
	engine := service.NewFinancingEngine()

	base := quoteRequest(20000, 0, 6, 36)
	quotes, err := engine.CompareTerms(base, []int{24, 36, 48})
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	// Longer terms trade lower monthly payments for higher total interest.
	for i := 1; i < len(quotes); i++ {
		assert.True(t, quotes[i].MonthlyPayment.LessThan(quotes[i-1].MonthlyPayment),
			"monthly payment should decrease with term")
		assert.True(t, quotes[i].TotalInterest.GreaterThan(quotes[i-1].TotalInterest),
			"total interest should increase with term")
	}
	assert.Equal(t, 24, quotes[0].TermMonths)
	assert.Equal(t, 48, quotes[2].TermMonths)
}

func TestFinancingEngine_CompareTermsRejectsInvalidTerm(t *testing.T) {
	engine := service.NewFinancingEngine()

	_, err := engine.CompareTerms(quoteRequest(20000, 0, 6, 36), []int{24, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))
}
