package service

import (
	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

// DecisionEngine exposes the filter, comparison, and financing engines behind
// one surface for the application layer. The engines are independent and never
// call each other.
type DecisionEngine struct {
	filter    *FilterEngine
	compare   *ComparisonEngine
	financing *FinancingEngine
}

// NewDecisionEngine wires the three engines.
func NewDecisionEngine() *DecisionEngine {
	return &DecisionEngine{
		filter:    NewFilterEngine(),
		compare:   NewComparisonEngine(),
		financing: NewFinancingEngine(),
	}
}

// Filter evaluates criteria against a vehicle collection.
func (d *DecisionEngine) Filter(
	vehicles []model.VehicleRecord,
	criteria valueobject.FilterCriteria,
	sortSpec *valueobject.SortSpec,
) ([]model.VehicleRecord, error) {
	return d.filter.Apply(vehicles, criteria, sortSpec)
}

// Compare derives the attribute diff between two vehicles.
func (d *DecisionEngine) Compare(a, b *model.VehicleRecord) (model.ComparisonMatrix, error) {
	return d.compare.Compare(a, b)
}

// Amortize computes a loan schedule for the request.
func (d *DecisionEngine) Amortize(req valueobject.LoanQuoteRequest) (model.AmortizationSchedule, error) {
	return d.financing.Amortize(req)
}

// CompareTerms quotes the request across candidate terms.
func (d *DecisionEngine) CompareTerms(
	req valueobject.LoanQuoteRequest,
	terms []int,
) ([]model.TermQuote, error) {
	return d.financing.CompareTerms(req, terms)
}
