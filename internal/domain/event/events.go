package event

import (
	"github.com/shopspring/decimal"

	"github.com/yisus17-stack/digicar-sub001/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Showcase analytics events
// ---------------------------------------------------------------------------

// VehiclesCompared is raised when a visitor requests a side-by-side
// comparison of two vehicles.
type VehiclesCompared struct {
	events.BaseEvent
	VehicleAID          string `json:"vehicle_a_id"`
	VehicleBID          string `json:"vehicle_b_id"`
	DifferingAttributes int    `json:"differing_attributes"`
}

// NewVehiclesCompared builds the event keyed by the first vehicle of the pair.
func NewVehiclesCompared(vehicleAID, vehicleBID string, differing int) VehiclesCompared {
	return VehiclesCompared{
		BaseEvent:           events.NewBaseEvent("showcase.vehicles.compared", vehicleAID, "VehicleComparison"),
		VehicleAID:          vehicleAID,
		VehicleBID:          vehicleBID,
		DifferingAttributes: differing,
	}
}

// LoanQuoteGenerated is raised when a visitor simulates financing a vehicle.
type LoanQuoteGenerated struct {
	events.BaseEvent
	VehicleID      string          `json:"vehicle_id"`
	FinancedAmount decimal.Decimal `json:"financed_amount"`
	TermMonths     int             `json:"term_months"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// NewLoanQuoteGenerated builds the event keyed by the quoted vehicle.
func NewLoanQuoteGenerated(vehicleID string, financed decimal.Decimal, termMonths int, totalInterest decimal.Decimal) LoanQuoteGenerated {
	return LoanQuoteGenerated{
		BaseEvent:      events.NewBaseEvent("showcase.loan_quote.generated", vehicleID, "LoanQuote"),
		VehicleID:      vehicleID,
		FinancedAmount: financed,
		TermMonths:     termMonths,
		TotalInterest:  totalInterest,
	}
}
