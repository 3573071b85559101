package dto

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// BrowseCatalogRequest carries facet constraints and an optional sort for a
// catalog browse. Empty slices and nil bounds leave the facet unconstrained.
type BrowseCatalogRequest struct {
	Brands        []string `json:"brands,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	FuelTypes     []string `json:"fuel_types,omitempty"`
	Transmissions []string `json:"transmissions,omitempty"`
	Colors        []string `json:"colors,omitempty"`

	PriceMin    *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax    *decimal.Decimal `json:"price_max,omitempty"`
	YearMin     *int             `json:"year_min,omitempty"`
	YearMax     *int             `json:"year_max,omitempty"`
	CapacityMin *int             `json:"capacity_min,omitempty"`
	CapacityMax *int             `json:"capacity_max,omitempty"`

	SortBy         string `json:"sort_by,omitempty"`
	SortDescending bool   `json:"sort_descending,omitempty"`
}

// GetVehicleRequest identifies one vehicle.
type GetVehicleRequest struct {
	VehicleID string `json:"vehicle_id"`
}

// CompareVehiclesRequest identifies the two vehicles to diff.
type CompareVehiclesRequest struct {
	VehicleAID string `json:"vehicle_a_id"`
	VehicleBID string `json:"vehicle_b_id"`
}

// QuoteLoanRequest carries loan parameters for a vehicle. The vehicle's
// catalog price is the loan price; AlternativeTerms optionally asks for
// summaries at other terms.
type QuoteLoanRequest struct {
	VehicleID         string          `json:"vehicle_id"`
	DownPayment       decimal.Decimal `json:"down_payment"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
	AlternativeTerms  []int           `json:"alternative_terms,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// VehicleResponse is the external representation of a vehicle record.
type VehicleResponse struct {
	ID                string          `json:"id"`
	Brand             string          `json:"brand"`
	Model             string          `json:"model"`
	Year              int             `json:"year"`
	Category          string          `json:"category"`
	FuelType          string          `json:"fuel_type"`
	Transmission      string          `json:"transmission"`
	Color             string          `json:"color"`
	PassengerCapacity int             `json:"passenger_capacity"`
	EngineCylinders   int             `json:"engine_cylinders"`
	Features          []string        `json:"features,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Mileage           *int64          `json:"mileage,omitempty"`
}

// BrowseCatalogResponse is the filtered, sorted working set.
type BrowseCatalogResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
}

// ComparisonRowResponse is one attribute of a side-by-side comparison.
type ComparisonRowResponse struct {
	Attribute   string `json:"attribute"`
	ValueA      string `json:"value_a"`
	ValueB      string `json:"value_b"`
	IsDifferent bool   `json:"is_different"`
}

// CompareVehiclesResponse carries the comparison matrix plus an optional
// AI-generated summary. The summary is best-effort opaque text and may be
// empty when the summarizer is unavailable.
type CompareVehiclesResponse struct {
	VehicleA VehicleResponse         `json:"vehicle_a"`
	VehicleB VehicleResponse         `json:"vehicle_b"`
	Rows     []ComparisonRowResponse `json:"rows"`
	Summary  string                  `json:"summary,omitempty"`
}

// InstallmentResponse is a single amortization schedule entry.
type InstallmentResponse struct {
	Period           int             `json:"period"`
	Payment          decimal.Decimal `json:"payment"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// TermQuoteResponse summarizes one candidate term.
type TermQuoteResponse struct {
	TermMonths     int             `json:"term_months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalCost      decimal.Decimal `json:"total_cost"`
}

// QuoteLoanResponse is the full loan simulation for one vehicle.
type QuoteLoanResponse struct {
	VehicleID      string                `json:"vehicle_id"`
	Price          decimal.Decimal       `json:"price"`
	DownPayment    decimal.Decimal       `json:"down_payment"`
	FinancedAmount decimal.Decimal       `json:"financed_amount"`
	TermMonths     int                   `json:"term_months"`
	Installments   []InstallmentResponse `json:"installments"`
	TotalInterest  decimal.Decimal       `json:"total_interest"`
	TotalCost      decimal.Decimal       `json:"total_cost"`
	Alternatives   []TermQuoteResponse   `json:"alternatives,omitempty"`
}
