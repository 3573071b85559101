package valueobject

import "github.com/shopspring/decimal"

// ---------------------------------------------------------------------------
// Facet – named filter/comparison dimension of a vehicle
// ---------------------------------------------------------------------------

// Facet identifies a vehicle attribute usable as a filter or comparison
// dimension. The set of facets is closed; criteria naming anything else are
// rejected by the filter engine.
type Facet string

const (
	FacetBrand             Facet = "brand"
	FacetModel             Facet = "model"
	FacetYear              Facet = "year"
	FacetCategory          Facet = "category"
	FacetFuelType          Facet = "fuel_type"
	FacetTransmission      Facet = "transmission"
	FacetColor             Facet = "color"
	FacetPassengerCapacity Facet = "passenger_capacity"
	FacetEngineCylinders   Facet = "engine_cylinders"
	FacetFeatures          Facet = "features"
	FacetPrice             Facet = "price"
	FacetMileage           Facet = "mileage"
)

// ---------------------------------------------------------------------------
// FilterCriteria
// ---------------------------------------------------------------------------

// NumericRange is a closed [Min, Max] constraint, bounds inclusive.
type NumericRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Contains reports whether v lies within the range.
func (r NumericRange) Contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(r.Min) && v.LessThanOrEqual(r.Max)
}

// FilterCriteria maps facets to accepted-value constraints. Facets combine
// with logical AND; accepted values within one facet combine with logical OR.
// A facet absent from both maps is unconstrained.
type FilterCriteria struct {
	// Values holds discrete-facet constraints: the vehicle's canonical facet
	// value must exactly match one of the listed values.
	Values map[Facet][]string
	// Ranges holds numeric-facet constraints with inclusive bounds.
	Ranges map[Facet]NumericRange
}

// IsEmpty reports whether the criteria impose no constraint at all.
func (c FilterCriteria) IsEmpty() bool {
	return len(c.Values) == 0 && len(c.Ranges) == 0
}

// ---------------------------------------------------------------------------
// SortSpec
// ---------------------------------------------------------------------------

// SortDirection orders a sorted working set.
type SortDirection struct {
	value string
}

var (
	SortAscending  = SortDirection{value: "ASC"}
	SortDescending = SortDirection{value: "DESC"}
)

// String returns the string representation of the direction.
func (d SortDirection) String() string { return d.value }

// IsDescending reports whether the direction is descending.
func (d SortDirection) IsDescending() bool { return d.value == "DESC" }

// SortSpec names the facet to sort a filtered working set by. Ties are broken
// by input order (stable sort).
type SortSpec struct {
	Facet     Facet
	Direction SortDirection
}
