package model

import "github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"

// ---------------------------------------------------------------------------
// ComparisonMatrix value objects
// ---------------------------------------------------------------------------

// comparisonAttributes is the canonical, versioned ordering of comparison
// rows. It is a constant list rather than a reflective walk of VehicleRecord
// so that row order and presence stay stable across releases.
var comparisonAttributes = []valueobject.Facet{
	valueobject.FacetBrand,
	valueobject.FacetModel,
	valueobject.FacetYear,
	valueobject.FacetPrice,
	valueobject.FacetFuelType,
	valueobject.FacetTransmission,
	valueobject.FacetEngineCylinders,
	valueobject.FacetPassengerCapacity,
	valueobject.FacetColor,
	valueobject.FacetFeatures,
	valueobject.FacetMileage,
}

// ComparisonAttributes returns a copy of the canonical attribute ordering.
func ComparisonAttributes() []valueobject.Facet {
	out := make([]valueobject.Facet, len(comparisonAttributes))
	copy(out, comparisonAttributes)
	return out
}

// ComparisonRow is one attribute of a side-by-side vehicle comparison.
// Values are canonical string renderings of the underlying facet values;
// IsDifferent is derived from the typed values, not from the renderings.
type ComparisonRow struct {
	Attribute   valueobject.Facet
	ValueA      string
	ValueB      string
	IsDifferent bool
}

// ComparisonMatrix is the ordered, row-wise structured diff between two
// vehicles. Row order follows ComparisonAttributes.
type ComparisonMatrix struct {
	VehicleAID string
	VehicleBID string
	Rows       []ComparisonRow
}

// DifferenceCount returns the number of rows flagged as different.
func (m ComparisonMatrix) DifferenceCount() int {
	n := 0
	for _, row := range m.Rows {
		if row.IsDifferent {
			n++
		}
	}
	return n
}
