package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// FilterEngine – domain service for multi-facet catalog filtering
// ---------------------------------------------------------------------------

// discreteFacetValue extracts the canonical string value of a discrete facet.
// Membership tests are case-sensitive exact matches on these values.
var discreteFacetValue = map[valueobject.Facet]func(model.VehicleRecord) string{
	valueobject.FacetBrand:        func(v model.VehicleRecord) string { return v.Brand },
	valueobject.FacetCategory:     func(v model.VehicleRecord) string { return v.Category.String() },
	valueobject.FacetFuelType:     func(v model.VehicleRecord) string { return v.FuelType.String() },
	valueobject.FacetTransmission: func(v model.VehicleRecord) string { return v.Transmission },
	valueobject.FacetColor:        func(v model.VehicleRecord) string { return v.Color },
}

// rangeFacetValue extracts the numeric value of a range-constrained facet.
var rangeFacetValue = map[valueobject.Facet]func(model.VehicleRecord) decimal.Decimal{
	valueobject.FacetPrice: func(v model.VehicleRecord) decimal.Decimal { return v.Price },
	valueobject.FacetYear: func(v model.VehicleRecord) decimal.Decimal {
		return decimal.NewFromInt(int64(v.Year))
	},
	valueobject.FacetPassengerCapacity: func(v model.VehicleRecord) decimal.Decimal {
		return decimal.NewFromInt(int64(v.PassengerCapacity))
	},
}

// sortableFacets maps sortable facets to a numeric key, or nil when the facet
// sorts lexicographically. A vehicle without a mileage sorts as zero (a new
// vehicle has driven zero miles).
var sortableFacets = map[valueobject.Facet]func(model.VehicleRecord) decimal.Decimal{
	valueobject.FacetBrand:        nil,
	valueobject.FacetModel:        nil,
	valueobject.FacetCategory:     nil,
	valueobject.FacetFuelType:     nil,
	valueobject.FacetTransmission: nil,
	valueobject.FacetColor:        nil,
	valueobject.FacetYear: func(v model.VehicleRecord) decimal.Decimal {
		return decimal.NewFromInt(int64(v.Year))
	},
	valueobject.FacetPrice: func(v model.VehicleRecord) decimal.Decimal { return v.Price },
	valueobject.FacetPassengerCapacity: func(v model.VehicleRecord) decimal.Decimal {
		return decimal.NewFromInt(int64(v.PassengerCapacity))
	},
	valueobject.FacetEngineCylinders: func(v model.VehicleRecord) decimal.Decimal {
		return decimal.NewFromInt(int64(v.EngineCylinders))
	},
	valueobject.FacetMileage: func(v model.VehicleRecord) decimal.Decimal {
		if v.Mileage == nil {
			return decimal.Zero
		}
		return decimal.NewFromInt(*v.Mileage)
	},
}

// FilterEngine evaluates facet constraints against a vehicle collection,
// producing a filtered, optionally sorted working set. It is a pure function
// of its inputs: the input slice is never mutated and the output is freshly
// allocated.
type FilterEngine struct{}

// NewFilterEngine returns a new engine instance.
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// Apply returns the vehicles satisfying every constrained facet in criteria.
// Facets absent from the criteria impose no constraint; within one facet,
// accepted values combine with OR. Without a sort spec the output preserves
// input relative order; with one, the output is stably sorted by the named
// facet, ties broken by input order.
//
// A criteria or sort spec naming an unknown facet is a caller bug and fails
// with an InvalidInputError rather than being silently ignored.
func (e *FilterEngine) Apply(
	vehicles []model.VehicleRecord,
	criteria valueobject.FilterCriteria,
	sortSpec *valueobject.SortSpec,
) ([]model.VehicleRecord, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}
	if sortSpec != nil {
		if _, ok := sortableFacets[sortSpec.Facet]; !ok {
			return nil, invalidInput("sort", "facet "+string(sortSpec.Facet)+" is not sortable")
		}
	}

	out := make([]model.VehicleRecord, 0, len(vehicles))
	for _, v := range vehicles {
		if matches(v, criteria) {
			out = append(out, v)
		}
	}

	if sortSpec != nil {
		sortWorkingSet(out, *sortSpec)
	}
	return out, nil
}

func validateCriteria(criteria valueobject.FilterCriteria) error {
	for facet := range criteria.Values {
		if _, ok := discreteFacetValue[facet]; !ok {
			return invalidInput("criteria", "unknown discrete facet "+string(facet))
		}
	}
	for facet := range criteria.Ranges {
		if _, ok := rangeFacetValue[facet]; !ok {
			return invalidInput("criteria", "unknown range facet "+string(facet))
		}
	}
	return nil
}

func matches(v model.VehicleRecord, criteria valueobject.FilterCriteria) bool {
	for facet, accepted := range criteria.Values {
		value := discreteFacetValue[facet](v)
		if !containsString(accepted, value) {
			return false
		}
	}
	for facet, rng := range criteria.Ranges {
		if !rng.Contains(rangeFacetValue[facet](v)) {
			return false
		}
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func sortWorkingSet(vehicles []model.VehicleRecord, spec valueobject.SortSpec) {
	numericKey := sortableFacets[spec.Facet]
	desc := spec.Direction.IsDescending()

	sort.SliceStable(vehicles, func(i, j int) bool {
		var less bool
		if numericKey != nil {
			cmp := numericKey(vehicles[i]).Cmp(numericKey(vehicles[j]))
			if cmp == 0 {
				return false
			}
			less = cmp < 0
		} else {
			a, b := lexicalKey(vehicles[i], spec.Facet), lexicalKey(vehicles[j], spec.Facet)
			if a == b {
				return false
			}
			less = a < b
		}
		if desc {
			return !less
		}
		return less
	})
}

func lexicalKey(v model.VehicleRecord, facet valueobject.Facet) string {
	switch facet {
	case valueobject.FacetBrand:
		return v.Brand
	case valueobject.FacetModel:
		return v.Model
	case valueobject.FacetCategory:
		return v.Category.String()
	case valueobject.FacetFuelType:
		return v.FuelType.String()
	case valueobject.FacetTransmission:
		return v.Transmission
	case valueobject.FacetColor:
		return v.Color
	default:
		return ""
	}
}
