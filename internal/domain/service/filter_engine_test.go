package service_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/service"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

func mileage(v int64) *int64 { return &v }

// catalogFixture returns a small catalog with known ordering for filter and
// sort assertions.
func catalogFixture() []model.VehicleRecord {
	return []model.VehicleRecord{
		{
			ID: "veh-001", Brand: "Toyota", Model: "Corolla", Year: 2023,
			Category: valueobject.CategorySedan, FuelType: valueobject.FuelTypeGasoline,
			Transmission: "AUTOMATIC", Color: "White", PassengerCapacity: 5,
			EngineCylinders: 4, Features: []string{"Bluetooth", "Backup Camera"},
			Price: decimal.NewFromInt(24000),
		},
		{
			ID: "veh-002", Brand: "Tesla", Model: "Model 3", Year: 2024,
			Category: valueobject.CategorySedan, FuelType: valueobject.FuelTypeElectric,
			Transmission: "AUTOMATIC", Color: "Red", PassengerCapacity: 5,
			EngineCylinders: 0, Features: []string{"Autopilot", "Glass Roof"},
			Price: decimal.NewFromInt(42000),
		},
		{
			ID: "veh-003", Brand: "Ford", Model: "F-150", Year: 2022,
			Category: valueobject.CategoryTruck, FuelType: valueobject.FuelTypeGasoline,
			Transmission: "AUTOMATIC", Color: "Black", PassengerCapacity: 6,
			EngineCylinders: 8, Features: []string{"Tow Package"},
			Price: decimal.NewFromInt(38000), Mileage: mileage(15000),
		},
		{
			ID: "veh-004", Brand: "Nissan", Model: "Leaf", Year: 2023,
			Category: valueobject.CategoryHatchback, FuelType: valueobject.FuelTypeElectric,
			Transmission: "AUTOMATIC", Color: "Blue", PassengerCapacity: 5,
			EngineCylinders: 0, Features: []string{"Heated Seats"},
			Price: decimal.NewFromInt(28000),
		},
		{
			ID: "veh-005", Brand: "Honda", Model: "CR-V", Year: 2024,
			Category: valueobject.CategorySUV, FuelType: valueobject.FuelTypeHybrid,
			Transmission: "CVT", Color: "White", PassengerCapacity: 5,
			EngineCylinders: 4, Features: []string{"Lane Assist", "Sunroof"},
			Price: decimal.NewFromInt(34000),
		},
		{
			ID: "veh-006", Brand: "Porsche", Model: "911", Year: 2024,
			Category: valueobject.CategorySports, FuelType: valueobject.FuelTypeGasoline,
			Transmission: "MANUAL", Color: "Red", PassengerCapacity: 2,
			EngineCylinders: 6, Features: []string{"Sport Exhaust"},
			Price: decimal.NewFromInt(115000),
		},
		{
			// Same price as veh-005, later in input order: exercises sort
			// stability on ties.
			ID: "veh-007", Brand: "Mazda", Model: "CX-5", Year: 2023,
			Category: valueobject.CategorySUV, FuelType: valueobject.FuelTypeGasoline,
			Transmission: "AUTOMATIC", Color: "Gray", PassengerCapacity: 5,
			EngineCylinders: 4, Features: []string{"Sunroof"},
			Price: decimal.NewFromInt(34000), Mileage: mileage(8000),
		},
	}
}

func vehicleIDs(vehicles []model.VehicleRecord) []string {
	ids := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestFilterEngine_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	engine := service.NewFilterEngine()
	catalog := catalogFixture()

	out, err := engine.Apply(catalog, valueobject.FilterCriteria{}, nil)
	require.NoError(t, err)

	assert.Equal(t, vehicleIDs(catalog), vehicleIDs(out))
}

func TestFilterEngine_DiscreteFacet(t *testing.T) {
	engine := service.NewFilterEngine()

	criteria := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{
			valueobject.FacetFuelType: {"ELECTRIC"},
		},
	}
	out, err := engine.Apply(catalogFixture(), criteria, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"veh-002", "veh-004"}, vehicleIDs(out))
}

func TestFilterEngine_ValuesWithinFacetCombineWithOR(t *testing.T) {
	engine := service.NewFilterEngine()

	criteria := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{
			valueobject.FacetBrand: {"Toyota", "Honda"},
		},
	}
	out, err := engine.Apply(catalogFixture(), criteria, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"veh-001", "veh-005"}, vehicleIDs(out))
}

func TestFilterEngine_FacetsCombineWithAND(t *testing.T) {
	engine := service.NewFilterEngine()

	criteria := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{
			valueobject.FacetFuelType: {"ELECTRIC"},
		},
		Ranges: map[valueobject.Facet]valueobject.NumericRange{
			valueobject.FacetPrice: {Min: decimal.Zero, Max: decimal.NewFromInt(30000)},
		},
	}
	out, err := engine.Apply(catalogFixture(), criteria, nil)
	require.NoError(t, err)

	// Only the Leaf is both electric and at most 30000.
	assert.Equal(t, []string{"veh-004"}, vehicleIDs(out))
}

func TestFilterEngine_RangeBoundsAreInclusive(t *testing.T) {
	engine := service.NewFilterEngine()

	criteria := valueobject.FilterCriteria{
		Ranges: map[valueobject.Facet]valueobject.NumericRange{
			valueobject.FacetPrice: {
				Min: decimal.NewFromInt(34000),
				Max: decimal.NewFromInt(38000),
			},
		},
	}
	out, err := engine.Apply(catalogFixture(), criteria, nil)
	require.NoError(t, err)

	// Both ends of the range are included.
	assert.Equal(t, []string{"veh-003", "veh-005", "veh-007"}, vehicleIDs(out))
}

func TestFilterEngine_YearRange(t *testing.T) {
	engine := service.NewFilterEngine()

	criteria := valueobject.FilterCriteria{
		Ranges: map[valueobject.Facet]valueobject.NumericRange{
			valueobject.FacetYear: {
				Min: decimal.NewFromInt(2024),
				Max: decimal.NewFromInt(2024),
			},
		},
	}
	out, err := engine.Apply(catalogFixture(), criteria, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"veh-002", "veh-005", "veh-006"}, vehicleIDs(out))
}

func TestFilterEngine_NoMatchesYieldsEmptySet(t *testing.T) {
	engine := service.NewFilterEngine()

	criteria := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{
			valueobject.FacetBrand: {"Lada"},
		},
	}
	out, err := engine.Apply(catalogFixture(), criteria, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFilterEngine_UnknownFacetRejected(t *testing.T) {
	engine := service.NewFilterEngine()

	criteria := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{
			valueobject.Facet("horsepower"): {"300"},
		},
	}
	_, err := engine.Apply(catalogFixture(), criteria, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))
}

func TestFilterEngine_UnknownSortFacetRejected(t *testing.T) {
	engine := service.NewFilterEngine()

	spec := &valueobject.SortSpec{
		Facet:     valueobject.Facet("horsepower"),
		Direction: valueobject.SortAscending,
	}
	_, err := engine.Apply(catalogFixture(), valueobject.FilterCriteria{}, spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidInput))
}

func TestFilterEngine_SortByPriceAscending(t *testing.T) {
	engine := service.NewFilterEngine()

	spec := &valueobject.SortSpec{
		Facet:     valueobject.FacetPrice,
		Direction: valueobject.SortAscending,
	}
	out, err := engine.Apply(catalogFixture(), valueobject.FilterCriteria{}, spec)
	require.NoError(t, err)

	// veh-005 and veh-007 tie on price; input order breaks the tie.
	assert.Equal(t,
		[]string{"veh-001", "veh-004", "veh-005", "veh-007", "veh-003", "veh-002", "veh-006"},
		vehicleIDs(out))
}

func TestFilterEngine_SortByPriceDescendingKeepsTieOrder(t *testing.T) {
	engine := service.NewFilterEngine()

	spec := &valueobject.SortSpec{
		Facet:     valueobject.FacetPrice,
		Direction: valueobject.SortDescending,
	}
	out, err := engine.Apply(catalogFixture(), valueobject.FilterCriteria{}, spec)
	require.NoError(t, err)

	// Ties keep input order even when the sort is descending.
	assert.Equal(t,
		[]string{"veh-006", "veh-002", "veh-003", "veh-005", "veh-007", "veh-001", "veh-004"},
		vehicleIDs(out))
}

func TestFilterEngine_SortByBrandLexical(t *testing.T) {
	engine := service.NewFilterEngine()

	spec := &valueobject.SortSpec{
		Facet:     valueobject.FacetBrand,
		Direction: valueobject.SortAscending,
	}
	out, err := engine.Apply(catalogFixture(), valueobject.FilterCriteria{}, spec)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"veh-003", "veh-005", "veh-007", "veh-004", "veh-006", "veh-002", "veh-001"},
		vehicleIDs(out))
}

func TestFilterEngine_SortByColorLexical(t *testing.T) {
	engine := service.NewFilterEngine()

	// Every filterable discrete facet sorts lexically too.
	spec := &valueobject.SortSpec{
		Facet:     valueobject.FacetColor,
		Direction: valueobject.SortAscending,
	}
	out, err := engine.Apply(catalogFixture(), valueobject.FilterCriteria{}, spec)
	require.NoError(t, err)

	// Equal colors keep input order: veh-002 before veh-006 (Red), veh-001
	// before veh-005 (White).
	assert.Equal(t,
		[]string{"veh-003", "veh-004", "veh-007", "veh-002", "veh-006", "veh-001", "veh-005"},
		vehicleIDs(out))
}

func TestFilterEngine_SortByFuelTypeLexical(t *testing.T) {
	engine := service.NewFilterEngine()

	spec := &valueobject.SortSpec{
		Facet:     valueobject.FacetFuelType,
		Direction: valueobject.SortAscending,
	}
	out, err := engine.Apply(catalogFixture(), valueobject.FilterCriteria{}, spec)
	require.NoError(t, err)

	ids := vehicleIDs(out)
	// ELECTRIC < GASOLINE < HYBRID; ties keep input order.
	assert.Equal(t, []string{"veh-002", "veh-004"}, ids[:2])
	assert.Equal(t, "veh-005", ids[len(ids)-1])
}

func TestFilterEngine_SortByMileageTreatsMissingAsZero(t *testing.T) {
	engine := service.NewFilterEngine()

	spec := &valueobject.SortSpec{
		Facet:     valueobject.FacetMileage,
		Direction: valueobject.SortDescending,
	}
	out, err := engine.Apply(catalogFixture(), valueobject.FilterCriteria{}, spec)
	require.NoError(t, err)

	ids := vehicleIDs(out)
	assert.Equal(t, "veh-003", ids[0])
	assert.Equal(t, "veh-007", ids[1])
}

func TestFilterEngine_DoesNotMutateInput(t *testing.T) {
	engine := service.NewFilterEngine()
	catalog := catalogFixture()
	original := vehicleIDs(catalog)

	spec := &valueobject.SortSpec{
		Facet:     valueobject.FacetPrice,
		Direction: valueobject.SortDescending,
	}
	_, err := engine.Apply(catalog, valueobject.FilterCriteria{}, spec)
	require.NoError(t, err)

	assert.Equal(t, original, vehicleIDs(catalog))
}

func TestFilterEngine_AddingConstraintNeverGrowsResult(t *testing.T) {
	engine := service.NewFilterEngine()

	loose := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{
			valueobject.FacetTransmission: {"AUTOMATIC"},
		},
	}
	tight := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{
			valueobject.FacetTransmission: {"AUTOMATIC"},
			valueobject.FacetFuelType:     {"GASOLINE"},
		},
	}

	looseOut, err := engine.Apply(catalogFixture(), loose, nil)
	require.NoError(t, err)
	tightOut, err := engine.Apply(catalogFixture(), tight, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(tightOut), len(looseOut))
	// The tighter set is a subset of the looser one.
	looseIDs := map[string]struct{}{}
	for _, id := range vehicleIDs(looseOut) {
		looseIDs[id] = struct{}{}
	}
	for _, id := range vehicleIDs(tightOut) {
		_, ok := looseIDs[id]
		assert.True(t, ok, "vehicle %s missing from looser result", id)
	}
}

func TestFilterEngine_Idempotent(t *testing.T) {
	engine := service.NewFilterEngine()

	criteria := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{
			valueobject.FacetTransmission: {"AUTOMATIC"},
		},
	}
	once, err := engine.Apply(catalogFixture(), criteria, nil)
	require.NoError(t, err)

	twice, err := engine.Apply(once, criteria, nil)
	require.NoError(t, err)

	assert.Equal(t, vehicleIDs(once), vehicleIDs(twice))
}
