package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yisus17-stack/digicar-sub001/internal/application/dto"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/port"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/service"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

// BrowseCatalogUseCase fetches the catalog and applies facet filtering and
// sorting to produce the visitor's working set.
type BrowseCatalogUseCase struct {
	vehicleRepo port.VehicleRepository
	engine      *service.DecisionEngine
}

// NewBrowseCatalogUseCase wires dependencies.
func NewBrowseCatalogUseCase(vehicleRepo port.VehicleRepository, engine *service.DecisionEngine) *BrowseCatalogUseCase {
	return &BrowseCatalogUseCase{vehicleRepo: vehicleRepo, engine: engine}
}

// Execute returns the filtered, sorted working set.
func (uc *BrowseCatalogUseCase) Execute(
	ctx context.Context,
	req dto.BrowseCatalogRequest,
) (dto.BrowseCatalogResponse, error) {
	vehicles, err := uc.vehicleRepo.FindAll(ctx)
	if err != nil {
		return dto.BrowseCatalogResponse{}, fmt.Errorf("load catalog: %w", err)
	}

	criteria := toCriteria(req)
	sortSpec := toSortSpec(req)

	filtered, err := uc.engine.Filter(vehicles, criteria, sortSpec)
	if err != nil {
		return dto.BrowseCatalogResponse{}, fmt.Errorf("filter catalog: %w", err)
	}

	out := make([]dto.VehicleResponse, 0, len(filtered))
	for _, v := range filtered {
		out = append(out, toVehicleResponse(v))
	}
	return dto.BrowseCatalogResponse{Vehicles: out, Total: len(out)}, nil
}

func toCriteria(req dto.BrowseCatalogRequest) valueobject.FilterCriteria {
	criteria := valueobject.FilterCriteria{
		Values: map[valueobject.Facet][]string{},
		Ranges: map[valueobject.Facet]valueobject.NumericRange{},
	}

	addValues := func(facet valueobject.Facet, values []string) {
		if len(values) > 0 {
			criteria.Values[facet] = values
		}
	}
	addValues(valueobject.FacetBrand, req.Brands)
	addValues(valueobject.FacetCategory, req.Categories)
	addValues(valueobject.FacetFuelType, req.FuelTypes)
	addValues(valueobject.FacetTransmission, req.Transmissions)
	addValues(valueobject.FacetColor, req.Colors)

	if req.PriceMin != nil || req.PriceMax != nil {
		criteria.Ranges[valueobject.FacetPrice] = decimalRange(req.PriceMin, req.PriceMax)
	}
	if req.YearMin != nil || req.YearMax != nil {
		criteria.Ranges[valueobject.FacetYear] = intRange(req.YearMin, req.YearMax)
	}
	if req.CapacityMin != nil || req.CapacityMax != nil {
		criteria.Ranges[valueobject.FacetPassengerCapacity] = intRange(req.CapacityMin, req.CapacityMax)
	}

	return criteria
}

// maxRangeBound caps an open-ended range. Catalog prices and years sit far
// below it.
var maxRangeBound = decimal.New(1, 15)

func decimalRange(min, max *decimal.Decimal) valueobject.NumericRange {
	rng := valueobject.NumericRange{Min: decimal.Zero, Max: maxRangeBound}
	if min != nil {
		rng.Min = *min
	}
	if max != nil {
		rng.Max = *max
	}
	return rng
}

func intRange(min, max *int) valueobject.NumericRange {
	rng := valueobject.NumericRange{Min: decimal.Zero, Max: maxRangeBound}
	if min != nil {
		rng.Min = decimal.NewFromInt(int64(*min))
	}
	if max != nil {
		rng.Max = decimal.NewFromInt(int64(*max))
	}
	return rng
}

func toSortSpec(req dto.BrowseCatalogRequest) *valueobject.SortSpec {
	if req.SortBy == "" {
		return nil
	}
	direction := valueobject.SortAscending
	if req.SortDescending {
		direction = valueobject.SortDescending
	}
	return &valueobject.SortSpec{
		Facet:     valueobject.Facet(req.SortBy),
		Direction: direction,
	}
}

func toVehicleResponse(v model.VehicleRecord) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:                v.ID,
		Brand:             v.Brand,
		Model:             v.Model,
		Year:              v.Year,
		Category:          v.Category.String(),
		FuelType:          v.FuelType.String(),
		Transmission:      v.Transmission,
		Color:             v.Color,
		PassengerCapacity: v.PassengerCapacity,
		EngineCylinders:   v.EngineCylinders,
		Features:          v.CopyFeatures(),
		Price:             v.Price,
		Mileage:           v.Mileage,
	}
}
