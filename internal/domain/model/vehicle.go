package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// VehicleRecord value object (catalog data model)
// ---------------------------------------------------------------------------

// VehicleRecord is the canonical, immutable shape of one vehicle in the
// catalog. It is constructed by the data layer (repository or fixture) and is
// never mutated by the decision engines.
type VehicleRecord struct {
	ID                string
	Brand             string
	Model             string
	Year              int
	Category          valueobject.Category
	FuelType          valueobject.FuelType
	Transmission      string
	Color             string
	PassengerCapacity int
	EngineCylinders   int
	Features          []string
	Price             decimal.Decimal
	// Mileage is absent for new vehicles.
	Mileage *int64
}

// Validate checks the structural invariants of the record. Out-of-range but
// well-formed values (e.g. an implausible year) are the producer's problem and
// are not rejected here.
func (v VehicleRecord) Validate() error {
	if v.ID == "" {
		return errors.New("vehicle ID is required")
	}
	if v.Brand == "" {
		return errors.New("brand is required")
	}
	if v.Model == "" {
		return errors.New("model is required")
	}
	if v.Category.IsZero() {
		return errors.New("category is required")
	}
	if v.FuelType.IsZero() {
		return errors.New("fuel type is required")
	}
	if v.PassengerCapacity < 1 {
		return fmt.Errorf("passenger capacity must be at least 1, got %d", v.PassengerCapacity)
	}
	if v.EngineCylinders < 0 {
		return fmt.Errorf("engine cylinders must not be negative, got %d", v.EngineCylinders)
	}
	if v.Price.IsNegative() {
		return fmt.Errorf("price must not be negative, got %s", v.Price)
	}
	if v.Mileage != nil && *v.Mileage < 0 {
		return fmt.Errorf("mileage must not be negative, got %d", *v.Mileage)
	}
	return nil
}

// FeatureSet returns the feature tags as a set. Order and duplicates in the
// underlying slice are irrelevant.
func (v VehicleRecord) FeatureSet() map[string]struct{} {
	set := make(map[string]struct{}, len(v.Features))
	for _, f := range v.Features {
		set[f] = struct{}{}
	}
	return set
}

// CopyFeatures returns a defensive copy of the feature slice.
func (v VehicleRecord) CopyFeatures() []string {
	if v.Features == nil {
		return nil
	}
	out := make([]string, len(v.Features))
	copy(out, v.Features)
	return out
}
