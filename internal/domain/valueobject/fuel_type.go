package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// FuelType – immutable value object
// ---------------------------------------------------------------------------

// FuelType represents the propulsion energy source of a vehicle.
type FuelType struct {
	value string
}

const (
	fuelGasoline = "GASOLINE"
	fuelDiesel   = "DIESEL"
	fuelElectric = "ELECTRIC"
	fuelHybrid   = "HYBRID"
)

var (
	FuelTypeGasoline = FuelType{value: fuelGasoline}
	FuelTypeDiesel   = FuelType{value: fuelDiesel}
	FuelTypeElectric = FuelType{value: fuelElectric}
	FuelTypeHybrid   = FuelType{value: fuelHybrid}
)

var validFuelTypes = map[string]FuelType{
	fuelGasoline: FuelTypeGasoline,
	fuelDiesel:   FuelTypeDiesel,
	fuelElectric: FuelTypeElectric,
	fuelHybrid:   FuelTypeHybrid,
}

// NewFuelType creates a FuelType from a raw string.
func NewFuelType(s string) (FuelType, error) {
	v, ok := validFuelTypes[s]
	if !ok {
		return FuelType{}, fmt.Errorf("invalid fuel type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the fuel type.
func (f FuelType) String() string { return f.value }

// IsZero returns true if the fuel type has not been initialised.
func (f FuelType) IsZero() bool { return f.value == "" }

// Equal returns true when both fuel types carry the same value.
func (f FuelType) Equal(other FuelType) bool { return f.value == other.value }
