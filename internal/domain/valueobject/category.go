package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Category – immutable value object
// ---------------------------------------------------------------------------

// Category represents the body classification of a vehicle.
type Category struct {
	value string
}

const (
	categorySedan     = "SEDAN"
	categorySUV       = "SUV"
	categorySports    = "SPORTS"
	categoryTruck     = "TRUCK"
	categoryHatchback = "HATCHBACK"
)

var (
	CategorySedan     = Category{value: categorySedan}
	CategorySUV       = Category{value: categorySUV}
	CategorySports    = Category{value: categorySports}
	CategoryTruck     = Category{value: categoryTruck}
	CategoryHatchback = Category{value: categoryHatchback}
)

var validCategories = map[string]Category{
	categorySedan:     CategorySedan,
	categorySUV:       CategorySUV,
	categorySports:    CategorySports,
	categoryTruck:     CategoryTruck,
	categoryHatchback: CategoryHatchback,
}

// NewCategory creates a Category from a raw string.
func NewCategory(s string) (Category, error) {
	v, ok := validCategories[s]
	if !ok {
		return Category{}, fmt.Errorf("invalid vehicle category: %q", s)
	}
	return v, nil
}

// String returns the string representation of the category.
func (c Category) String() string { return c.value }

// IsZero returns true if the category has not been initialised.
func (c Category) IsZero() bool { return c.value == "" }

// Equal returns true when both categories carry the same value.
func (c Category) Equal(other Category) bool { return c.value == other.value }
