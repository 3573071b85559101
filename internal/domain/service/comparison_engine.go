package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ComparisonEngine – domain service for side-by-side attribute diffs
// ---------------------------------------------------------------------------

// ComparisonEngine derives a structured attribute diff between exactly two
// vehicles. It never ranks or scores; any textual recommendation built on the
// matrix comes from an external summarizer.
type ComparisonEngine struct{}

// NewComparisonEngine returns a new engine instance.
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{}
}

// Compare produces one row per attribute in the canonical ordering. Scalar
// facets use strict inequality; the features facet compares as a set, with
// order and duplicates irrelevant. Comparing a vehicle to itself yields a
// matrix where no row differs.
func (e *ComparisonEngine) Compare(a, b *model.VehicleRecord) (model.ComparisonMatrix, error) {
	if a == nil {
		return model.ComparisonMatrix{}, invalidInput("a", "comparison argument is nil")
	}
	if b == nil {
		return model.ComparisonMatrix{}, invalidInput("b", "comparison argument is nil")
	}
	if err := a.Validate(); err != nil {
		return model.ComparisonMatrix{}, precondition("a", err.Error())
	}
	if err := b.Validate(); err != nil {
		return model.ComparisonMatrix{}, precondition("b", err.Error())
	}

	attrs := model.ComparisonAttributes()
	rows := make([]model.ComparisonRow, 0, len(attrs))
	for _, attr := range attrs {
		rows = append(rows, compareAttribute(attr, *a, *b))
	}

	return model.ComparisonMatrix{
		VehicleAID: a.ID,
		VehicleBID: b.ID,
		Rows:       rows,
	}, nil
}

func compareAttribute(attr valueobject.Facet, a, b model.VehicleRecord) model.ComparisonRow {
	row := model.ComparisonRow{Attribute: attr}

	switch attr {
	case valueobject.FacetBrand:
		row.ValueA, row.ValueB = a.Brand, b.Brand
		row.IsDifferent = a.Brand != b.Brand
	case valueobject.FacetModel:
		row.ValueA, row.ValueB = a.Model, b.Model
		row.IsDifferent = a.Model != b.Model
	case valueobject.FacetYear:
		row.ValueA, row.ValueB = strconv.Itoa(a.Year), strconv.Itoa(b.Year)
		row.IsDifferent = a.Year != b.Year
	case valueobject.FacetPrice:
		row.ValueA, row.ValueB = a.Price.StringFixed(2), b.Price.StringFixed(2)
		row.IsDifferent = !a.Price.Equal(b.Price)
	case valueobject.FacetFuelType:
		row.ValueA, row.ValueB = a.FuelType.String(), b.FuelType.String()
		row.IsDifferent = !a.FuelType.Equal(b.FuelType)
	case valueobject.FacetTransmission:
		row.ValueA, row.ValueB = a.Transmission, b.Transmission
		row.IsDifferent = a.Transmission != b.Transmission
	case valueobject.FacetEngineCylinders:
		row.ValueA, row.ValueB = strconv.Itoa(a.EngineCylinders), strconv.Itoa(b.EngineCylinders)
		row.IsDifferent = a.EngineCylinders != b.EngineCylinders
	case valueobject.FacetPassengerCapacity:
		row.ValueA, row.ValueB = strconv.Itoa(a.PassengerCapacity), strconv.Itoa(b.PassengerCapacity)
		row.IsDifferent = a.PassengerCapacity != b.PassengerCapacity
	case valueobject.FacetColor:
		row.ValueA, row.ValueB = a.Color, b.Color
		row.IsDifferent = a.Color != b.Color
	case valueobject.FacetFeatures:
		row.ValueA, row.ValueB = renderFeatures(a), renderFeatures(b)
		row.IsDifferent = !featureSetsEqual(a.FeatureSet(), b.FeatureSet())
	case valueobject.FacetMileage:
		row.ValueA, row.ValueB = renderMileage(a), renderMileage(b)
		row.IsDifferent = !mileagesEqual(a.Mileage, b.Mileage)
	}

	return row
}

func featureSetsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for f := range a {
		if _, ok := b[f]; !ok {
			return false
		}
	}
	return true
}

// renderFeatures joins the feature set in sorted order so the rendering is
// deterministic regardless of input order.
func renderFeatures(v model.VehicleRecord) string {
	features := make([]string, 0, len(v.Features))
	for f := range v.FeatureSet() {
		features = append(features, f)
	}
	sort.Strings(features)
	return strings.Join(features, ", ")
}

func renderMileage(v model.VehicleRecord) string {
	if v.Mileage == nil {
		return ""
	}
	return strconv.FormatInt(*v.Mileage, 10)
}

func mileagesEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
