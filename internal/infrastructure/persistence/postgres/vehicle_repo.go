package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

// ErrVehicleNotFound is returned when no vehicle matches the requested ID.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepo implements port.VehicleRepository against PostgreSQL.
type VehicleRepo struct {
	pool *pgxpool.Pool
}

// NewVehicleRepo creates a new PostgreSQL-backed vehicle repository.
func NewVehicleRepo(pool *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{pool: pool}
}

const vehicleColumns = `
	id, brand, model, year, category, fuel_type, transmission, color,
	passenger_capacity, engine_cylinders, features, price, mileage
`

// FindAll returns the full catalog in insertion order.
func (r *VehicleRepo) FindAll(ctx context.Context) ([]model.VehicleRecord, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []model.VehicleRecord
	for rows.Next() {
		v, err := scanVehicleRow(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// FindByID retrieves one vehicle by its opaque ID.
func (r *VehicleRepo) FindByID(ctx context.Context, id string) (model.VehicleRecord, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	v, err := scanVehicleRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VehicleRecord{}, fmt.Errorf("vehicle %s: %w", id, ErrVehicleNotFound)
		}
		return model.VehicleRecord{}, err
	}
	return v, nil
}

// Save inserts or updates a vehicle record. The admin backend owns writes;
// this service only needs them for fixtures and tooling.
func (r *VehicleRepo) Save(ctx context.Context, v model.VehicleRecord) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("invalid vehicle: %w", err)
	}

	query := `
		INSERT INTO vehicles (
			id, brand, model, year, category, fuel_type, transmission, color,
			passenger_capacity, engine_cylinders, features, price, mileage,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now(),now())
		ON CONFLICT (id) DO UPDATE SET
			brand              = EXCLUDED.brand,
			model              = EXCLUDED.model,
			year               = EXCLUDED.year,
			category           = EXCLUDED.category,
			fuel_type          = EXCLUDED.fuel_type,
			transmission       = EXCLUDED.transmission,
			color              = EXCLUDED.color,
			passenger_capacity = EXCLUDED.passenger_capacity,
			engine_cylinders   = EXCLUDED.engine_cylinders,
			features           = EXCLUDED.features,
			price              = EXCLUDED.price,
			mileage            = EXCLUDED.mileage,
			updated_at         = now()
	`
	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Brand, v.Model, v.Year, v.Category.String(), v.FuelType.String(),
		v.Transmission, v.Color, v.PassengerCapacity, v.EngineCylinders,
		v.Features, v.Price, v.Mileage,
	)
	if err != nil {
		return fmt.Errorf("save vehicle: %w", err)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanVehicleRow(s scannable) (model.VehicleRecord, error) {
	var (
		id, brand, vmodel            string
		year                         int
		categoryStr, fuelStr         string
		transmission, color          string
		passengerCapacity, cylinders int
		features                     []string
		price                        decimal.Decimal
		mileage                      *int64
	)

	err := s.Scan(
		&id, &brand, &vmodel, &year, &categoryStr, &fuelStr, &transmission,
		&color, &passengerCapacity, &cylinders, &features, &price, &mileage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VehicleRecord{}, err
		}
		return model.VehicleRecord{}, fmt.Errorf("scan vehicle: %w", err)
	}

	category, err := valueobject.NewCategory(categoryStr)
	if err != nil {
		return model.VehicleRecord{}, fmt.Errorf("parse category: %w", err)
	}
	fuelType, err := valueobject.NewFuelType(fuelStr)
	if err != nil {
		return model.VehicleRecord{}, fmt.Errorf("parse fuel type: %w", err)
	}

	return model.VehicleRecord{
		ID:                id,
		Brand:             brand,
		Model:             vmodel,
		Year:              year,
		Category:          category,
		FuelType:          fuelType,
		Transmission:      transmission,
		Color:             color,
		PassengerCapacity: passengerCapacity,
		EngineCylinders:   cylinders,
		Features:          features,
		Price:             price,
		Mileage:           mileage,
	}, nil
}
