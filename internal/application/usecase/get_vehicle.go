package usecase

import (
	"context"
	"fmt"

	"github.com/yisus17-stack/digicar-sub001/internal/application/dto"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/port"
)

// GetVehicleUseCase retrieves one vehicle by ID.
type GetVehicleUseCase struct {
	vehicleRepo port.VehicleRepository
}

// NewGetVehicleUseCase wires dependencies.
func NewGetVehicleUseCase(vehicleRepo port.VehicleRepository) *GetVehicleUseCase {
	return &GetVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute returns the vehicle response for the given ID.
func (uc *GetVehicleUseCase) Execute(
	ctx context.Context,
	req dto.GetVehicleRequest,
) (dto.VehicleResponse, error) {
	vehicle, err := uc.vehicleRepo.FindByID(ctx, req.VehicleID)
	if err != nil {
		return dto.VehicleResponse{}, fmt.Errorf("find vehicle: %w", err)
	}
	return toVehicleResponse(vehicle), nil
}
