package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yisus17-stack/digicar-sub001/internal/application/usecase"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/service"
	"github.com/yisus17-stack/digicar-sub001/internal/infrastructure/persistence/postgres"
)

// ShowcaseHandler implements the ShowcaseService gRPC interface.
type ShowcaseHandler struct {
	UnimplementedShowcaseServiceServer
	browseCatalogUC   *usecase.BrowseCatalogUseCase
	getVehicleUC      *usecase.GetVehicleUseCase
	compareVehiclesUC *usecase.CompareVehiclesUseCase
	quoteLoanUC       *usecase.QuoteLoanUseCase
	logger            *slog.Logger
}

func NewShowcaseHandler(
	browseCatalogUC *usecase.BrowseCatalogUseCase,
	getVehicleUC *usecase.GetVehicleUseCase,
	compareVehiclesUC *usecase.CompareVehiclesUseCase,
	quoteLoanUC *usecase.QuoteLoanUseCase,
	logger *slog.Logger,
) *ShowcaseHandler {
	return &ShowcaseHandler{
		browseCatalogUC:   browseCatalogUC,
		getVehicleUC:      getVehicleUC,
		compareVehiclesUC: compareVehiclesUC,
		quoteLoanUC:       quoteLoanUC,
		logger:            logger,
	}
}

func (h *ShowcaseHandler) BrowseCatalog(ctx context.Context, req *BrowseCatalogRequest) (*BrowseCatalogResponse, error) {
	resp, err := h.browseCatalogUC.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("browse catalog failed", "error", err)
		return nil, h.toStatusError(err)
	}
	return &resp, nil
}

func (h *ShowcaseHandler) GetVehicle(ctx context.Context, req *GetVehicleRequest) (*GetVehicleResponse, error) {
	resp, err := h.getVehicleUC.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("get vehicle failed", "vehicle_id", req.VehicleID, "error", err)
		return nil, h.toStatusError(err)
	}
	return &resp, nil
}

func (h *ShowcaseHandler) CompareVehicles(ctx context.Context, req *CompareVehiclesRequest) (*CompareVehiclesResponse, error) {
	resp, err := h.compareVehiclesUC.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("compare vehicles failed",
			"vehicle_a_id", req.VehicleAID,
			"vehicle_b_id", req.VehicleBID,
			"error", err)
		return nil, h.toStatusError(err)
	}
	return &resp, nil
}

func (h *ShowcaseHandler) QuoteLoan(ctx context.Context, req *QuoteLoanRequest) (*QuoteLoanResponse, error) {
	resp, err := h.quoteLoanUC.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("quote loan failed", "vehicle_id", req.VehicleID, "error", err)
		return nil, h.toStatusError(err)
	}
	return &resp, nil
}

// toStatusError maps domain errors to gRPC status codes.
func (h *ShowcaseHandler) toStatusError(err error) error {
	switch {
	case errors.Is(err, postgres.ErrVehicleNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrPreconditionViolation):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
