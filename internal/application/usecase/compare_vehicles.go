package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yisus17-stack/digicar-sub001/internal/application/dto"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/event"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/port"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/service"
)

// summaryTTL bounds how long a cached AI summary stays fresh. Vehicle data
// changes rarely, so a day is plenty.
const summaryTTL = 24 * time.Hour

// CompareVehiclesUseCase diffs two vehicles and decorates the matrix with a
// best-effort AI summary. The summary never gates the comparison: a failing
// summarizer degrades to an empty summary, not an error.
type CompareVehiclesUseCase struct {
	vehicleRepo port.VehicleRepository
	engine      *service.DecisionEngine
	summarizer  port.ComparisonSummarizer
	cache       port.SummaryCache
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewCompareVehiclesUseCase wires dependencies.
func NewCompareVehiclesUseCase(
	vehicleRepo port.VehicleRepository,
	engine *service.DecisionEngine,
	summarizer port.ComparisonSummarizer,
	cache port.SummaryCache,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CompareVehiclesUseCase {
	return &CompareVehiclesUseCase{
		vehicleRepo: vehicleRepo,
		engine:      engine,
		summarizer:  summarizer,
		cache:       cache,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute loads both vehicles, derives the comparison matrix, and attaches a
// cached or freshly generated summary.
func (uc *CompareVehiclesUseCase) Execute(
	ctx context.Context,
	req dto.CompareVehiclesRequest,
) (dto.CompareVehiclesResponse, error) {
	a, err := uc.vehicleRepo.FindByID(ctx, req.VehicleAID)
	if err != nil {
		return dto.CompareVehiclesResponse{}, fmt.Errorf("find vehicle %s: %w", req.VehicleAID, err)
	}
	b, err := uc.vehicleRepo.FindByID(ctx, req.VehicleBID)
	if err != nil {
		return dto.CompareVehiclesResponse{}, fmt.Errorf("find vehicle %s: %w", req.VehicleBID, err)
	}

	matrix, err := uc.engine.Compare(&a, &b)
	if err != nil {
		return dto.CompareVehiclesResponse{}, fmt.Errorf("compare vehicles: %w", err)
	}

	summary := uc.fetchSummary(ctx, matrix)

	evt := event.NewVehiclesCompared(a.ID, b.ID, matrix.DifferenceCount())
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		// Analytics only; the comparison result stands.
		uc.logger.WarnContext(ctx, "failed to publish comparison event",
			"vehicle_a", a.ID, "vehicle_b", b.ID, "error", err)
	}

	rows := make([]dto.ComparisonRowResponse, 0, len(matrix.Rows))
	for _, row := range matrix.Rows {
		rows = append(rows, dto.ComparisonRowResponse{
			Attribute:   string(row.Attribute),
			ValueA:      row.ValueA,
			ValueB:      row.ValueB,
			IsDifferent: row.IsDifferent,
		})
	}

	return dto.CompareVehiclesResponse{
		VehicleA: toVehicleResponse(a),
		VehicleB: toVehicleResponse(b),
		Rows:     rows,
		Summary:  summary,
	}, nil
}

func (uc *CompareVehiclesUseCase) fetchSummary(ctx context.Context, matrix model.ComparisonMatrix) string {
	key := summaryCacheKey(matrix.VehicleAID, matrix.VehicleBID)
	if cached, ok := uc.cache.Get(ctx, key); ok {
		return cached
	}

	summary, err := uc.summarizer.SummarizeComparison(ctx, matrix)
	if err != nil {
		uc.logger.WarnContext(ctx, "comparison summarizer unavailable",
			"vehicle_a", matrix.VehicleAID, "vehicle_b", matrix.VehicleBID, "error", err)
		return ""
	}

	if err := uc.cache.Set(ctx, key, summary, summaryTTL); err != nil {
		uc.logger.WarnContext(ctx, "failed to cache comparison summary", "key", key, "error", err)
	}
	return summary
}

func summaryCacheKey(vehicleAID, vehicleBID string) string {
	return fmt.Sprintf("comparison_summary:%s:%s", vehicleAID, vehicleBID)
}
