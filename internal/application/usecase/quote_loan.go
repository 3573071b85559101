package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yisus17-stack/digicar-sub001/internal/application/dto"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/event"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/port"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/service"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/valueobject"
)

// QuoteLoanUseCase simulates financing a vehicle: it reads the vehicle's
// catalog price, runs the amortization engine, and optionally contrasts the
// requested term against alternatives.
type QuoteLoanUseCase struct {
	vehicleRepo port.VehicleRepository
	engine      *service.DecisionEngine
	publisher   port.EventPublisher
	logger      *slog.Logger
}

// NewQuoteLoanUseCase wires dependencies.
func NewQuoteLoanUseCase(
	vehicleRepo port.VehicleRepository,
	engine *service.DecisionEngine,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *QuoteLoanUseCase {
	return &QuoteLoanUseCase{
		vehicleRepo: vehicleRepo,
		engine:      engine,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute computes the amortization schedule for the vehicle and request.
func (uc *QuoteLoanUseCase) Execute(
	ctx context.Context,
	req dto.QuoteLoanRequest,
) (dto.QuoteLoanResponse, error) {
	vehicle, err := uc.vehicleRepo.FindByID(ctx, req.VehicleID)
	if err != nil {
		return dto.QuoteLoanResponse{}, fmt.Errorf("find vehicle: %w", err)
	}

	quoteReq := valueobject.LoanQuoteRequest{
		Price:             vehicle.Price,
		DownPayment:       req.DownPayment,
		AnnualRatePercent: req.AnnualRatePercent,
		TermMonths:        req.TermMonths,
	}

	schedule, err := uc.engine.Amortize(quoteReq)
	if err != nil {
		return dto.QuoteLoanResponse{}, fmt.Errorf("amortize: %w", err)
	}

	var alternatives []dto.TermQuoteResponse
	if len(req.AlternativeTerms) > 0 {
		quotes, err := uc.engine.CompareTerms(quoteReq, req.AlternativeTerms)
		if err != nil {
			return dto.QuoteLoanResponse{}, fmt.Errorf("compare terms: %w", err)
		}
		alternatives = toTermQuoteResponses(quotes)
	}

	evt := event.NewLoanQuoteGenerated(
		vehicle.ID, schedule.FinancedAmount, req.TermMonths, schedule.TotalInterest(),
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish loan quote event",
			"vehicle_id", vehicle.ID, "error", err)
	}

	return toQuoteResponse(vehicle.ID, quoteReq, schedule, alternatives), nil
}

func toQuoteResponse(
	vehicleID string,
	req valueobject.LoanQuoteRequest,
	schedule model.AmortizationSchedule,
	alternatives []dto.TermQuoteResponse,
) dto.QuoteLoanResponse {
	installments := make([]dto.InstallmentResponse, 0, len(schedule.Installments))
	for _, inst := range schedule.Installments {
		installments = append(installments, dto.InstallmentResponse{
			Period:           inst.Period,
			Payment:          inst.Payment,
			Interest:         inst.Interest,
			Principal:        inst.Principal,
			RemainingBalance: inst.RemainingBalance,
		})
	}

	return dto.QuoteLoanResponse{
		VehicleID:      vehicleID,
		Price:          req.Price,
		DownPayment:    req.DownPayment,
		FinancedAmount: schedule.FinancedAmount,
		TermMonths:     req.TermMonths,
		Installments:   installments,
		TotalInterest:  schedule.TotalInterest(),
		TotalCost:      schedule.TotalCost(),
		Alternatives:   alternatives,
	}
}

func toTermQuoteResponses(quotes []model.TermQuote) []dto.TermQuoteResponse {
	out := make([]dto.TermQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.TermQuoteResponse{
			TermMonths:     q.TermMonths,
			MonthlyPayment: q.MonthlyPayment,
			TotalInterest:  q.TotalInterest,
			TotalCost:      q.TotalCost,
		})
	}
	return out
}
