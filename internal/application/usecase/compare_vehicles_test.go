package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yisus17-stack/digicar-sub001/internal/application/dto"
	"github.com/yisus17-stack/digicar-sub001/internal/application/usecase"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/event"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/service"
)

func newCompareUC(
	summarizer *mockSummarizer,
	cache *mockSummaryCache,
	publisher *mockEventPublisher,
) *usecase.CompareVehiclesUseCase {
	return usecase.NewCompareVehiclesUseCase(
		catalogRepo(), service.NewDecisionEngine(), summarizer, cache, publisher, testLogger())
}

func TestCompareVehicles_Execute(t *testing.T) {
	t.Run("produces matrix with summary", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		cache := &mockSummaryCache{}
		uc := newCompareUC(&mockSummarizer{}, cache, publisher)

		resp, err := uc.Execute(context.Background(), dto.CompareVehiclesRequest{
			VehicleAID: "veh-001",
			VehicleBID: "veh-002",
		})
		require.NoError(t, err)

		assert.Equal(t, "veh-001", resp.VehicleA.ID)
		assert.Equal(t, "veh-002", resp.VehicleB.ID)
		assert.Len(t, resp.Rows, len(model.ComparisonAttributes()))
		assert.Equal(t, "mock summary", resp.Summary)

		// Comparison event published with both vehicle IDs.
		require.Len(t, publisher.publishedEvents, 1)
		evt, ok := publisher.publishedEvents[0].(event.VehiclesCompared)
		require.True(t, ok)
		assert.Equal(t, "veh-001", evt.VehicleAID)
		assert.Equal(t, "veh-002", evt.VehicleBID)
		assert.Positive(t, evt.DifferingAttributes)

		// Summary cached for the pair.
		cached, ok := cache.stored["comparison_summary:veh-001:veh-002"]
		require.True(t, ok)
		assert.Equal(t, "mock summary", cached)
	})

	t.Run("serves summary from cache without calling summarizer", func(t *testing.T) {
		summarizer := &mockSummarizer{
			summarizeFunc: func(context.Context, model.ComparisonMatrix) (string, error) {
				t.Fatal("summarizer should not be called on cache hit")
				return "", nil
			},
		}
		cache := &mockSummaryCache{
			stored: map[string]string{
				"comparison_summary:veh-001:veh-002": "cached summary",
			},
		}
		uc := newCompareUC(summarizer, cache, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.CompareVehiclesRequest{
			VehicleAID: "veh-001",
			VehicleBID: "veh-002",
		})
		require.NoError(t, err)
		assert.Equal(t, "cached summary", resp.Summary)
	})

	t.Run("summarizer failure degrades to empty summary", func(t *testing.T) {
		summarizer := &mockSummarizer{
			summarizeFunc: func(context.Context, model.ComparisonMatrix) (string, error) {
				return "", fmt.Errorf("model overloaded")
			},
		}
		uc := newCompareUC(summarizer, &mockSummaryCache{}, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.CompareVehiclesRequest{
			VehicleAID: "veh-001",
			VehicleBID: "veh-002",
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Summary)
		assert.Len(t, resp.Rows, len(model.ComparisonAttributes()))
	})

	t.Run("publisher failure does not fail the comparison", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(context.Context, ...event.DomainEvent) error {
				return fmt.Errorf("broker unavailable")
			},
		}
		uc := newCompareUC(&mockSummarizer{}, &mockSummaryCache{}, publisher)

		resp, err := uc.Execute(context.Background(), dto.CompareVehiclesRequest{
			VehicleAID: "veh-001",
			VehicleBID: "veh-002",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Rows)
	})

	t.Run("unknown vehicle fails", func(t *testing.T) {
		uc := newCompareUC(&mockSummarizer{}, &mockSummaryCache{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.CompareVehiclesRequest{
			VehicleAID: "veh-001",
			VehicleBID: "veh-999",
		})
		assert.Error(t, err)
	})

	t.Run("cache write failure is tolerated", func(t *testing.T) {
		cache := &mockSummaryCache{
			setFunc: func(context.Context, string, string, time.Duration) error {
				return fmt.Errorf("redis down")
			},
		}
		uc := newCompareUC(&mockSummarizer{}, cache, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.CompareVehiclesRequest{
			VehicleAID: "veh-001",
			VehicleBID: "veh-002",
		})
		require.NoError(t, err)
		assert.Equal(t, "mock summary", resp.Summary)
	})
}
