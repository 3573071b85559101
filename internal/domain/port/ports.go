package port

import (
	"context"
	"time"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/event"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// VehicleRepository supplies the catalog of vehicle records. The decision
// engines do not care whether the collection comes from a persistent store or
// a static fixture.
type VehicleRepository interface {
	FindAll(ctx context.Context) ([]model.VehicleRecord, error)
	FindByID(ctx context.Context, id string) (model.VehicleRecord, error)
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// ComparisonSummarizer turns a comparison matrix into free-form descriptive
// text. The text is opaque to this service; nothing in the core depends on it.
type ComparisonSummarizer interface {
	SummarizeComparison(ctx context.Context, matrix model.ComparisonMatrix) (string, error)
}

// SummaryCache stores summarizer output so a vehicle pair is summarized once.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes analytics events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
