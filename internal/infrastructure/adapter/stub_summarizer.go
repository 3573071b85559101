package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
)

// StubSummarizer is a development/test adapter that renders a deterministic
// summary from the comparison matrix without any network call. It implements
// port.ComparisonSummarizer and is wired when no API key is configured.
type StubSummarizer struct{}

// NewStubSummarizer creates a new stub adapter.
func NewStubSummarizer() *StubSummarizer {
	return &StubSummarizer{}
}

// SummarizeComparison lists the attributes that differ between the vehicles.
func (s *StubSummarizer) SummarizeComparison(_ context.Context, matrix model.ComparisonMatrix) (string, error) {
	var differing []string
	for _, row := range matrix.Rows {
		if row.IsDifferent {
			differing = append(differing, string(row.Attribute))
		}
	}

	if len(differing) == 0 {
		return "These two vehicles have identical listed attributes.", nil
	}
	return fmt.Sprintf("These vehicles differ in %d attribute(s): %s.",
		len(differing), strings.Join(differing, ", ")), nil
}
