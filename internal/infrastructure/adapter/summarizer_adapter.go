package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yisus17-stack/digicar-sub001/internal/domain/model"
)

// ---------------------------------------------------------------------------
// AI comparison summarizer – OpenAI-compatible chat completions client
// ---------------------------------------------------------------------------

// SummarizerConfig holds configuration for the AI summarizer adapter.
type SummarizerConfig struct {
	// BaseURL is the chat completions endpoint.
	BaseURL string
	// APIKey is the bearer credential.
	APIKey string
	// Model names the completion model to use.
	Model string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
}

// DefaultSummarizerConfig returns sensible defaults for development.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{
		BaseURL:        "https://api.openai.com/v1/chat/completions",
		Model:          "gpt-4o-mini",
		TimeoutSeconds: 30,
	}
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// AISummarizer implements port.ComparisonSummarizer by asking an
// OpenAI-compatible API for a short natural-language take on the diff.
type AISummarizer struct {
	cfg        SummarizerConfig
	httpClient *http.Client
}

// NewAISummarizer creates the adapter from config.
func NewAISummarizer(cfg SummarizerConfig) *AISummarizer {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		timeout = 30 * time.Second
	}
	return &AISummarizer{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SummarizeComparison asks the model to describe the differences between the
// two vehicles. The returned text is opaque to the rest of the service.
func (s *AISummarizer) SummarizeComparison(ctx context.Context, matrix model.ComparisonMatrix) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "You are an assistant on a vehicle showcase site. Summarize in at most " +
					"three sentences how two vehicles differ, based only on the attribute table provided. " +
					"Do not declare a winner.",
			},
			{Role: "user", Content: renderPrompt(matrix)},
		},
		MaxTokens: 200,
	})
	if err != nil {
		return "", fmt.Errorf("marshal summarizer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build summarizer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call summarizer: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read summarizer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summarizer returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode summarizer response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("summarizer returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func renderPrompt(matrix model.ComparisonMatrix) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vehicle A: %s, Vehicle B: %s\n", matrix.VehicleAID, matrix.VehicleBID)
	b.WriteString("attribute | A | B | differs\n")
	for _, row := range matrix.Rows {
		fmt.Fprintf(&b, "%s | %s | %s | %t\n", row.Attribute, row.ValueA, row.ValueB, row.IsDifferent)
	}
	return b.String()
}
