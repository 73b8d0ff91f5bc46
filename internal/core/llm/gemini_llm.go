package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/seyi-dev/docforge/internal/core"
)

type GeminiLLM struct {
	client    *genai.Client
	modelName string
}

func NewGeminiLLM(ctx context.Context, apiKey, modelName string) (*GeminiLLM, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiLLM{client: cl, modelName: modelName}, nil
}

func (g *GeminiLLM) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Complete sends one prompt and returns the concatenated text reply.
// Quota and context-window rejections come back as core.ErrRateLimited and
// core.ErrContextLength so the pipeline can treat them differently from
// ordinary call failures.
func (g *GeminiLLM) Complete(ctx context.Context, prompt string, maxOutputTokens int, temperature float32) (string, error) {
	m := g.client.GenerativeModel(g.modelName)
	m.SetMaxOutputTokens(int32(maxOutputTokens))
	m.SetTemperature(temperature)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini generate: empty response")
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

// classifyError maps provider failures onto the pipeline's error kinds.
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", core.ErrRateLimited, err)
		case apiErr.Code == http.StatusBadRequest && mentionsTokenLimit(apiErr.Message):
			return fmt.Errorf("%w: %v", core.ErrContextLength, err)
		}
	}
	return fmt.Errorf("gemini generate: %w", err)
}

func mentionsTokenLimit(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "token") || strings.Contains(msg, "context")
}

var _ core.CompletionClient = (*GeminiLLM)(nil)
