package pipeline

import (
	"context"
	"log"

	"github.com/seyi-dev/docforge/internal/core"
	"github.com/seyi-dev/docforge/internal/models"
)

// SmallDocumentProcessor handles documents that fit under the input token
// budget with a single model call.
type SmallDocumentProcessor struct {
	llm core.CompletionClient
	cfg *Config
}

func NewSmallDocumentProcessor(llm core.CompletionClient, cfg *Config) *SmallDocumentProcessor {
	return &SmallDocumentProcessor{llm: llm, cfg: cfg}
}

type smallDocResponse struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Summary string   `json:"summary"`
}

// Process issues the single transform call and expects a structured JSON
// reply. A malformed reply never fails the request: the raw text becomes
// the draft content and default metadata is substituted. Only the model
// call itself can return an error.
func (s *SmallDocumentProcessor) Process(ctx context.Context, content, instructions, originalName string) (*models.DocumentDraft, error) {
	raw, err := s.llm.Complete(ctx, buildSmallDocPrompt(content, instructions, originalName), s.cfg.SmallOutputTokens, s.cfg.Temperature)
	if err != nil {
		return nil, err
	}

	var parsed smallDocResponse
	if !decodeModelJSON(raw, &parsed) || parsed.Content == "" {
		log.Printf("pipeline: small-path response for %q was not the expected JSON, wrapping raw text", originalName)
		return &models.DocumentDraft{
			Title:   fallbackTitle(originalName),
			Content: raw,
			Tags:    defaultTags,
			Summary: defaultSummary,
		}, nil
	}

	if parsed.Title == "" {
		parsed.Title = fallbackTitle(originalName)
	}
	if len(parsed.Tags) == 0 {
		parsed.Tags = defaultTags
	}
	if parsed.Summary == "" {
		parsed.Summary = defaultSummary
	}

	return &models.DocumentDraft{
		Title:   parsed.Title,
		Content: parsed.Content,
		Tags:    parsed.Tags,
		Summary: parsed.Summary,
	}, nil
}
