package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/seyi-dev/docforge/internal/core"
	"github.com/seyi-dev/docforge/internal/models"
)

// chunkSeparator joins transformed sections in the assembled document. It
// renders as a horizontal rule, keeping failed-section placeholders visibly
// separated from real content.
const chunkSeparator = "\n\n---\n\n"

// ResultAssembler joins chunk outputs in index order and derives the draft
// metadata with one synthesis call over a bounded prefix of the result.
type ResultAssembler struct {
	llm core.CompletionClient
	cfg *Config
}

func NewResultAssembler(llm core.CompletionClient, cfg *Config) *ResultAssembler {
	return &ResultAssembler{llm: llm, cfg: cfg}
}

type synthesisResponse struct {
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Summary string   `json:"summary"`
}

// Assemble builds the draft from the ordered chunk results. The synthesis
// call is best-effort: if it fails or replies with something other than the
// requested JSON, deterministic defaults are substituted and the draft is
// returned anyway. Assembly itself cannot fail.
func (a *ResultAssembler) Assemble(ctx context.Context, results []models.ChunkResult, instructions, originalName string) *models.DocumentDraft {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.OutputText
	}
	content := strings.Join(parts, chunkSeparator)

	meta := a.synthesize(ctx, content, instructions, originalName)

	return &models.DocumentDraft{
		Title:   meta.Title,
		Content: content,
		Tags:    meta.Tags,
		Summary: meta.Summary,
	}
}

// synthesize requests {title, tags, summary} as strict JSON over a prefix of
// the assembled text. The full text is never sent; the prefix bound keeps
// the call cheap regardless of document size.
func (a *ResultAssembler) synthesize(ctx context.Context, content, instructions, originalName string) synthesisResponse {
	prefix := content
	if len(prefix) > a.cfg.SynthesisPrefixChars {
		prefix = prefix[:a.cfg.SynthesisPrefixChars]
	}

	fallback := synthesisResponse{
		Title:   fallbackTitle(originalName),
		Tags:    defaultTags,
		Summary: defaultSummary,
	}

	raw, err := a.llm.Complete(ctx, buildSynthesisPrompt(prefix, instructions, originalName), a.cfg.SynthesisOutputTokens, a.cfg.Temperature)
	if err != nil {
		log.Printf("pipeline: metadata synthesis for %q failed, using defaults: %v", originalName, err)
		return fallback
	}

	var parsed synthesisResponse
	if !decodeModelJSON(raw, &parsed) {
		log.Printf("pipeline: metadata synthesis for %q returned unparsable output, using defaults", originalName)
		return fallback
	}

	if parsed.Title == "" {
		parsed.Title = fallback.Title
	}
	if len(parsed.Tags) == 0 {
		parsed.Tags = fallback.Tags
	}
	if parsed.Summary == "" {
		parsed.Summary = fallback.Summary
	}
	return parsed
}
