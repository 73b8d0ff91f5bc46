package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/seyi-dev/docforge/internal/core"
	"github.com/seyi-dev/docforge/internal/models"
)

// ChunkProcessor transforms chunks one at a time through the model. Calls
// are strictly sequential with a fixed delay between them: every request
// shares one external rate-limit budget, so latency is traded away on
// purpose.
type ChunkProcessor struct {
	llm core.CompletionClient
	cfg *Config
}

func NewChunkProcessor(llm core.CompletionClient, cfg *Config) *ChunkProcessor {
	return &ChunkProcessor{llm: llm, cfg: cfg}
}

// ProcessAll issues one transform call per chunk, in index order. A failed
// call does not abort the run: the failure is logged and recorded as a
// placeholder result so the document keeps its shape. Rate-limit and
// context-length errors are the exception and propagate, since every later
// call would hit the same wall. The returned slice always has one result
// per input chunk.
func (p *ChunkProcessor) ProcessAll(ctx context.Context, chunks []models.Chunk, instructions, originalName string) ([]models.ChunkResult, error) {
	results := make([]models.ChunkResult, 0, len(chunks))
	total := len(chunks)

	for i, c := range chunks {
		if i > 0 {
			select {
			case <-time.After(p.cfg.ChunkDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		prompt := buildChunkPrompt(c.Text, instructions, originalName, c.Index+1, total)
		out, err := p.llm.Complete(ctx, prompt, p.cfg.ChunkOutputTokens, p.cfg.Temperature)
		if err != nil {
			if errors.Is(err, core.ErrRateLimited) || errors.Is(err, core.ErrContextLength) || ctx.Err() != nil {
				return nil, err
			}
			log.Printf("pipeline: chunk %d/%d of %q failed: %v", c.Index+1, total, originalName, err)
			results = append(results, models.ChunkResult{
				Index:      c.Index,
				OutputText: fmt.Sprintf("> Section %d of %d could not be processed and was left out of this draft.", c.Index+1, total),
				Failed:     true,
			})
			continue
		}

		results = append(results, models.ChunkResult{Index: c.Index, OutputText: out})
	}

	return results, nil
}
