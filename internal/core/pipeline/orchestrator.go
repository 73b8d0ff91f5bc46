package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/seyi-dev/docforge/internal/core"
	"github.com/seyi-dev/docforge/internal/models"
)

// Orchestrator runs the whole transformation for one request: validate,
// extract, estimate, then either the single-call path or the
// chunk→transform→assemble path. It owns the temporary uploaded file and
// removes it on every exit path.
type Orchestrator struct {
	extractor core.FileExtractor
	cfg       *Config
	validate  *validator.Validate

	small     *SmallDocumentProcessor
	processor *ChunkProcessor
	assembler *ResultAssembler
}

func NewOrchestrator(extractor core.FileExtractor, llm core.CompletionClient, cfg *Config) *Orchestrator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Orchestrator{
		extractor: extractor,
		cfg:       cfg,
		validate:  validator.New(),
		small:     NewSmallDocumentProcessor(llm, cfg),
		processor: NewChunkProcessor(llm, cfg),
		assembler: NewResultAssembler(llm, cfg),
	}
}

// Transform turns the uploaded file into a DocumentDraft. Error kinds the
// caller can dispatch on: core.ErrInvalidInput, core.ErrExtraction,
// core.ErrRateLimited, core.ErrContextLength; anything unexpected comes back
// wrapped in core.ErrTransformFailed. Per-chunk and synthesis failures are
// absorbed inside the pipeline and never surface here.
func (o *Orchestrator) Transform(ctx context.Context, req *models.TransformRequest) (*models.DocumentDraft, error) {
	// The temp upload is the only owned resource; release it exactly once,
	// whatever path we leave on.
	if req != nil && req.FilePath != "" {
		defer func() {
			if err := os.Remove(req.FilePath); err != nil && !os.IsNotExist(err) {
				log.Printf("orchestrator: could not remove temp file %s: %v", req.FilePath, err)
			}
		}()
	}

	if err := o.checkInput(req); err != nil {
		return nil, err
	}

	extraction, err := o.extractor.Extract(ctx, req.FilePath, req.OriginalName)
	if err != nil {
		if errors.Is(err, core.ErrExtraction) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", core.ErrExtraction, err)
	}

	draft, err := o.runBranch(ctx, extraction, req.Instructions, req.OriginalName)
	if err != nil {
		if errors.Is(err, core.ErrRateLimited) || errors.Is(err, core.ErrContextLength) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", core.ErrTransformFailed, err)
	}

	draft.SourceDocument = models.SourceDocument{
		Filename:     extraction.Metadata.OriginalName,
		FileType:     extraction.Metadata.Extension,
		OriginalSize: extraction.Metadata.Size,
		ProcessedAt:  time.Now().UTC(),
	}
	return draft, nil
}

// runBranch picks the processing path from the estimated input size.
func (o *Orchestrator) runBranch(ctx context.Context, extraction *models.RawExtraction, instructions, originalName string) (*models.DocumentDraft, error) {
	tokens := EstimateTokens(extraction.Content)
	if tokens <= o.cfg.SmallDocTokenBudget {
		return o.small.Process(ctx, extraction.Content, instructions, originalName)
	}

	chunks := ChunkContent(extraction.Content, o.cfg.MaxTokensPerChunk)
	log.Printf("orchestrator: %q estimated at %d tokens, processing in %d chunks", originalName, tokens, len(chunks))

	results, err := o.processor.ProcessAll(ctx, chunks, instructions, originalName)
	if err != nil {
		return nil, err
	}
	return o.assembler.Assemble(ctx, results, instructions, originalName), nil
}

// checkInput fails fast before anything downstream runs. A missing file or
// missing instructions is the caller's mistake, not a pipeline failure.
func (o *Orchestrator) checkInput(req *models.TransformRequest) error {
	if req == nil {
		return fmt.Errorf("%w: missing request", core.ErrInvalidInput)
	}
	if err := o.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}
	if _, err := os.Stat(req.FilePath); err != nil {
		return fmt.Errorf("%w: uploaded file not readable: %v", core.ErrInvalidInput, err)
	}
	return nil
}
