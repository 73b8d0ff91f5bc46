package app

import (
	"context"
	"log"
	"time"

	"github.com/seyi-dev/docforge/internal/config"
	"github.com/seyi-dev/docforge/internal/core/drafts"
	"github.com/seyi-dev/docforge/internal/core/extraction"
	"github.com/seyi-dev/docforge/internal/core/llm"
	"github.com/seyi-dev/docforge/internal/core/pipeline"
)

type App struct {
	LLM          *llm.GeminiLLM
	Orchestrator *pipeline.Orchestrator
	Server       *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	llmClient, err := llm.NewGeminiLLM(appCtx, cfg.AIAPIKey, cfg.GenModel)
	if err != nil {
		return nil, err
	}
	log.Println("LLM client initialized and ready.")

	useReadability := false
	maxUploadBytes := int64(cfg.MaxUploadMB) << 20
	extractor := extraction.NewDocconvExtractor(useReadability, maxUploadBytes)

	pipeCfg := pipeline.DefaultConfig()
	pipeCfg.MaxTokensPerChunk = cfg.MaxTokensPerChunk
	pipeCfg.SmallDocTokenBudget = cfg.SmallDocTokenBudget
	pipeCfg.ChunkOutputTokens = cfg.ChunkOutputTokens
	pipeCfg.ChunkDelay = time.Duration(cfg.ChunkDelayMs) * time.Millisecond

	orchestrator := pipeline.NewOrchestrator(extractor, llmClient, pipeCfg)

	server := NewServer(cfg, orchestrator, drafts.NewLogSink(), maxUploadBytes)

	return &App{LLM: llmClient, Orchestrator: orchestrator, Server: server}, nil
}

func (a *App) Close() {
	if a.LLM != nil {
		_ = a.LLM.Close()
	}
}
