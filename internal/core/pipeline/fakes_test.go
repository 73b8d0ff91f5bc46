package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/seyi-dev/docforge/internal/models"
)

// llmCall records one Complete invocation for assertions.
type llmCall struct {
	Prompt    string
	MaxTokens int
	At        time.Time
}

// fakeLLM implements core.CompletionClient. Respond decides the reply per
// call; when nil every call returns "ok".
type fakeLLM struct {
	mu      sync.Mutex
	calls   []llmCall
	respond func(call llmCall) (string, error)
}

func (f *fakeLLM) Complete(_ context.Context, prompt string, maxOutputTokens int, _ float32) (string, error) {
	f.mu.Lock()
	call := llmCall{Prompt: prompt, MaxTokens: maxOutputTokens, At: time.Now()}
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.respond != nil {
		return f.respond(call)
	}
	return "ok", nil
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeExtractor implements core.FileExtractor with canned output.
type fakeExtractor struct {
	content string
	err     error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string, originalName string) (*models.RawExtraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.RawExtraction{
		Content: f.content,
		Metadata: models.ExtractionMetadata{
			OriginalName:  originalName,
			Extension:     "txt",
			MimeType:      "text/plain",
			Size:          int64(len(f.content)),
			ExtractedAt:   time.Now(),
			ContentLength: len(f.content),
		},
	}, nil
}

// testConfig is DefaultConfig without the production inter-chunk delay.
func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.ChunkDelay = 0
	return cfg
}
