package core

import "context"

// CompletionClient abstracts the external language-model service. Adapters
// should translate provider-specific failures into ErrRateLimited or
// ErrContextLength where they can tell, so the pipeline can surface them
// as distinguishable kinds.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, maxOutputTokens int, temperature float32) (string, error)
}
