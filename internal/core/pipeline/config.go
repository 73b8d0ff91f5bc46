package pipeline

import "time"

// Config tunes the transformation pipeline.
//
// MaxTokensPerChunk: estimated-token budget per chunk on the chunked path.
// SmallDocTokenBudget: input size under which the single-call path is used;
// kept below the model window to leave headroom for the system prompt and
// the response.
// ChunkOutputTokens: output cap for each per-chunk transform call.
// SmallOutputTokens: output cap for the single-call path.
// SynthesisOutputTokens: output cap for the metadata synthesis call.
// SynthesisPrefixChars: how much of the assembled text the synthesis call
// sees; the full text is never sent.
// ChunkDelay: pause between consecutive chunk calls to stay inside the
// shared rate-limit budget.
// Temperature: sampling temperature for all calls.
type Config struct {
	MaxTokensPerChunk     int
	SmallDocTokenBudget   int
	ChunkOutputTokens     int
	SmallOutputTokens     int
	SynthesisOutputTokens int
	SynthesisPrefixChars  int
	ChunkDelay            time.Duration
	Temperature           float32
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxTokensPerChunk:     3000,
		SmallDocTokenBudget:   2500,
		ChunkOutputTokens:     1500,
		SmallOutputTokens:     3000,
		SynthesisOutputTokens: 400,
		SynthesisPrefixChars:  3000,
		ChunkDelay:            time.Second,
		Temperature:           0.4,
	}
}
