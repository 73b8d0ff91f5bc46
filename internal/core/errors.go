package core

import "errors"

// Error kinds surfaced by the pipeline. Callers dispatch on these with
// errors.Is to map them to user-facing responses; everything else that
// escapes the orchestrator is wrapped in ErrTransformFailed.
var (
	// ErrInvalidInput means the request was rejected before any work ran
	// (missing file or instructions).
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtraction means the extraction collaborator could not produce
	// text (unsupported format, corrupt file, oversize upload).
	ErrExtraction = errors.New("text extraction failed")

	// ErrRateLimited means the model rejected a call for quota reasons.
	// No automatic retry is attempted beyond the fixed inter-chunk delay.
	ErrRateLimited = errors.New("model rate limit exceeded")

	// ErrContextLength means a single call exceeded the model's context
	// window even after chunking.
	ErrContextLength = errors.New("model context length exceeded")

	// ErrTransformFailed wraps any unexpected failure of the pipeline.
	ErrTransformFailed = errors.New("document transformation failed")
)
