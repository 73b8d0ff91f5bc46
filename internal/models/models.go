package models

import (
	"time"
)

// ExtractionMetadata describes the file a text extraction came from.
type ExtractionMetadata struct {
	OriginalName  string    `json:"original_name"`
	Extension     string    `json:"extension"`
	MimeType      string    `json:"mime_type"`
	Size          int64     `json:"size"`
	ExtractedAt   time.Time `json:"extracted_at"`
	ContentLength int       `json:"content_length"`
}

// RawExtraction is the immutable output of the file extraction step:
// the full plain text of the document plus metadata about its source.
type RawExtraction struct {
	Content  string             `json:"content"`
	Metadata ExtractionMetadata `json:"metadata"`
}

// Chunk is one bounded slice of extracted text. Indices are contiguous
// zero-based positions in the original text order.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// ChunkResult is the transform output for a single chunk. When the model
// call for a chunk fails, Failed is set and OutputText holds a placeholder
// naming the chunk, so the assembled document keeps its position visible.
type ChunkResult struct {
	Index      int    `json:"index"`
	OutputText string `json:"output_text"`
	Failed     bool   `json:"failed"`
}

// SourceDocument records where a draft came from.
type SourceDocument struct {
	Filename     string    `json:"filename"`
	FileType     string    `json:"file_type"`
	OriginalSize int64     `json:"original_size"`
	ProcessedAt  time.Time `json:"processed_at"`
}

// DocumentDraft is the artifact the pipeline returns to the caller:
// structured Markdown content plus derived metadata, ready to be handed
// to whatever stores drafts. Tags is never empty.
type DocumentDraft struct {
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Tags           []string       `json:"tags"`
	Summary        string         `json:"summary"`
	SourceDocument SourceDocument `json:"source_document"`
}

// TransformRequest carries everything the orchestrator needs for one run.
// FilePath points at the temporary uploaded file; the orchestrator owns it
// and removes it on every exit path.
type TransformRequest struct {
	FilePath     string `validate:"required"`
	OriginalName string `validate:"required"`
	Instructions string `validate:"required"`
	Size         int64
}
