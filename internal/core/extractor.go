package core

import (
	"context"

	"github.com/seyi-dev/docforge/internal/models"
)

// FileExtractor turns an uploaded file into plain text plus source metadata.
// Failures (unsupported format, corruption, oversize) wrap ErrExtraction.
type FileExtractor interface {
	Extract(ctx context.Context, filePath, originalName string) (*models.RawExtraction, error)
}

// DraftSink receives the finished draft. The transformation core only
// produces drafts; whatever persistence sits behind this interface is the
// caller's concern.
type DraftSink interface {
	SaveDraft(ctx context.Context, draft *models.DocumentDraft) error
}
