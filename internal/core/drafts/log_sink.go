package drafts

import (
	"context"
	"log"

	"github.com/seyi-dev/docforge/internal/core"
	"github.com/seyi-dev/docforge/internal/models"
)

var _ core.DraftSink = (*LogSink)(nil)

// LogSink is the default DraftSink: it records that a draft was produced and
// nothing else. Deployments that store drafts swap in their own sink.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) SaveDraft(_ context.Context, draft *models.DocumentDraft) error {
	log.Printf("drafts: produced %q from %s (%d bytes source, %d tags)",
		draft.Title, draft.SourceDocument.Filename, draft.SourceDocument.OriginalSize, len(draft.Tags))
	return nil
}
