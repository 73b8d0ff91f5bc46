package pipeline

import (
	"context"

	"github.com/seyi-dev/docforge/internal/models"
)

type Transformer interface {
	Transform(ctx context.Context, req *models.TransformRequest) (*models.DocumentDraft, error)
}

var _ Transformer = (*Orchestrator)(nil)
