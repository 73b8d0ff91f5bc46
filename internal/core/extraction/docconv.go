package extraction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.sajari.com/docconv"

	"github.com/seyi-dev/docforge/internal/core"
	"github.com/seyi-dev/docforge/internal/models"
)

var _ core.FileExtractor = (*DocconvExtractor)(nil)

// DocconvExtractor implements core.FileExtractor using sajari/docconv, which
// handles PDF, Office formats, HTML and plain text behind one Convert call.
type DocconvExtractor struct {
	useReadability bool
	maxFileSize    int64
}

// NewDocconvExtractor builds the extractor. maxFileSize <= 0 disables the
// size check.
func NewDocconvExtractor(useReadability bool, maxFileSize int64) *DocconvExtractor {
	return &DocconvExtractor{useReadability: useReadability, maxFileSize: maxFileSize}
}

// Extract converts the file at filePath into plain text. All failure modes
// (missing file, oversize upload, unsupported or corrupt format, empty
// result) wrap core.ErrExtraction.
func (e *DocconvExtractor) Extract(ctx context.Context, filePath, originalName string) (*models.RawExtraction, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrExtraction, err)
	}
	if e.maxFileSize > 0 && info.Size() > e.maxFileSize {
		return nil, fmt.Errorf("%w: file is %d bytes, limit is %d", core.ErrExtraction, info.Size(), e.maxFileSize)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrExtraction, err)
	}
	defer f.Close()

	mimeType := docconv.MimeTypeByExtension(originalName)

	res, err := docconv.Convert(f, mimeType, e.useReadability)
	if err != nil {
		return nil, fmt.Errorf("%w: convert %q (%s): %v", core.ErrExtraction, originalName, mimeType, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(res.Body)
	if content == "" {
		return nil, fmt.Errorf("%w: no text extracted from %q (%s)", core.ErrExtraction, originalName, mimeType)
	}

	return &models.RawExtraction{
		Content: content,
		Metadata: models.ExtractionMetadata{
			OriginalName:  originalName,
			Extension:     strings.TrimPrefix(filepath.Ext(originalName), "."),
			MimeType:      mimeType,
			Size:          info.Size(),
			ExtractedAt:   time.Now().UTC(),
			ContentLength: len(content),
		},
	}, nil
}
