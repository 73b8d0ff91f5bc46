package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-dev/docforge/internal/core"
	"github.com/seyi-dev/docforge/internal/core/pipeline"
	"github.com/seyi-dev/docforge/internal/models"
)

type TransformHandler struct {
	transformer    pipeline.Transformer
	sink           core.DraftSink
	maxUploadBytes int64
}

func NewTransformHandler(transformer pipeline.Transformer, sink core.DraftSink, maxUploadBytes int64) *TransformHandler {
	return &TransformHandler{transformer: transformer, sink: sink, maxUploadBytes: maxUploadBytes}
}

// TransformDocument accepts a multipart upload ("file" + "instructions"),
// stages the file in a temp location and runs the transformation pipeline.
// The pipeline owns the temp file from here on and removes it on every path.
func (h *TransformHandler) TransformDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}

	instructions := r.FormValue("instructions")

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	// Sanitize the client-supplied name before it touches a path.
	cleanName := filepath.Base(header.Filename)

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s%s", uuid.NewString(), filepath.Ext(cleanName)))
	if err := saveUpload(file, tmpPath); err != nil {
		log.Printf("TransformHandler: staging upload %q failed: %v", cleanName, err)
		writeError(w, http.StatusInternalServerError, "could not store upload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Minute)
	defer cancel()

	draft, err := h.transformer.Transform(ctx, &models.TransformRequest{
		FilePath:     tmpPath,
		OriginalName: cleanName,
		Instructions: instructions,
		Size:         header.Size,
	})
	if err != nil {
		status, msg := mapTransformError(err)
		log.Printf("TransformHandler: transform of %q failed: %v", cleanName, err)
		writeError(w, status, msg)
		return
	}

	// Persistence lives behind the sink; a sink failure should not cost the
	// user the draft they already paid model calls for.
	if err := h.sink.SaveDraft(ctx, draft); err != nil {
		log.Printf("TransformHandler: saving draft for %q failed: %v", cleanName, err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(draft)
}

// Health reports liveness.
func (h *TransformHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func saveUpload(src io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// mapTransformError translates pipeline error kinds into HTTP responses.
func mapTransformError(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		return http.StatusBadRequest, "a file and processing instructions are required"
	case errors.Is(err, core.ErrExtraction):
		return http.StatusUnprocessableEntity, "could not extract text from the uploaded file"
	case errors.Is(err, core.ErrRateLimited):
		return http.StatusTooManyRequests, "the AI service is rate limited right now, try again shortly"
	case errors.Is(err, core.ErrContextLength):
		return http.StatusRequestEntityTooLarge, "the document is too large to process"
	default:
		return http.StatusInternalServerError, "document transformation failed"
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
