package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-dev/docforge/internal/core"
	"github.com/seyi-dev/docforge/internal/models"
)

type stubTransformer struct {
	draft    *models.DocumentDraft
	err      error
	lastReq  *models.TransformRequest
	tempSeen string
}

func (s *stubTransformer) Transform(_ context.Context, req *models.TransformRequest) (*models.DocumentDraft, error) {
	s.lastReq = req
	s.tempSeen = req.FilePath
	// The real orchestrator owns the temp file; mimic its cleanup so the
	// handler tests do not leak files.
	os.Remove(req.FilePath)
	if s.err != nil {
		return nil, s.err
	}
	return s.draft, nil
}

type stubSink struct {
	saved int
	err   error
}

func (s *stubSink) SaveDraft(_ context.Context, _ *models.DocumentDraft) error {
	s.saved++
	return s.err
}

func multipartUpload(t *testing.T, filename, content, instructions string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	if instructions != "" {
		require.NoError(t, w.WriteField("instructions", instructions))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestTransformDocument_Success(t *testing.T) {
	draft := &models.DocumentDraft{
		Title:   "Done",
		Content: "# Done",
		Tags:    []string{"a"},
		Summary: "done",
	}
	tr := &stubTransformer{draft: draft}
	sink := &stubSink{}
	h := NewTransformHandler(tr, sink, 10<<20)

	body, contentType := multipartUpload(t, "doc.txt", "some text", "summarize")
	req := httptest.NewRequest(http.MethodPost, "/api/documents/transform", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.TransformDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.DocumentDraft
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Done", got.Title)
	assert.Equal(t, 1, sink.saved)

	require.NotNil(t, tr.lastReq)
	assert.Equal(t, "doc.txt", tr.lastReq.OriginalName)
	assert.Equal(t, "summarize", tr.lastReq.Instructions)
	assert.NoFileExists(t, tr.tempSeen)
}

func TestTransformDocument_MissingFile(t *testing.T) {
	h := NewTransformHandler(&stubTransformer{}, &stubSink{}, 10<<20)

	body, contentType := multipartUpload(t, "", "", "summarize")
	req := httptest.NewRequest(http.MethodPost, "/api/documents/transform", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.TransformDocument(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransformDocument_ErrorKindMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", fmt.Errorf("%w: no instructions", core.ErrInvalidInput), http.StatusBadRequest},
		{"extraction", fmt.Errorf("%w: corrupt file", core.ErrExtraction), http.StatusUnprocessableEntity},
		{"rate limited", fmt.Errorf("%w: quota", core.ErrRateLimited), http.StatusTooManyRequests},
		{"context length", fmt.Errorf("%w: too big", core.ErrContextLength), http.StatusRequestEntityTooLarge},
		{"unexpected", fmt.Errorf("%w: oops", core.ErrTransformFailed), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTransformHandler(&stubTransformer{err: tt.err}, &stubSink{}, 10<<20)

			body, contentType := multipartUpload(t, "doc.txt", "text", "summarize")
			req := httptest.NewRequest(http.MethodPost, "/api/documents/transform", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			h.TransformDocument(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestTransformDocument_SinkFailureDoesNotFailRequest(t *testing.T) {
	tr := &stubTransformer{draft: &models.DocumentDraft{Title: "T", Tags: []string{"a"}}}
	sink := &stubSink{err: fmt.Errorf("store offline")}
	h := NewTransformHandler(tr, sink, 10<<20)

	body, contentType := multipartUpload(t, "doc.txt", "text", "summarize")
	req := httptest.NewRequest(http.MethodPost, "/api/documents/transform", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.TransformDocument(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	h := NewTransformHandler(&stubTransformer{}, &stubSink{}, 10<<20)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
