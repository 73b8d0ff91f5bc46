package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallDocumentProcessor_ParsesStructuredResponse(t *testing.T) {
	llm := &fakeLLM{respond: func(c llmCall) (string, error) {
		return `{"title":"Meeting Notes","content":"# Notes\n\nitems","tags":["meeting"],"summary":"Short meeting."}`, nil
	}}
	s := NewSmallDocumentProcessor(llm, testConfig())

	draft, err := s.Process(context.Background(), "raw text", "tidy this up", "notes.txt")

	require.NoError(t, err)
	assert.Equal(t, "Meeting Notes", draft.Title)
	assert.Equal(t, "# Notes\n\nitems", draft.Content)
	assert.Equal(t, []string{"meeting"}, draft.Tags)
	assert.Equal(t, "Short meeting.", draft.Summary)
	assert.Equal(t, 1, llm.callCount())
}

func TestSmallDocumentProcessor_UnparsableResponseWrapsRawText(t *testing.T) {
	raw := "# Here is your document\n\nNicely formatted but not JSON."
	llm := &fakeLLM{respond: func(c llmCall) (string, error) {
		return raw, nil
	}}
	s := NewSmallDocumentProcessor(llm, testConfig())

	draft, err := s.Process(context.Background(), "raw text", "tidy", "notes.txt")

	require.NoError(t, err, "format violations must not fail the request")
	assert.Equal(t, "Processed: notes.txt", draft.Title)
	assert.Equal(t, raw, draft.Content)
	assert.Equal(t, defaultTags, draft.Tags)
	assert.NotEmpty(t, draft.Summary)
}

func TestSmallDocumentProcessor_MissingFieldsGetDefaults(t *testing.T) {
	llm := &fakeLLM{respond: func(c llmCall) (string, error) {
		return `{"title":"","content":"body","tags":[],"summary":""}`, nil
	}}
	s := NewSmallDocumentProcessor(llm, testConfig())

	draft, err := s.Process(context.Background(), "raw", "tidy", "a.txt")

	require.NoError(t, err)
	assert.Equal(t, "Processed: a.txt", draft.Title)
	assert.Equal(t, "body", draft.Content)
	assert.NotEmpty(t, draft.Tags)
	assert.NotEmpty(t, draft.Summary)
}

func TestSmallDocumentProcessor_ModelErrorPropagates(t *testing.T) {
	llm := &fakeLLM{respond: func(c llmCall) (string, error) {
		return "", errors.New("transport broke")
	}}
	s := NewSmallDocumentProcessor(llm, testConfig())

	_, err := s.Process(context.Background(), "raw", "tidy", "a.txt")

	assert.Error(t, err)
}

func TestSmallDocumentProcessor_PromptCarriesInstructionsAndContent(t *testing.T) {
	llm := &fakeLLM{respond: func(c llmCall) (string, error) {
		return `{"title":"t","content":"c","tags":["x"],"summary":"s"}`, nil
	}}
	cfg := testConfig()
	s := NewSmallDocumentProcessor(llm, cfg)

	_, err := s.Process(context.Background(), "the body text", "translate to German", "brief.docx")

	require.NoError(t, err)
	require.Equal(t, 1, llm.callCount())
	assert.Contains(t, llm.calls[0].Prompt, "the body text")
	assert.Contains(t, llm.calls[0].Prompt, "translate to German")
	assert.Contains(t, llm.calls[0].Prompt, "brief.docx")
	assert.Equal(t, cfg.SmallOutputTokens, llm.calls[0].MaxTokens)
}
