package pipeline

import (
	"strings"

	"github.com/seyi-dev/docforge/internal/models"
)

// ChunkContent splits raw text into an ordered sequence of chunks, each
// staying under maxTokensPerChunk estimated tokens. Sentences are the unit
// of accumulation, so chunk boundaries never fall mid-sentence. A single
// sentence that alone exceeds the budget is still emitted whole as its own
// chunk; content is never truncated here.
func ChunkContent(text string, maxTokensPerChunk int) []models.Chunk {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var chunks []models.Chunk
	var current string

	emit := func() {
		if current == "" {
			return
		}
		chunks = append(chunks, models.Chunk{Index: len(chunks), Text: current})
		current = ""
	}

	for _, sentence := range sentences {
		candidate := sentence
		if current != "" {
			candidate = current + " " + sentence
		}
		if EstimateTokens(candidate) <= maxTokensPerChunk {
			current = candidate
			continue
		}
		// Budget exceeded: close the running chunk and start over with this
		// sentence. An oversized lone sentence falls through here on the
		// next iteration and is emitted unmodified.
		emit()
		current = sentence
	}
	emit()

	return chunks
}

// splitSentences breaks text into sentence-like units on '.', '!' and '?',
// keeping the terminator with its sentence and discarding empty fragments.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}
