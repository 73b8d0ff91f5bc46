package pipeline

import "fmt"

func buildChunkPrompt(chunkText, instructions, originalName string, position, total int) string {
	return fmt.Sprintf(`You are transforming part %d of %d of the document %q into clean, well-structured Markdown.

User instructions: %s

Rules:
- Transform only the text below; do not invent content.
- This is one section of a larger document, so do not add an overall introduction or conclusion.
- Reply with Markdown only.

Text:
%s`, position, total, originalName, instructions, chunkText)
}

func buildSynthesisPrompt(assembledPrefix, instructions, originalName string) string {
	return fmt.Sprintf(`The document %q was transformed according to these instructions: %s

Based on the beginning of the result below, reply with strict JSON only, exactly in the shape {"title": string, "tags": [string], "summary": string}. No prose, no code fences.

Beginning of the document:
%s`, originalName, instructions, assembledPrefix)
}

func buildSmallDocPrompt(content, instructions, originalName string) string {
	return fmt.Sprintf(`Transform the document %q into clean, well-structured Markdown, following these instructions: %s

Reply with strict JSON only, exactly in the shape {"title": string, "content": string, "tags": [string], "summary": string}. No prose, no code fences.

Document text:
%s`, originalName, instructions, content)
}
