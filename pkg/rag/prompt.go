// Package rag assembles prompts and message histories for the retrieval and
// chat pipelines.
package rag

import (
	"strings"

	"ai-chat-be/internal/entity"
)

// AnswerBuilder builds the single-shot prompt for an ingest-and-query run.
type AnswerBuilder struct {
	chunks   []*entity.ScoredDocumentChunk
	question string
}

func NewAnswerBuilder(chunks []*entity.ScoredDocumentChunk, question string) *AnswerBuilder {
	return &AnswerBuilder{
		chunks:   chunks,
		question: question,
	}
}

func (b *AnswerBuilder) Build() string {
	var prompt strings.Builder

	b.writeReferenceMaterial(&prompt)
	b.writeTask(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *AnswerBuilder) writeReferenceMaterial(prompt *strings.Builder) {
	if len(b.chunks) == 0 {
		return
	}
	prompt.WriteString("<reference_material>\n")
	for i, scored := range b.chunks {
		if i > 0 {
			prompt.WriteString("\n---\n")
		}
		prompt.WriteString(scored.Chunk.Content)
	}
	prompt.WriteString("\n</reference_material>\n\n")
}

func (b *AnswerBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a knowledgeable assistant answering questions about an uploaded document.\n")
	prompt.WriteString("Answer using only the reference material above. If the material does not contain the answer, say so.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *AnswerBuilder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("<question>\n")
	prompt.WriteString(b.question)
	prompt.WriteString("\n</question>\n")
}
