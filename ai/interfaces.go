package ai

import (
	"context"

	"github.com/mundap-io/mundap/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// SectionRef is the compact section view handed to the chat model when it
// picks a section for a question. Path is the joined heading hierarchy,
// e.g. "근태 및 휴가 > 연차 신청".
type SectionRef struct {
	Id   core.ID
	Path string
}

// AnswerRequest carries everything the answer generator needs to produce a
// grounded response: the question, its classified intent, the raw document
// excerpt to ground on, and the contact of the responsible team.
type AnswerRequest struct {
	Question string
	Intent   Intent
	Document string
	Contact  core.Contact
}

// Answerer groups the chat-model operations of the answer pipeline.
// Implementations must be thread-safe for concurrent use.
type Answerer interface {
	// ExtractKeywords pulls the core keywords out of a Korean question,
	// typically three to five terms. Callers are expected to fall back to
	// plain tokenization when this returns an error.
	ExtractKeywords(ctx context.Context, question string) ([]string, error)

	// ClassifySection picks the section most relevant to the question from
	// the provided closed set. Returns ErrNoSection when the model declines
	// to pick one or picks an id outside the set.
	ClassifySection(ctx context.Context, question string, sections []SectionRef) (core.ID, error)

	// GenerateAnswer writes an answer to req.Question grounded in
	// req.Document, styled according to req.Intent.
	GenerateAnswer(ctx context.Context, req AnswerRequest) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and Answerer
// instances, ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Answerer returns the chat-model service.
	Answerer() Answerer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
