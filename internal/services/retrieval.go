package services

import (
	"context"
	"log"
	"strings"
)

// Fixed result count. A deliberate simplicity choice, not configurable.
const retrievalTopK = 2

// ContextRetriever finds the resume chunks most relevant to a query. It
// never returns an error: retrieval failures degrade to an empty string and
// the turn processor falls back to general questions.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query, candidateID string) string
}

type contextRetriever struct {
	llm     LLMService
	vectors VectorStoreService
}

func NewContextRetriever(llm LLMService, vectors VectorStoreService) ContextRetriever {
	return &contextRetriever{
		llm:     llm,
		vectors: vectors,
	}
}

// Retrieve implements ContextRetriever.
func (r *contextRetriever) Retrieve(ctx context.Context, query, candidateID string) string {
	embedding, err := r.llm.GenerateEmbedding(ctx, query)
	if err != nil {
		log.Printf("⚠️  Failed to embed retrieval query: %v\n", err)
		return ""
	}

	results, err := r.vectors.SearchSimilar(ctx, embedding, candidateID, retrievalTopK)
	if err != nil {
		log.Printf("⚠️  Vector search failed: %v\n", err)
		return ""
	}

	if len(results) == 0 {
		return NoContextFallback
	}

	parts := make([]string, 0, len(results))
	for _, result := range results {
		parts = append(parts, result.Text)
	}

	return strings.Join(parts, "\n\n")
}
