package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"hireflow/interview-api/internal/models"
)

// Extracted text below this length is rejected before any vector-store write.
const minResumeTextLength = 10

const (
	resumeChunkSize    = 1000
	resumeChunkOverlap = 100
)

// ResumeService is the ingestion component: extract text from an uploaded
// PDF, best-effort parse structured fields, and index the text in the vector
// store under the candidate identifier.
type ResumeService interface {
	Ingest(ctx context.Context, data []byte, filename, candidateID string) (*IngestResult, error)
}

type IngestResult struct {
	ID         string
	ParsedData *models.ParsedResume
	Skills     []string
	TextLength int
}

type resumeService struct {
	extractor PDFExtractor
	chunker   TextChunker
	llm       LLMService
	vectors   VectorStoreService
	prompts   *PromptBuilder
}

func NewResumeService(
	extractor PDFExtractor,
	chunker TextChunker,
	llm LLMService,
	vectors VectorStoreService,
) ResumeService {
	return &resumeService{
		extractor: extractor,
		chunker:   chunker,
		llm:       llm,
		vectors:   vectors,
		prompts:   NewPromptBuilder(),
	}
}

// Ingest implements ResumeService.
func (s *resumeService) Ingest(ctx context.Context, data []byte, filename, candidateID string) (*IngestResult, error) {
	text, err := s.extractor.ExtractText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	if len(strings.TrimSpace(text)) < minResumeTextLength {
		return nil, ErrEmptyDocument
	}

	log.Printf("📝 Extracted %d characters from %s\n", len(text), filename)

	// Structured parsing is best-effort: a failure must not fail ingestion.
	parsed, skills := s.parseResume(ctx, text)

	// Supplied candidateId wins; else fall back to the original filename.
	id := candidateID
	if id == "" {
		id = filename
	}

	if err := s.indexResume(ctx, id, text); err != nil {
		return nil, err
	}

	log.Printf("✅ Resume for %s added to vector store\n", id)

	return &IngestResult{
		ID:         id,
		ParsedData: parsed,
		Skills:     skills,
		TextLength: len(text),
	}, nil
}

func (s *resumeService) parseResume(ctx context.Context, text string) (*models.ParsedResume, []string) {
	prompt := s.prompts.BuildResumeParsePrompt(text)

	response, err := s.llm.GenerateText(ctx, prompt, 0.2)
	if err != nil {
		log.Printf("⚠️  Resume parsing failed, continuing with text only: %v\n", err)
		return nil, []string{}
	}

	var parsed models.ParsedResume
	if err := json.Unmarshal([]byte(StripCodeFences(response)), &parsed); err != nil {
		log.Printf("⚠️  Resume parse response was not valid JSON: %v\n", err)
		return nil, []string{}
	}

	return &parsed, parsed.Skills.Flatten()
}

func (s *resumeService) indexResume(ctx context.Context, candidateID, text string) error {
	chunks := s.chunker.Chunk(text, resumeChunkSize, resumeChunkOverlap)

	for _, chunk := range chunks {
		embedding, err := s.llm.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed resume chunk: %w", err)
		}

		if err := s.vectors.UpsertChunk(ctx, candidateID, chunk, embedding); err != nil {
			return fmt.Errorf("failed to store resume chunk: %w", err)
		}
	}

	return nil
}
