package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"hireflow/interview-api/internal/models"
)

var errStubNotFound = errors.New("interview not found")

type stubLLM struct {
	embedErr error
	generate func(prompt string, temperature float32) (string, error)
	prompts  []string
}

func (s *stubLLM) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	if s.embedErr != nil {
		return nil, s.embedErr
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (s *stubLLM) GenerateText(_ context.Context, prompt string, temperature float32) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.generate == nil {
		return "", nil
	}
	return s.generate(prompt, temperature)
}

type storedChunk struct {
	candidateID string
	text        string
}

type stubVectorStore struct {
	upsertErr error
	searchErr error
	chunks    []storedChunk
}

func (s *stubVectorStore) InitCollection() error { return nil }

func (s *stubVectorStore) UpsertChunk(_ context.Context, candidateID, text string, _ []float32) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.chunks = append(s.chunks, storedChunk{candidateID: candidateID, text: text})
	return nil
}

func (s *stubVectorStore) SearchSimilar(_ context.Context, _ []float32, candidateID string, limit int) ([]SearchResult, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}

	var results []SearchResult
	for _, chunk := range s.chunks {
		if candidateID != "" && chunk.candidateID != candidateID {
			continue
		}
		results = append(results, SearchResult{
			CandidateID: chunk.candidateID,
			Score:       0.9,
			Text:        chunk.text,
		})
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type stubInterviewRepo struct {
	mu        sync.Mutex
	saved     []*models.Interview
	createErr error
}

func (s *stubInterviewRepo) Create(interview *models.Interview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	interview.ID = uuid.New()
	s.saved = append(s.saved, interview)
	return nil
}

func (s *stubInterviewRepo) FindByID(id uuid.UUID) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, interview := range s.saved {
		if interview.ID == id {
			return interview, nil
		}
	}
	return nil, errStubNotFound
}

func (s *stubInterviewRepo) FindAllNewestFirst() ([]models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	interviews := make([]models.Interview, 0, len(s.saved))
	for i := len(s.saved) - 1; i >= 0; i-- {
		interviews = append(interviews, *s.saved[i])
	}
	return interviews, nil
}

type stubMailer struct {
	candidateMails int
	hrMails        int
	sendErr        error
}

func (s *stubMailer) SendCandidateResult(_, _ string, _ models.Feedback, _ []byte) error {
	s.candidateMails++
	return s.sendErr
}

func (s *stubMailer) SendHRNotification(_ string, _ models.Feedback, _ string) error {
	s.hrMails++
	return s.sendErr
}

type stubReport struct {
	renderErr error
	renders   int
}

func (s *stubReport) Render(_ *models.Interview) ([]byte, error) {
	s.renders++
	if s.renderErr != nil {
		return nil, s.renderErr
	}
	return []byte("%PDF-1.4 stub"), nil
}
