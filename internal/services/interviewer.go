package services

import (
	"context"
	"fmt"
)

// InterviewerService is the turn processor. It is stateless between turns:
// all prior-turn state lives in the client-held transcript, which is not
// sent back here. Multi-turn coherence rests entirely on fresh retrieval.
type InterviewerService interface {
	NextTurn(ctx context.Context, userMessage, candidateID string) (*TurnResult, error)
}

type TurnResult struct {
	Reply       string
	ContextUsed string
}

type interviewerService struct {
	retriever ContextRetriever
	llm       LLMService
	prompts   *PromptBuilder
}

func NewInterviewerService(retriever ContextRetriever, llm LLMService) InterviewerService {
	return &interviewerService{
		retriever: retriever,
		llm:       llm,
		prompts:   NewPromptBuilder(),
	}
}

// NextTurn implements InterviewerService.
func (s *interviewerService) NextTurn(ctx context.Context, userMessage, candidateID string) (*TurnResult, error) {
	resumeContext := s.retriever.Retrieve(ctx, userMessage, candidateID)

	prompt := s.prompts.BuildInterviewPrompt(resumeContext, userMessage)

	reply, err := s.llm.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	contextUsed := "Found relevant resume info"
	if resumeContext == "" {
		contextUsed = "No context found"
	}

	return &TurnResult{
		Reply:       reply,
		ContextUsed: contextUsed,
	}, nil
}
