package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNextTurnUsesRetrievedContext(t *testing.T) {
	vectors := &stubVectorStore{chunks: []storedChunk{
		{candidateID: "cand1", text: "5 years React experience"},
	}}
	llm := &stubLLM{generate: func(string, float32) (string, error) {
		return "How did you manage state in your React applications?", nil
	}}
	interviewer := NewInterviewerService(NewContextRetriever(llm, vectors), llm)

	result, err := interviewer.NextTurn(context.Background(), "Tell me about your React experience", "cand1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Reply, "React") {
		t.Fatalf("unexpected reply: %q", result.Reply)
	}
	if result.ContextUsed != "Found relevant resume info" {
		t.Fatalf("unexpected contextUsed: %q", result.ContextUsed)
	}

	prompt := llm.prompts[len(llm.prompts)-1]
	if !strings.Contains(prompt, "5 years React experience") {
		t.Fatalf("expected resume context embedded in prompt")
	}
	if !strings.Contains(prompt, "Tell me about your React experience") {
		t.Fatalf("expected user message embedded in prompt")
	}
}

func TestNextTurnNoContextReportsNone(t *testing.T) {
	vectors := &stubVectorStore{searchErr: errors.New("store offline")}
	llm := &stubLLM{generate: func(string, float32) (string, error) {
		return "What technologies have you worked with?", nil
	}}
	interviewer := NewInterviewerService(NewContextRetriever(llm, vectors), llm)

	result, err := interviewer.NextTurn(context.Background(), "Hello", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ContextUsed != "No context found" {
		t.Fatalf("unexpected contextUsed: %q", result.ContextUsed)
	}

	prompt := llm.prompts[len(llm.prompts)-1]
	if !strings.Contains(prompt, "No specific resume context found. Ask general technical questions.") {
		t.Fatalf("expected no-context instruction in prompt")
	}
}

func TestNextTurnGenerationFailure(t *testing.T) {
	llm := &stubLLM{generate: func(string, float32) (string, error) {
		return "", errors.New("deadline exceeded")
	}}
	interviewer := NewInterviewerService(NewContextRetriever(llm, &stubVectorStore{}), llm)

	_, err := interviewer.NextTurn(context.Background(), "Hello", "")
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
}

// The turn prompt never carries prior conversation history: the processor is
// stateless between turns and coherence rests on fresh retrieval only.
func TestNextTurnPromptHasNoHistory(t *testing.T) {
	llm := &stubLLM{generate: func(string, float32) (string, error) {
		return "ok", nil
	}}
	interviewer := NewInterviewerService(NewContextRetriever(llm, &stubVectorStore{}), llm)

	if _, err := interviewer.NextTurn(context.Background(), "first message", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := interviewer.NextTurn(context.Background(), "second message", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := llm.prompts[len(llm.prompts)-1]
	if strings.Contains(prompt, "first message") {
		t.Fatalf("prior turn leaked into prompt")
	}
}
