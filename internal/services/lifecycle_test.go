package services

import (
	"context"
	"strings"
	"testing"

	"hireflow/interview-api/internal/models"
)

// Full session lifecycle against scripted collaborators: upload a resume,
// ask one interview question, finalize with a two-message transcript.
func TestInterviewSessionLifecycle(t *testing.T) {
	vectors := &stubVectorStore{}
	llm := &stubLLM{generate: func(prompt string, _ float32) (string, error) {
		switch {
		case strings.Contains(prompt, "You are a resume parser"):
			return parsedResumeJSON, nil
		case strings.Contains(prompt, "Analyze this technical interview transcript"):
			return evaluationJSON, nil
		case strings.Contains(prompt, `AI Technical Recruiter named "HireFlow"`):
			return "Which React state management libraries have you used in production?", nil
		default:
			t.Fatalf("unexpected prompt: %s", prompt)
			return "", nil
		}
	}}

	extractor := &stubExtractor{text: "5 years React and Node experience building dashboards and APIs."}
	resumeSvc := NewResumeService(extractor, NewTextChunker(), llm, vectors)

	ingested, err := resumeSvc.Ingest(context.Background(), []byte("pdf"), "resume.pdf", "cand1")
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if ingested.ID != "cand1" || ingested.TextLength == 0 {
		t.Fatalf("unexpected ingest result: %+v", ingested)
	}

	retriever := NewContextRetriever(llm, vectors)
	resumeContext := retriever.Retrieve(context.Background(), "Tell me about your React experience", "cand1")
	if resumeContext == "" || !strings.Contains(resumeContext, "React") {
		t.Fatalf("expected resume-derived context, got %q", resumeContext)
	}

	interviewer := NewInterviewerService(retriever, llm)
	turn, err := interviewer.NextTurn(context.Background(), "Tell me about your React experience", "cand1")
	if err != nil {
		t.Fatalf("turn failed: %v", err)
	}
	if !strings.Contains(turn.Reply, "React") {
		t.Fatalf("expected reply referencing React, got %q", turn.Reply)
	}

	repo := &stubInterviewRepo{}
	dispatcher := NewDispatcher()
	finalizer := NewFinalizerService(llm, repo, &stubReport{}, &stubMailer{}, dispatcher)

	transcript := []models.TranscriptMessage{
		{Role: models.RoleAI, Content: turn.Reply},
		{Role: models.RoleUser, Content: "I have used Redux and Zustand."},
	}

	result, err := finalizer.Finalize(context.Background(), transcript, "cand1", "Jane Doe", "")
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	dispatcher.Stop()

	if len(repo.saved) != 1 {
		t.Fatalf("expected one stored interview, got %d", len(repo.saved))
	}

	saved := repo.saved[0]
	if saved.ID.String() != result.InterviewID {
		t.Fatalf("generated id mismatch")
	}
	feedback := saved.Feedback
	if feedback.TechnicalScore != 80 ||
		feedback.CommunicationScore != 75 ||
		feedback.Summary != "Strong candidate" ||
		len(feedback.Strengths) != 1 || feedback.Strengths[0] != "React" ||
		len(feedback.Weaknesses) != 1 || feedback.Weaknesses[0] != "Testing" ||
		feedback.Verdict != models.VerdictHire {
		t.Fatalf("stored feedback does not match evaluation payload: %+v", feedback)
	}
}
