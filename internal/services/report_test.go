package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"hireflow/interview-api/internal/models"
)

func TestRenderReport(t *testing.T) {
	interview := &models.Interview{
		ID:            uuid.New(),
		CandidateID:   "cand1",
		CandidateName: "Jane Doe",
		Date:          time.Now(),
		Messages: []models.Message{
			{Role: models.RoleAI, Content: "Tell me about React.", Timestamp: time.Now()},
			{Role: models.RoleUser, Content: "I have 5 years of experience.", Timestamp: time.Now()},
		},
		Feedback: models.Feedback{
			TechnicalScore:     80,
			CommunicationScore: 45,
			Summary:            "Strong candidate with solid frontend skills.",
			Strengths:          []string{"React", "Communication"},
			Weaknesses:         []string{"Testing"},
			Verdict:            models.VerdictHire,
		},
	}

	data, err := NewReportService().Render(interview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("render did not produce a PDF document")
	}
}

func TestRenderReportMinimalRecord(t *testing.T) {
	interview := &models.Interview{
		ID:          uuid.New(),
		CandidateID: "cand1",
		Date:        time.Now(),
		Feedback: models.Feedback{
			Verdict: models.VerdictReview,
		},
	}

	data, err := NewReportService().Render(interview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected PDF bytes")
	}
}
