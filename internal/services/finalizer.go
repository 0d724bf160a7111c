package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"hireflow/interview-api/internal/models"
	"hireflow/interview-api/internal/repositories"
)

// FinalizerService scores a finished session and persists the Interview
// record. The persistence write must succeed before Finalize returns;
// report rendering and email delivery happen afterwards in the background
// and never fail the call.
type FinalizerService interface {
	Finalize(ctx context.Context, transcript []models.TranscriptMessage, candidateID, candidateName, candidateEmail string) (*FinalizeResult, error)
}

type FinalizeResult struct {
	InterviewID string
	Feedback    models.Feedback
}

type finalizerService struct {
	llm        LLMService
	interviews repositories.InterviewRepository
	reports    ReportService
	mailer     MailerService
	dispatcher Dispatcher
	prompts    *PromptBuilder
}

func NewFinalizerService(
	llm LLMService,
	interviews repositories.InterviewRepository,
	reports ReportService,
	mailer MailerService,
	dispatcher Dispatcher,
) FinalizerService {
	return &finalizerService{
		llm:        llm,
		interviews: interviews,
		reports:    reports,
		mailer:     mailer,
		dispatcher: dispatcher,
		prompts:    NewPromptBuilder(),
	}
}

// Finalize implements FinalizerService.
func (s *finalizerService) Finalize(ctx context.Context, transcript []models.TranscriptMessage, candidateID, candidateName, candidateEmail string) (*FinalizeResult, error) {
	feedback, err := s.evaluate(ctx, transcript)
	if err != nil {
		return nil, err
	}

	if candidateName == "" {
		candidateName = "Anonymous"
	}

	now := time.Now()
	messages := make([]models.Message, 0, len(transcript))
	for _, m := range transcript {
		messages = append(messages, models.Message{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: now,
		})
	}

	interview := &models.Interview{
		CandidateID:   candidateID,
		CandidateName: candidateName,
		Date:          now,
		Messages:      messages,
		Feedback:      *feedback,
	}

	if err := s.interviews.Create(interview); err != nil {
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}

	log.Printf("✅ Interview %s saved for candidate %s\n", interview.ID, candidateID)

	// Report and emails are best-effort; the response does not wait on them.
	s.dispatcher.Dispatch("interview-notifications", func() {
		s.sendNotifications(interview, candidateEmail)
	})

	return &FinalizeResult{
		InterviewID: interview.ID.String(),
		Feedback:    *feedback,
	}, nil
}

func (s *finalizerService) evaluate(ctx context.Context, transcript []models.TranscriptMessage) (*models.Feedback, error) {
	lines := make([]string, 0, len(transcript))
	for _, m := range transcript {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}

	prompt := s.prompts.BuildEvaluationPrompt(strings.Join(lines, "\n"))

	raw, err := s.llm.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var feedback models.Feedback
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &feedback); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvaluation, err)
	}

	if !feedback.Verdict.Valid() {
		return nil, fmt.Errorf("%w: unknown verdict %q", ErrMalformedEvaluation, feedback.Verdict)
	}

	return &feedback, nil
}

func (s *finalizerService) sendNotifications(interview *models.Interview, candidateEmail string) {
	report, err := s.reports.Render(interview)
	if err != nil {
		log.Printf("⚠️  PDF generation failed: %v\n", err)
		report = nil
	} else {
		log.Println("✅ PDF report generated")
	}

	if candidateEmail != "" {
		if err := s.mailer.SendCandidateResult(candidateEmail, interview.CandidateName, interview.Feedback, report); err != nil {
			log.Printf("⚠️  Email sending failed: %v\n", err)
		} else {
			log.Println("✅ Email sent to candidate")
		}
	}

	if err := s.mailer.SendHRNotification(interview.CandidateName, interview.Feedback, interview.ID.String()); err != nil {
		log.Printf("⚠️  HR notification failed: %v\n", err)
	} else {
		log.Println("✅ HR notification sent")
	}
}
