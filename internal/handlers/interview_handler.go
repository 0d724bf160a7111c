package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hireflow/interview-api/internal/models"
	"hireflow/interview-api/internal/repositories"
	"hireflow/interview-api/internal/services"
)

type InterviewHandler struct {
	finalizer  services.FinalizerService
	interviews repositories.InterviewRepository
	reports    services.ReportService
}

func NewInterviewHandler(
	finalizer services.FinalizerService,
	interviews repositories.InterviewRepository,
	reports services.ReportService,
) *InterviewHandler {
	return &InterviewHandler{
		finalizer:  finalizer,
		interviews: interviews,
		reports:    reports,
	}
}

// HandleEndInterview handles POST /api/interview/end.
func (h *InterviewHandler) HandleEndInterview(c *fiber.Ctx) error {
	var req models.EndInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "messages are required",
		})
	}

	if req.CandidateID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidateId is required",
		})
	}

	result, err := h.finalizer.Finalize(
		c.Context(),
		req.Messages,
		req.CandidateID,
		req.CandidateName,
		req.CandidateEmail,
	)
	if err != nil {
		log.Printf("❌ End interview error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate report",
		})
	}

	return c.JSON(models.EndInterviewResponse{
		Success:     true,
		InterviewID: result.InterviewID,
		Feedback:    result.Feedback,
	})
}

// HandleListInterviews handles GET /api/interviews.
func (h *InterviewHandler) HandleListInterviews(c *fiber.Ctx) error {
	interviews, err := h.interviews.FindAllNewestFirst()
	if err != nil {
		log.Printf("❌ Failed to list interviews: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Fetch failed",
		})
	}

	return c.JSON(interviews)
}

// HandleExportInterview handles GET /api/interviews/:id/export.
func (h *InterviewHandler) HandleExportInterview(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Interview not found",
		})
	}

	interview, err := h.interviews.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrInterviewNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Interview not found",
			})
		}
		log.Printf("❌ Failed to load interview %s: %v\n", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export PDF",
		})
	}

	pdfBytes, err := h.reports.Render(interview)
	if err != nil {
		log.Printf("❌ PDF export error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export PDF",
		})
	}

	filename := fmt.Sprintf("Interview_Report_%s.pdf", strings.ReplaceAll(interview.CandidateName, " ", "_"))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	return c.Send(pdfBytes)
}
