package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"hireflow/interview-api/internal/models"
	"hireflow/interview-api/internal/services"
)

type ChatHandler struct {
	interviewer services.InterviewerService
}

func NewChatHandler(interviewer services.InterviewerService) *ChatHandler {
	return &ChatHandler{interviewer: interviewer}
}

// HandleChat handles POST /api/chat.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	result, err := h.interviewer.NextTurn(c.Context(), req.Message, req.CandidateID)
	if err != nil {
		log.Printf("❌ Chat error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "AI generation failed",
		})
	}

	return c.JSON(models.ChatResponse{
		Reply:       result.Reply,
		ContextUsed: result.ContextUsed,
	})
}
