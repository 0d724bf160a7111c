package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"hireflow/interview-api/internal/models"
	"hireflow/interview-api/internal/services"
)

type UploadHandler struct {
	resumeService services.ResumeService
	maxFileSize   int64
}

func NewUploadHandler(resumeService services.ResumeService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		resumeService: resumeService,
		maxFileSize:   maxFileSize,
	}
}

// HandleUpload handles POST /api/upload.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	log.Printf("📄 Received file: %s\n", fileHeader.Filename)

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	candidateID := c.FormValue("candidateId")

	result, err := h.resumeService.Ingest(c.Context(), data, fileHeader.Filename, candidateID)
	if err != nil {
		log.Printf("❌ Upload failed: %v\n", err)
		if errors.Is(err, services.ErrEmptyDocument) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Resume text is too short or empty",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process resume",
		})
	}

	return c.JSON(models.UploadResponse{
		Success:    true,
		Message:    "Resume processed and stored in memory.",
		ID:         result.ID,
		ParsedData: result.ParsedData,
		Skills:     result.Skills,
		TextLength: result.TextLength,
	})
}
