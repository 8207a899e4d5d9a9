package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rizkypratama/ai-interviewer/internal/models"
	"rizkypratama/ai-interviewer/internal/repositories"
	"rizkypratama/ai-interviewer/internal/services"
)

type ResumeHandler struct {
	candidateRepo  repositories.CandidateRepository
	storageService services.StorageService
	resumeParser   services.ResumeParserService
	maxFileSize    int64
}

func NewResumeHandler(
	candidateRepo repositories.CandidateRepository,
	storageService services.StorageService,
	resumeParser services.ResumeParserService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		candidateRepo:  candidateRepo,
		storageService: storageService,
		resumeParser:   resumeParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /resume/upload: stores the résumé, extracts
// contact fields, and creates a candidate with a fresh not-started interview.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload 'resume' as a PDF file.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	fields, err := h.resumeParser.ParseResume(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to parse resume: %v", err),
		})
	}

	metadata, _ := json.Marshal(fiber.Map{
		"original_filename": file.Filename,
		"text_length":       len(fields.Text),
	})

	candidate := &models.Candidate{
		ID:        uuid.New(),
		Name:      fields.Name,
		Email:     fields.Email,
		Phone:     fields.Phone,
		ResumeURL: filename,
		Metadata:  string(metadata),
		Interview: models.Interview{
			ID:     uuid.New(),
			Status: models.StatusNotStarted,
		},
	}
	candidate.Interview.CandidateID = candidate.ID

	if err := h.candidateRepo.Create(candidate); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create candidate record",
		})
	}

	log.Printf("✅ Candidate %s created from resume %s\n", candidate.ID, file.Filename)

	return c.Status(fiber.StatusCreated).JSON(models.ResumeUploadResponse{
		CandidateID: candidate.ID.String(),
		Name:        candidate.Name,
		Email:       candidate.Email,
		Phone:       candidate.Phone,
		ResumeURL:   candidate.ResumeURL,
	})
}
