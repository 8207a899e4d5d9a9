package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rizkypratama/ai-interviewer/internal/models"
	"rizkypratama/ai-interviewer/internal/repositories"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
}

func NewCandidateHandler(candidateRepo repositories.CandidateRepository) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
	}
}

// HandleList handles GET /candidates with search, sort and pagination
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	search := c.Query("q")
	sort := c.Query("sort", "-updated_at")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)

	candidates, total, err := h.candidateRepo.FindAll(search, sort, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list candidates",
		})
	}

	return c.JSON(models.CandidateListResponse{
		Candidates: candidates,
		Total:      total,
	})
}

// HandleGet handles GET /candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.candidateRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Candidate not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load candidate",
		})
	}

	return c.JSON(fiber.Map{"candidate": candidate})
}

// HandleUpdate handles PUT /candidates/:id updating contact fields only
func (h *CandidateHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	var req models.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	candidate, err := h.candidateRepo.UpdateContact(id, req.Name, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Candidate not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update candidate",
		})
	}

	return c.JSON(fiber.Map{"candidate": candidate})
}
