package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"rizkypratama/ai-interviewer/internal/models"
	"rizkypratama/ai-interviewer/internal/repositories"
	"rizkypratama/ai-interviewer/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	worker           services.Worker
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	worker services.Worker,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		worker:           worker,
	}
}

// HandleStart handles POST /interview/start
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	var req models.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidate_id required",
		})
	}

	interview, err := h.interviewService.StartInterview(c.Context(), candidateID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.InterviewResponse{Interview: interview})
}

// HandleSubmitAnswer handles POST /interview/answer
func (h *InterviewHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidate_id required",
		})
	}

	if req.QuestionIndex == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question_index required",
		})
	}

	interview, err := h.interviewService.SubmitAnswer(
		c.Context(),
		candidateID,
		*req.QuestionIndex,
		req.Answer,
		req.TimeTakenSec,
	)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.InterviewResponse{Interview: interview})
}

// HandlePauseResume handles POST /interview/pause-resume
func (h *InterviewHandler) HandlePauseResume(c *fiber.Ctx) error {
	var req models.PauseResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidate_id required",
		})
	}

	interview, err := h.interviewService.SetPauseResume(c.Context(), candidateID, req.Action)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.InterviewResponse{Interview: interview})
}

// HandleGetInterview handles GET /interview/:candidateId
func (h *InterviewHandler) HandleGetInterview(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	interview, err := h.interviewService.GetInterview(c.Context(), candidateID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.InterviewResponse{Interview: interview})
}

// HandleRescore handles POST /admin/rescore/:candidateId
func (h *InterviewHandler) HandleRescore(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	// Verify the candidate exists before queueing
	if _, err := h.interviewService.GetInterview(c.Context(), candidateID); err != nil {
		return respondServiceError(c, err)
	}

	h.worker.EnqueueRescore(candidateID)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Rescore job enqueued",
	})
}

func respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Message,
		})
	case errors.Is(err, repositories.ErrCandidateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
