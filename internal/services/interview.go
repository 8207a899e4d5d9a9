package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"rizkypratama/ai-interviewer/internal/models"
	"rizkypratama/ai-interviewer/internal/repositories"
)

const DefaultRole = "Full Stack (React/Node) developer"

const (
	ActionPause  = "pause"
	ActionResume = "resume"
)

// InterviewService owns the interview lifecycle. Each operation is scoped to
// one candidate aggregate and serialized per candidate: a second call for the
// same candidate waits for the in-flight one, so the read-modify-write of the
// questions sequence and the auto-completion check never interleave.
type InterviewService interface {
	StartInterview(ctx context.Context, candidateID uuid.UUID) (*models.Interview, error)
	SubmitAnswer(ctx context.Context, candidateID uuid.UUID, questionIndex int, answer string, timeTakenSec *int) (*models.Interview, error)
	SetPauseResume(ctx context.Context, candidateID uuid.UUID, action string) (*models.Interview, error)
	GetInterview(ctx context.Context, candidateID uuid.UUID) (*models.Interview, error)
}

type interviewService struct {
	candidateRepo repositories.CandidateRepository
	aiService     AIService

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewInterviewService(
	candidateRepo repositories.CandidateRepository,
	aiService AIService,
) InterviewService {
	return &interviewService{
		candidateRepo: candidateRepo,
		aiService:     aiService,
		locks:         make(map[uuid.UUID]*sync.Mutex),
	}
}

// lockCandidate returns the unlock func for the candidate's aggregate mutex.
func (s *interviewService) lockCandidate(id uuid.UUID) func() {
	s.mu.Lock()
	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// StartInterview transitions the interview to ongoing. A re-entrant start with
// six questions already generated reuses them and only fills startedAt if
// unset; questions are never regenerated.
func (s *interviewService) StartInterview(ctx context.Context, candidateID uuid.UUID) (*models.Interview, error) {
	unlock := s.lockCandidate(candidateID)
	defer unlock()

	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}

	interview := &candidate.Interview

	// Completed interviews are immutable; hand back the stored state as-is.
	if interview.Status == models.StatusCompleted {
		return interview, nil
	}

	now := time.Now()

	if len(interview.Questions) == models.QuestionCount {
		interview.Status = models.StatusOngoing
		if interview.StartedAt == nil {
			interview.StartedAt = &now
		}
		if err := s.candidateRepo.SaveInterview(candidate); err != nil {
			return nil, err
		}
		return interview, nil
	}

	generated := s.aiService.GenerateQuestions(ctx, DefaultRole)
	log.Printf("Generated %d questions for candidate %s\n", len(generated), candidateID)

	questions := make([]models.Question, 0, len(generated))
	for i, gq := range generated {
		questions = append(questions, models.Question{
			ID:            uuid.New(),
			InterviewID:   interview.ID,
			QuestionIndex: i,
			Text:          gq.Text,
			Difficulty:    gq.Difficulty,
		})
	}

	interview.Status = models.StatusOngoing
	interview.CurrentQuestionIndex = 0
	interview.Questions = questions
	interview.StartedAt = &now

	if err := s.candidateRepo.SaveInterview(candidate); err != nil {
		return nil, err
	}

	return interview, nil
}

// SubmitAnswer writes the answer, scores it synchronously, advances the current
// index, and auto-completes the interview once every question carries a score.
// Answer order does not matter.
func (s *interviewService) SubmitAnswer(ctx context.Context, candidateID uuid.UUID, questionIndex int, answer string, timeTakenSec *int) (*models.Interview, error) {
	unlock := s.lockCandidate(candidateID)
	defer unlock()

	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}

	interview := &candidate.Interview

	if interview.Status == models.StatusCompleted {
		return nil, NewValidationError("interview already completed")
	}
	if len(interview.Questions) == 0 {
		return nil, NewValidationError("interview not initialized")
	}
	if questionIndex < 0 || questionIndex >= len(interview.Questions) {
		return nil, NewValidationError("invalid question index %d", questionIndex)
	}

	question := &interview.Questions[questionIndex]
	now := time.Now()

	question.Answer = answer
	question.AnsweredAt = &now
	if timeTakenSec != nil {
		question.TimeTakenSec = timeTakenSec
	}

	result := s.aiService.ScoreAnswer(ctx, question.Text, answer, question.Difficulty)
	log.Printf("Scored question %d via %s: %d/100\n", questionIndex, result.Method, result.Score)

	// Only the numeric score is persisted
	score := result.Score
	question.Score = &score

	next := questionIndex + 1
	if next > len(interview.Questions) {
		next = len(interview.Questions)
	}
	interview.CurrentQuestionIndex = next

	if interview.AllScored() {
		s.finalize(ctx, candidate, now)
	}

	if err := s.candidateRepo.SaveInterview(candidate); err != nil {
		return nil, err
	}

	return interview, nil
}

func (s *interviewService) finalize(ctx context.Context, candidate *models.Candidate, completedAt time.Time) {
	interview := &candidate.Interview

	interview.Status = models.StatusCompleted
	interview.CompletedAt = &completedAt

	pairs := make([]models.QAPair, 0, len(interview.Questions))
	for _, q := range interview.Questions {
		pairs = append(pairs, models.QAPair{
			Question:   q.Text,
			Answer:     q.Answer,
			Score:      q.Score,
			Difficulty: q.Difficulty,
		})
	}

	summary := s.aiService.GenerateSummary(ctx, models.CandidateProfile{
		Name:  candidate.Name,
		Email: candidate.Email,
		Phone: candidate.Phone,
	}, pairs)

	finalScore := summary.FinalScore
	interview.FinalScore = &finalScore
	interview.Summary = summary.Summary
	interview.HiringRecommendation = summary.HiringRecommendation
	interview.Strengths = summary.Strengths
	interview.AreasForImprovement = summary.AreasForImprovement

	log.Printf("🏁 Interview completed for candidate %s with final score %d\n", candidate.ID, finalScore)
}

// SetPauseResume forces the status to paused or ongoing. Completed interviews
// stay terminal.
func (s *interviewService) SetPauseResume(ctx context.Context, candidateID uuid.UUID, action string) (*models.Interview, error) {
	if action != ActionPause && action != ActionResume {
		return nil, NewValidationError("invalid action %q", action)
	}

	unlock := s.lockCandidate(candidateID)
	defer unlock()

	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}

	interview := &candidate.Interview

	if interview.Status == models.StatusCompleted {
		return nil, NewValidationError("interview already completed")
	}

	if action == ActionPause {
		interview.Status = models.StatusPaused
	} else {
		interview.Status = models.StatusOngoing
	}

	if err := s.candidateRepo.SaveInterview(candidate); err != nil {
		return nil, err
	}

	return interview, nil
}

// GetInterview is a read-only persistence passthrough.
func (s *interviewService) GetInterview(ctx context.Context, candidateID uuid.UUID) (*models.Interview, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	return &candidate.Interview, nil
}
