package services

import (
	"context"
	"log"
	"time"

	"rizkypratama/ai-interviewer/internal/models"
)

// ScoredPair is one batch-scoring outcome: the input pair plus the fresh result.
type ScoredPair struct {
	Pair   models.QAPair
	Result models.ScoreResult
}

// AIService drives the provider fallback chains. Every method tries the
// configured providers in fixed priority order, first success wins, and
// degrades to a heuristic on exhaustion. None of them can fail.
type AIService interface {
	GenerateQuestions(ctx context.Context, role string) []models.GeneratedQuestion
	ScoreAnswer(ctx context.Context, question, answer string, difficulty models.Difficulty) *models.ScoreResult
	GenerateSummary(ctx context.Context, profile models.CandidateProfile, pairs []models.QAPair) *models.SummaryResult
	ScoreAnswers(ctx context.Context, pairs []models.QAPair) []ScoredPair
	HasProviders() bool
}

type aiService struct {
	providers      []Provider
	interCallDelay time.Duration
}

func NewAIService(providers []Provider) AIService {
	return &aiService{
		providers:      providers,
		interCallDelay: 500 * time.Millisecond,
	}
}

func (s *aiService) HasProviders() bool {
	return len(s.providers) > 0
}

// GenerateQuestions returns six unscored question skeletons. Provider failures
// are logged and skipped; the static bank is the terminal fallback.
func (s *aiService) GenerateQuestions(ctx context.Context, role string) []models.GeneratedQuestion {
	for _, provider := range s.providers {
		questions, err := provider.GenerateQuestions(ctx, role)
		if err != nil {
			log.Printf("❌ %s question generation failed: %v\n", provider.Name(), err)
			continue
		}
		log.Printf("✅ %s generated %d questions\n", provider.Name(), len(questions))
		return questions
	}

	log.Println("Using fallback questions (no AI available)")
	return FallbackQuestions()
}

// ScoreAnswer scores one answer. Each provider attempt is independent and
// stateless; the heuristic scorer is the terminal fallback.
func (s *aiService) ScoreAnswer(ctx context.Context, question, answer string, difficulty models.Difficulty) *models.ScoreResult {
	for _, provider := range s.providers {
		result, err := provider.ScoreAnswer(ctx, question, answer, difficulty)
		if err != nil {
			log.Printf("❌ %s scoring failed: %v\n", provider.Name(), err)
			continue
		}
		log.Printf("✅ %s scoring successful: %d/100\n", provider.Name(), result.Score)
		return result
	}

	log.Println("Using heuristic scoring as fallback")
	return HeuristicScoreAnswer(question, answer, difficulty)
}

// GenerateSummary produces the completion-time hiring summary, falling back to
// the arithmetic-mean heuristic on provider exhaustion.
func (s *aiService) GenerateSummary(ctx context.Context, profile models.CandidateProfile, pairs []models.QAPair) *models.SummaryResult {
	for _, provider := range s.providers {
		result, err := provider.GenerateSummary(ctx, profile, pairs)
		if err != nil {
			log.Printf("❌ %s summary failed: %v\n", provider.Name(), err)
			continue
		}
		log.Printf("✅ %s summary successful: %d/100\n", provider.Name(), result.FinalScore)
		return result
	}

	log.Println("Using heuristic summary as fallback")
	return HeuristicSummary(profile, pairs)
}

// ScoreAnswers scores pairs sequentially with a small inter-call delay when a
// network provider is configured. A cancelled pair is captured as
// {score: 0, method: "error"} and never aborts the batch.
func (s *aiService) ScoreAnswers(ctx context.Context, pairs []models.QAPair) []ScoredPair {
	results := make([]ScoredPair, 0, len(pairs))

	for i, pair := range pairs {
		log.Printf("Scoring answer %d/%d\n", i+1, len(pairs))

		if err := ctx.Err(); err != nil {
			results = append(results, ScoredPair{
				Pair: pair,
				Result: models.ScoreResult{
					Score:  0,
					Reason: "Scoring failed: " + err.Error(),
					Method: "error",
				},
			})
			continue
		}

		result := s.ScoreAnswer(ctx, pair.Question, pair.Answer, pair.Difficulty)
		results = append(results, ScoredPair{Pair: pair, Result: *result})

		// Avoid rate-limit bursts against network providers
		if len(s.providers) > 0 && i < len(pairs)-1 {
			time.Sleep(s.interCallDelay)
		}
	}

	return results
}
