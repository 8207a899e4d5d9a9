package services

import (
	"context"

	"rizkypratama/ai-interviewer/internal/models"
)

// Provider is one interchangeable question/scoring integration. Every method
// either returns a fully validated result or a *ProviderError; the
// orchestration layer never distinguishes sub-causes.
type Provider interface {
	Name() string
	GenerateQuestions(ctx context.Context, role string) ([]models.GeneratedQuestion, error)
	ScoreAnswer(ctx context.Context, question, answer string, difficulty models.Difficulty) (*models.ScoreResult, error)
	GenerateSummary(ctx context.Context, profile models.CandidateProfile, pairs []models.QAPair) (*models.SummaryResult, error)
}

// ProviderError wraps any adapter failure: transport, auth, malformed response
// or semantic validation. It is always recovered locally by falling through to
// the next provider or the heuristic.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func newProviderError(provider, message string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Message: message, Err: err}
}
