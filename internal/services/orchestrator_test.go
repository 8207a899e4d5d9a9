package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rizkypratama/ai-interviewer/internal/models"
)

type fakeProvider struct {
	name         string
	fail         bool
	generated    []models.GeneratedQuestion
	score        int
	summaryScore int

	generateCalls int
	scoreCalls    int
	summaryCalls  int
}

func (f *fakeProvider) Name() string {
	return f.name
}

func (f *fakeProvider) GenerateQuestions(ctx context.Context, role string) ([]models.GeneratedQuestion, error) {
	f.generateCalls++
	if f.fail {
		return nil, newProviderError(f.name, "generation failed", nil)
	}
	if f.generated != nil {
		return f.generated, nil
	}
	return FallbackQuestions(), nil
}

func (f *fakeProvider) ScoreAnswer(ctx context.Context, question, answer string, difficulty models.Difficulty) (*models.ScoreResult, error) {
	f.scoreCalls++
	if f.fail {
		return nil, newProviderError(f.name, "scoring failed", nil)
	}
	return &models.ScoreResult{Score: f.score, Reason: "provider reason", Method: f.name}, nil
}

func (f *fakeProvider) GenerateSummary(ctx context.Context, profile models.CandidateProfile, pairs []models.QAPair) (*models.SummaryResult, error) {
	f.summaryCalls++
	if f.fail {
		return nil, newProviderError(f.name, "summary failed", nil)
	}
	return &models.SummaryResult{
		FinalScore:           f.summaryScore,
		Summary:              "provider summary",
		HiringRecommendation: "Yes",
		Strengths:            "many",
		AreasForImprovement:  "few",
	}, nil
}

func newTestAIService(providers ...Provider) *aiService {
	return &aiService{providers: providers, interCallDelay: 0}
}

func TestGenerateQuestions_NoProviders(t *testing.T) {
	svc := newTestAIService()

	questions := svc.GenerateQuestions(context.Background(), DefaultRole)
	require.Len(t, questions, 6)

	counts := map[models.Difficulty]int{}
	for _, q := range questions {
		counts[q.Difficulty]++
	}
	assert.Equal(t, 2, counts[models.DifficultyEasy])
	assert.Equal(t, 2, counts[models.DifficultyMedium])
	assert.Equal(t, 2, counts[models.DifficultyHard])
}

func TestGenerateQuestions_FirstSuccessWins(t *testing.T) {
	first := &fakeProvider{name: "gemini"}
	second := &fakeProvider{name: "openai"}
	svc := newTestAIService(first, second)

	questions := svc.GenerateQuestions(context.Background(), DefaultRole)

	assert.Len(t, questions, 6)
	assert.Equal(t, 1, first.generateCalls)
	assert.Equal(t, 0, second.generateCalls)
}

func TestGenerateQuestions_FallsThroughOnFailure(t *testing.T) {
	first := &fakeProvider{name: "gemini", fail: true}
	second := &fakeProvider{name: "openai"}
	svc := newTestAIService(first, second)

	questions := svc.GenerateQuestions(context.Background(), DefaultRole)

	assert.Len(t, questions, 6)
	assert.Equal(t, 1, first.generateCalls)
	assert.Equal(t, 1, second.generateCalls)
}

func TestGenerateQuestions_AllProvidersFail(t *testing.T) {
	first := &fakeProvider{name: "gemini", fail: true}
	second := &fakeProvider{name: "openai", fail: true}
	svc := newTestAIService(first, second)

	questions := svc.GenerateQuestions(context.Background(), DefaultRole)

	require.Len(t, questions, 6)
	assert.Equal(t, FallbackQuestions(), questions)
}

func TestScoreAnswer_ProviderPreferred(t *testing.T) {
	provider := &fakeProvider{name: "gemini", score: 88}
	svc := newTestAIService(provider)

	result := svc.ScoreAnswer(context.Background(), "q", "a", models.DifficultyEasy)

	assert.Equal(t, 88, result.Score)
	assert.Equal(t, "gemini", result.Method)
}

func TestScoreAnswer_HeuristicFallback(t *testing.T) {
	provider := &fakeProvider{name: "gemini", fail: true}
	svc := newTestAIService(provider)

	result := svc.ScoreAnswer(context.Background(), "Explain closures", "", models.DifficultyEasy)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "heuristic", result.Method)
	assert.Equal(t, 1, provider.scoreCalls)
}

func TestGenerateSummary_HeuristicFallback(t *testing.T) {
	provider := &fakeProvider{name: "openai", fail: true}
	svc := newTestAIService(provider)

	scores := []int{70, 80}
	pairs := []models.QAPair{{Score: &scores[0]}, {Score: &scores[1]}}

	result := svc.GenerateSummary(context.Background(), models.CandidateProfile{Name: "Ada"}, pairs)

	assert.Equal(t, 75, result.FinalScore)
	assert.Equal(t, "Recommended for next round", result.HiringRecommendation)
	assert.Equal(t, 1, provider.summaryCalls)
}

func TestGenerateSummary_ProviderPreferred(t *testing.T) {
	provider := &fakeProvider{name: "gemini", summaryScore: 91}
	svc := newTestAIService(provider)

	result := svc.GenerateSummary(context.Background(), models.CandidateProfile{}, nil)

	assert.Equal(t, 91, result.FinalScore)
	assert.Equal(t, "provider summary", result.Summary)
}

func TestScoreAnswers_HeuristicBatch(t *testing.T) {
	svc := newTestAIService()

	pairs := []models.QAPair{
		{Question: "Explain closures", Answer: "", Difficulty: models.DifficultyEasy},
		{Question: "Explain hooks", Answer: "hello", Difficulty: models.DifficultyEasy},
	}

	results := svc.ScoreAnswers(context.Background(), pairs)
	require.Len(t, results, 2)

	assert.Equal(t, 0, results[0].Result.Score)
	assert.Equal(t, "heuristic", results[0].Result.Method)
	assert.Equal(t, "heuristic", results[1].Result.Method)
}

func TestScoreAnswers_CancelledContextCaptured(t *testing.T) {
	provider := &fakeProvider{name: "gemini", score: 50}
	svc := newTestAIService(provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := []models.QAPair{
		{Question: "q1", Answer: "a1", Difficulty: models.DifficultyEasy},
		{Question: "q2", Answer: "a2", Difficulty: models.DifficultyEasy},
	}

	results := svc.ScoreAnswers(ctx, pairs)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Equal(t, 0, r.Result.Score)
		assert.Equal(t, "error", r.Result.Method)
	}
}
