package services

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"rizkypratama/ai-interviewer/internal/models"
)

type geminiProvider struct {
	client        *genai.Client
	modelName     string
	timeout       time.Duration
	promptBuilder *PromptBuilder
}

// NewGeminiProvider builds the Gemini adapter. The timeout bounds every
// outbound call; a hung request surfaces as a ProviderError like any other
// failure.
func NewGeminiProvider(apiKey, modelName string, timeout time.Duration) (Provider, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiProvider{
		client:        client,
		modelName:     modelName,
		timeout:       timeout,
		promptBuilder: NewPromptBuilder(),
	}, nil
}

func (g *geminiProvider) Name() string {
	return "gemini"
}

func (g *geminiProvider) GenerateQuestions(ctx context.Context, role string) ([]models.GeneratedQuestion, error) {
	prompt := g.promptBuilder.BuildQuestionGenerationPrompt(role)

	response, err := g.generateText(ctx, prompt, 0.7)
	if err != nil {
		return nil, newProviderError(g.Name(), "question generation failed", err)
	}

	questions, err := parseGeneratedQuestions(response)
	if err != nil {
		return nil, newProviderError(g.Name(), "invalid questions response", err)
	}

	return questions, nil
}

func (g *geminiProvider) ScoreAnswer(ctx context.Context, question, answer string, difficulty models.Difficulty) (*models.ScoreResult, error) {
	prompt := g.promptBuilder.BuildAnswerScoringPrompt(question, answer, difficulty)

	response, err := g.generateText(ctx, prompt, 0.1)
	if err != nil {
		return nil, newProviderError(g.Name(), "answer scoring failed", err)
	}

	result, err := parseScoreResult(response, g.Name())
	if err != nil {
		return nil, newProviderError(g.Name(), "invalid score response", err)
	}

	return result, nil
}

func (g *geminiProvider) GenerateSummary(ctx context.Context, profile models.CandidateProfile, pairs []models.QAPair) (*models.SummaryResult, error) {
	prompt := g.promptBuilder.BuildSummaryPrompt(profile, pairs)

	response, err := g.generateText(ctx, prompt, 0.2)
	if err != nil {
		return nil, newProviderError(g.Name(), "summary generation failed", err)
	}

	result, err := parseSummaryResult(response)
	if err != nil {
		return nil, newProviderError(g.Name(), "invalid summary response", err)
	}

	return result, nil
}

func (g *geminiProvider) generateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
