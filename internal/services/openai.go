package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rizkypratama/ai-interviewer/internal/models"
)

type openaiProvider struct {
	apiKey        string
	modelName     string
	baseURL       string
	client        *http.Client
	promptBuilder *PromptBuilder
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewOpenAIProvider builds the OpenAI adapter. baseURL is overridable so the
// same adapter works against any chat-completions-compatible endpoint.
func NewOpenAIProvider(apiKey, modelName, baseURL string, timeout time.Duration) Provider {
	return &openaiProvider{
		apiKey:    apiKey,
		modelName: modelName,
		baseURL:   baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		promptBuilder: NewPromptBuilder(),
	}
}

func (o *openaiProvider) Name() string {
	return "openai"
}

func (o *openaiProvider) GenerateQuestions(ctx context.Context, role string) ([]models.GeneratedQuestion, error) {
	prompt := o.promptBuilder.BuildQuestionGenerationPrompt(role)

	response, err := o.chatCompletion(ctx, prompt, 1000, 0.7)
	if err != nil {
		return nil, newProviderError(o.Name(), "question generation failed", err)
	}

	questions, err := parseGeneratedQuestions(response)
	if err != nil {
		return nil, newProviderError(o.Name(), "invalid questions response", err)
	}

	return questions, nil
}

func (o *openaiProvider) ScoreAnswer(ctx context.Context, question, answer string, difficulty models.Difficulty) (*models.ScoreResult, error) {
	prompt := o.promptBuilder.BuildAnswerScoringPrompt(question, answer, difficulty)

	response, err := o.chatCompletion(ctx, prompt, 300, 0.1)
	if err != nil {
		return nil, newProviderError(o.Name(), "answer scoring failed", err)
	}

	result, err := parseScoreResult(response, o.Name())
	if err != nil {
		return nil, newProviderError(o.Name(), "invalid score response", err)
	}

	return result, nil
}

func (o *openaiProvider) GenerateSummary(ctx context.Context, profile models.CandidateProfile, pairs []models.QAPair) (*models.SummaryResult, error) {
	prompt := o.promptBuilder.BuildSummaryPrompt(profile, pairs)

	response, err := o.chatCompletion(ctx, prompt, 500, 0.2)
	if err != nil {
		return nil, newProviderError(o.Name(), "summary generation failed", err)
	}

	result, err := parseSummaryResult(response)
	if err != nil {
		return nil, newProviderError(o.Name(), "invalid summary response", err)
	}

	return result, nil
}

func (o *openaiProvider) chatCompletion(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: o.modelName,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(payload, &completion); err != nil {
		return "", fmt.Errorf("invalid response payload: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil {
			return "", fmt.Errorf("api error (%d): %s", resp.StatusCode, completion.Error.Message)
		}
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty completion response")
	}

	return completion.Choices[0].Message.Content, nil
}
