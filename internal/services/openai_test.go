package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rizkypratama/ai-interviewer/internal/models"
)

func chatCompletionStub(t *testing.T, content string, gotReq *chatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if gotReq != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(gotReq))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
}

func TestOpenAIProvider_GenerateQuestions(t *testing.T) {
	var gotReq chatCompletionRequest
	server := chatCompletionStub(t, validQuestionsJSON, &gotReq)
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "gpt-4o", server.URL, time.Second)

	questions, err := provider.GenerateQuestions(context.Background(), DefaultRole)
	require.NoError(t, err)

	assert.Len(t, questions, 6)
	assert.Equal(t, "gpt-4o", gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, DefaultRole)
}

func TestOpenAIProvider_ScoreAnswer(t *testing.T) {
	server := chatCompletionStub(t, `{"score": 77, "reason": "solid answer"}`, nil)
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "gpt-4o", server.URL, time.Second)

	result, err := provider.ScoreAnswer(context.Background(), "Explain closures", "they capture scope", models.DifficultyEasy)
	require.NoError(t, err)

	assert.Equal(t, 77, result.Score)
	assert.Equal(t, "solid answer", result.Reason)
	assert.Equal(t, "openai", result.Method)
}

func TestOpenAIProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limit exceeded"},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "gpt-4o", server.URL, time.Second)

	_, err := provider.ScoreAnswer(context.Background(), "q", "a", models.DifficultyEasy)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "openai", perr.Provider)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestOpenAIProvider_MalformedCompletionRejected(t *testing.T) {
	server := chatCompletionStub(t, "I cannot help with scoring today.", nil)
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "gpt-4o", server.URL, time.Second)

	_, err := provider.ScoreAnswer(context.Background(), "q", "a", models.DifficultyEasy)

	var perr *ProviderError
	assert.ErrorAs(t, err, &perr)
}

func TestOpenAIProvider_EmptyChoicesRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "gpt-4o", server.URL, time.Second)

	_, err := provider.GenerateSummary(context.Background(), models.CandidateProfile{}, nil)

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, err.Error(), "empty completion")
}
