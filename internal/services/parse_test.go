package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rizkypratama/ai-interviewer/internal/models"
)

const validQuestionsJSON = `[
  { "q": "What is a closure?", "difficulty": "easy" },
  { "q": "What does let do?", "difficulty": "easy" },
  { "q": "Design a REST API for a todo app.", "difficulty": "medium" },
  { "q": "How do you secure an Express API?", "difficulty": "medium" },
  { "q": "Scale a websocket fanout to 1M clients.", "difficulty": "hard" },
  { "q": "Diagnose a CPU-bound Node.js service.", "difficulty": "hard" }
]`

func TestParseGeneratedQuestions_Strict(t *testing.T) {
	questions, err := parseGeneratedQuestions(validQuestionsJSON)
	require.NoError(t, err)
	require.Len(t, questions, 6)
	assert.Equal(t, "What is a closure?", questions[0].Text)
	assert.Equal(t, models.DifficultyEasy, questions[0].Difficulty)
}

func TestParseGeneratedQuestions_RecoversFromProse(t *testing.T) {
	wrapped := "Here are your questions:\n```json\n" + validQuestionsJSON + "\n```\nGood luck!"

	questions, err := parseGeneratedQuestions(wrapped)
	require.NoError(t, err)
	assert.Len(t, questions, 6)
}

func TestParseGeneratedQuestions_WrongCount(t *testing.T) {
	_, err := parseGeneratedQuestions(`[{ "q": "only one", "difficulty": "easy" }]`)
	assert.Error(t, err)
}

func TestParseGeneratedQuestions_BadDistribution(t *testing.T) {
	_, err := parseGeneratedQuestions(`[
	  { "q": "a", "difficulty": "easy" },
	  { "q": "b", "difficulty": "easy" },
	  { "q": "c", "difficulty": "easy" },
	  { "q": "d", "difficulty": "medium" },
	  { "q": "e", "difficulty": "hard" },
	  { "q": "f", "difficulty": "hard" }
	]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "difficulty distribution")
}

func TestParseGeneratedQuestions_BadDifficulty(t *testing.T) {
	_, err := parseGeneratedQuestions(`[
	  { "q": "a", "difficulty": "easy" },
	  { "q": "b", "difficulty": "easy" },
	  { "q": "c", "difficulty": "medium" },
	  { "q": "d", "difficulty": "medium" },
	  { "q": "e", "difficulty": "impossible" },
	  { "q": "f", "difficulty": "hard" }
	]`)
	assert.Error(t, err)
}

func TestParseGeneratedQuestions_MissingText(t *testing.T) {
	_, err := parseGeneratedQuestions(`[
	  { "q": "", "difficulty": "easy" },
	  { "q": "b", "difficulty": "easy" },
	  { "q": "c", "difficulty": "medium" },
	  { "q": "d", "difficulty": "medium" },
	  { "q": "e", "difficulty": "hard" },
	  { "q": "f", "difficulty": "hard" }
	]`)
	assert.Error(t, err)
}

func TestParseGeneratedQuestions_Unparseable(t *testing.T) {
	_, err := parseGeneratedQuestions("I could not produce questions today, sorry.")
	assert.Error(t, err)
}

func TestParseScoreResult_Strict(t *testing.T) {
	result, err := parseScoreResult(`{"score": 72, "reason": "Mostly accurate."}`, "gemini")
	require.NoError(t, err)
	assert.Equal(t, 72, result.Score)
	assert.Equal(t, "Mostly accurate.", result.Reason)
	assert.Equal(t, "gemini", result.Method)
}

func TestParseScoreResult_RecoversFromProse(t *testing.T) {
	result, err := parseScoreResult("Sure! Here is the evaluation: {\"score\": 45.6, \"reason\": \"Partial.\"} Hope that helps.", "openai")
	require.NoError(t, err)
	assert.Equal(t, 46, result.Score)
}

func TestParseScoreResult_Invalid(t *testing.T) {
	cases := []string{
		`{"score": 150, "reason": "too high"}`,
		`{"score": -3, "reason": "negative"}`,
		`{"score": 50, "reason": "   "}`,
		`{"reason": "missing score"}`,
		`no json at all`,
	}
	for _, response := range cases {
		_, err := parseScoreResult(response, "gemini")
		assert.Error(t, err, "response: %s", response)
	}
}

func TestParseSummaryResult_Defaults(t *testing.T) {
	result, err := parseSummaryResult(`{"finalScore": 81, "summary": "Strong candidate."}`)
	require.NoError(t, err)
	assert.Equal(t, 81, result.FinalScore)
	assert.Equal(t, "Strong candidate.", result.Summary)
	assert.Equal(t, "Maybe", result.HiringRecommendation)
	assert.Equal(t, "Not specified", result.Strengths)
	assert.Equal(t, "Not specified", result.AreasForImprovement)
}

func TestParseSummaryResult_FullShape(t *testing.T) {
	result, err := parseSummaryResult(`{
	  "finalScore": 64,
	  "summary": "Decent overall.",
	  "hiringRecommendation": "Yes - solid fundamentals",
	  "strengths": "APIs, debugging",
	  "areasForImprovement": "System design"
	}`)
	require.NoError(t, err)
	assert.Equal(t, "Yes - solid fundamentals", result.HiringRecommendation)
	assert.Equal(t, "APIs, debugging", result.Strengths)
	assert.Equal(t, "System design", result.AreasForImprovement)
}

func TestParseSummaryResult_Invalid(t *testing.T) {
	cases := []string{
		`{"finalScore": 101, "summary": "x"}`,
		`{"finalScore": 50, "summary": ""}`,
		`{"summary": "missing score"}`,
		`total nonsense`,
	}
	for _, response := range cases {
		_, err := parseSummaryResult(response)
		assert.Error(t, err, "response: %s", response)
	}
}

func TestExtractJSON_PrefersEarliestSpan(t *testing.T) {
	assert.Equal(t, `[1, 2, 3]`, extractJSON("prefix [1, 2, 3] suffix"))
	assert.Equal(t, `{"a": 1}`, extractJSON("prefix {\"a\": 1} suffix"))
	assert.Equal(t, `[{"a": 1}]`, extractJSON("result: [{\"a\": 1}] done"))
}
