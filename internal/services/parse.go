package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"rizkypratama/ai-interviewer/internal/models"
)

// parseJSONResponse runs the two-stage parse contract: strict parse first, then
// one bounded substring-extraction retry, then hard failure.
func parseJSONResponse(response string, target interface{}) error {
	if err := json.Unmarshal([]byte(response), target); err == nil {
		return nil
	}

	jsonStr := extractJSON(response)
	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	// Prefer an array when it opens before the object
	if startArr != -1 && endArr != -1 && endArr > startArr && (startObj == -1 || startArr < startObj) {
		return text[startArr : endArr+1]
	}
	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}
	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

type rawQuestion struct {
	Text       string `json:"q"`
	Difficulty string `json:"difficulty"`
}

type rawScore struct {
	Score  *float64 `json:"score"`
	Reason string   `json:"reason"`
}

type rawSummary struct {
	FinalScore           *float64 `json:"finalScore"`
	Summary              string   `json:"summary"`
	HiringRecommendation string   `json:"hiringRecommendation"`
	Strengths            string   `json:"strengths"`
	AreasForImprovement  string   `json:"areasForImprovement"`
}

// parseGeneratedQuestions validates the provider generation shape: exactly six
// questions, two per difficulty, no empty text. Partial sets are rejected.
func parseGeneratedQuestions(response string) ([]models.GeneratedQuestion, error) {
	var raw []rawQuestion
	if err := parseJSONResponse(response, &raw); err != nil {
		return nil, err
	}

	if len(raw) != models.QuestionCount {
		return nil, fmt.Errorf("invalid questions array: expected %d questions, got %d", models.QuestionCount, len(raw))
	}

	counts := map[models.Difficulty]int{}
	questions := make([]models.GeneratedQuestion, 0, models.QuestionCount)
	for i, q := range raw {
		text := strings.TrimSpace(q.Text)
		if text == "" {
			return nil, fmt.Errorf("invalid question at index %d: missing text", i)
		}
		difficulty := models.Difficulty(strings.ToLower(strings.TrimSpace(q.Difficulty)))
		switch difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			return nil, fmt.Errorf("invalid question at index %d: bad difficulty %q", i, q.Difficulty)
		}
		counts[difficulty]++
		questions = append(questions, models.GeneratedQuestion{Text: text, Difficulty: difficulty})
	}

	for _, difficulty := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		if counts[difficulty] != 2 {
			return nil, fmt.Errorf("invalid difficulty distribution: expected 2 %s questions, got %d", difficulty, counts[difficulty])
		}
	}

	return questions, nil
}

// parseScoreResult validates the provider scoring shape: an integer score in
// [0,100] and a non-empty reason.
func parseScoreResult(response, method string) (*models.ScoreResult, error) {
	var raw rawScore
	if err := parseJSONResponse(response, &raw); err != nil {
		return nil, err
	}

	if raw.Score == nil || *raw.Score < 0 || *raw.Score > 100 {
		return nil, fmt.Errorf("invalid score in response")
	}
	reason := strings.TrimSpace(raw.Reason)
	if reason == "" {
		return nil, fmt.Errorf("invalid or missing reason")
	}

	return &models.ScoreResult{
		Score:  clampScore(math.Round(*raw.Score)),
		Reason: reason,
		Method: method,
	}, nil
}

// parseSummaryResult validates the provider summary shape and fills the
// documented defaults for the optional fields.
func parseSummaryResult(response string) (*models.SummaryResult, error) {
	var raw rawSummary
	if err := parseJSONResponse(response, &raw); err != nil {
		return nil, err
	}

	if raw.FinalScore == nil || *raw.FinalScore < 0 || *raw.FinalScore > 100 {
		return nil, fmt.Errorf("invalid finalScore in response")
	}
	summary := strings.TrimSpace(raw.Summary)
	if summary == "" {
		return nil, fmt.Errorf("invalid or missing summary")
	}

	result := &models.SummaryResult{
		FinalScore:           clampScore(math.Round(*raw.FinalScore)),
		Summary:              summary,
		HiringRecommendation: raw.HiringRecommendation,
		Strengths:            raw.Strengths,
		AreasForImprovement:  raw.AreasForImprovement,
	}
	if result.HiringRecommendation == "" {
		result.HiringRecommendation = "Maybe"
	}
	if result.Strengths == "" {
		result.Strengths = "Not specified"
	}
	if result.AreasForImprovement == "" {
		result.AreasForImprovement = "Not specified"
	}

	return result, nil
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}
