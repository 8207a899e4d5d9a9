package services

import (
	"encoding/json"
	"fmt"

	"rizkypratama/ai-interviewer/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionGenerationPrompt creates prompt for interview question generation
func (pb *PromptBuilder) BuildQuestionGenerationPrompt(role string) string {
	return fmt.Sprintf(`You are an expert technical interviewer. Generate exactly 6 interview questions for a %s position.

Requirements:
- 2 EASY questions (basic concepts, syntax, fundamentals)
- 2 MEDIUM questions (practical application, problem-solving)
- 2 HARD questions (system design, complex scenarios, optimization)

Make sure questions are:
- Specific to the role's core technologies
- Progressive in difficulty
- Practical and relevant to real-world scenarios
- Different from previous interviews (generate fresh questions each time)

Return ONLY a valid JSON array with this exact format:
[
  { "q": "question text here", "difficulty": "easy" },
  { "q": "question text here", "difficulty": "easy" },
  { "q": "question text here", "difficulty": "medium" },
  { "q": "question text here", "difficulty": "medium" },
  { "q": "question text here", "difficulty": "hard" },
  { "q": "question text here", "difficulty": "hard" }
]

Return ONLY the JSON array, no other text.`, role)
}

// BuildAnswerScoringPrompt creates prompt for scoring a single answer
func (pb *PromptBuilder) BuildAnswerScoringPrompt(question, answer string, difficulty models.Difficulty) string {
	return fmt.Sprintf(`You are an expert technical interviewer evaluating a candidate's answer.

QUESTION: %s
DIFFICULTY: %s
CANDIDATE'S ANSWER: %s

CRITICAL: Focus on CONTENT RELEVANCE and TECHNICAL ACCURACY, not just length.

Evaluate this answer based on:
1. **RELEVANCE**: Does the answer actually address the question asked? (Most important)
2. **TECHNICAL ACCURACY**: Are the technical details correct?
3. **COMPLETENESS**: Does it cover the main aspects of the question?
4. **UNDERSTANDING**: Does it show genuine understanding vs. just keywords?
5. **PRACTICAL KNOWLEDGE**: Does it demonstrate real-world application?

SCORING GUIDELINES (be strict about relevance):
- 0-20: Completely irrelevant or wrong answer (including copying the question)
- 21-40: Partially relevant but major gaps or inaccuracies
- 41-60: Somewhat relevant with some correct points
- 61-80: Mostly relevant and technically sound
- 81-100: Highly relevant, accurate, and comprehensive

PENALIZE HEAVILY for:
- Answers that don't address the question
- Copying the question as an answer (should get 0-10 points)
- Generic responses with no specific content
- Technical inaccuracies
- "I don't know" or "no idea" responses (should get 0-15 points)

Provide your evaluation in this exact JSON format:
{
  "score": [number between 0-100],
  "reason": "[2-3 sentence explanation focusing on relevance and accuracy]"
}

Return ONLY the JSON object, no other text.`, question, difficulty, answer)
}

// BuildSummaryPrompt creates prompt for the final hiring summary
func (pb *PromptBuilder) BuildSummaryPrompt(profile models.CandidateProfile, pairs []models.QAPair) string {
	profileJSON, _ := json.MarshalIndent(profile, "", "  ")
	pairsJSON, _ := json.MarshalIndent(pairs, "", "  ")

	return fmt.Sprintf(`You are an expert technical interviewer reviewing a candidate's performance.

CANDIDATE PROFILE:
%s

INTERVIEW QUESTIONS AND RESPONSES WITH SCORES:
%s

Based on the candidate's performance, provide a comprehensive evaluation including:

1. **Overall Assessment**: Brief summary of the candidate's technical knowledge
2. **Strengths**: What the candidate did well
3. **Areas for Improvement**: Where the candidate needs work
4. **Hiring Recommendation**: Should this candidate be hired? (Yes/No/Maybe)
5. **Final Score**: Overall score out of 100

Provide your evaluation in this exact JSON format:
{
  "summary": "[3-4 sentence professional summary of the candidate's performance, strengths, and areas for improvement]",
  "finalScore": [number between 0-100],
  "hiringRecommendation": "[Yes/No/Maybe with brief reasoning]",
  "strengths": "[List of 2-3 key strengths]",
  "areasForImprovement": "[List of 2-3 areas needing work]"
}

Return ONLY the JSON object, no other text.`, string(profileJSON), string(pairsJSON))
}
