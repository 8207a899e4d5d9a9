package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"rizkypratama/ai-interviewer/internal/models"
)

const methodHeuristic = "heuristic"

// codePatterns match code-like fragments in an answer: fenced blocks,
// declarations, brace/paren clusters, promise/async/arrow syntax.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile("```[\\s\\S]*?```"),
	regexp.MustCompile(`(?i)function\s+\w+\s*\(`),
	regexp.MustCompile(`const\s+\w+\s*=`),
	regexp.MustCompile(`(?i)class\s+\w+`),
	regexp.MustCompile(`[{}();]`),
	regexp.MustCompile(`\.then\s*\(`),
	regexp.MustCompile(`(?i)async\s+function`),
	regexp.MustCompile(`=>\s*\{`),
}

type keywordCategory struct {
	name     string
	keywords []string
}

var keywordCategories = []keywordCategory{
	{"javascript", []string{"async", "promise", "callback", "closure", "prototype", "hoisting", "scope"}},
	{"frontend", []string{"react", "jsx", "component", "hook", "state", "props", "virtual dom", "redux", "context"}},
	{"backend", []string{"node", "express", "middleware", "router", "api", "rest", "endpoint"}},
	{"database", []string{"mongodb", "sql", "query", "index", "schema", "collection", "document"}},
	{"performance", []string{"optimization", "caching", "lazy loading", "debounce", "throttle", "memoization"}},
	{"concepts", []string{"algorithm", "data structure", "complexity", "scalability", "architecture"}},
}

var genericPhrases = []string{
	"i think",
	"maybe",
	"probably",
	"not sure",
	"don't know",
	"i don't know",
	"not sure about this",
	"maybe this",
	"probably this",
}

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// HeuristicScoreAnswer computes a deterministic 0-100 score for an answer from
// lexical features only. It never fails and depends on nothing external, which
// makes it the terminal fallback of the scoring chain.
func HeuristicScoreAnswer(question, answer string, difficulty models.Difficulty) *models.ScoreResult {
	cleanAnswer := strings.TrimSpace(answer)
	cleanQuestion := strings.TrimSpace(question)

	if cleanAnswer == "" {
		return &models.ScoreResult{
			Score:  0,
			Reason: "No answer provided",
			Method: methodHeuristic,
		}
	}

	length := len([]rune(cleanAnswer))

	base := 15
	switch models.Difficulty(strings.ToLower(string(difficulty))) {
	case models.DifficultyEasy:
		base = 15
	case models.DifficultyMedium:
		base = 20
	case models.DifficultyHard:
		base = 25
	}

	lengthScore := 0
	switch {
	case length < 10:
		lengthScore = 0
	case length < 50:
		lengthScore = 5
	case length < 150:
		lengthScore = 10
	case length < 300:
		lengthScore = 15
	default:
		lengthScore = 20
	}

	score := base + lengthScore

	hasCode := false
	for _, pattern := range codePatterns {
		if pattern.MatchString(cleanAnswer) {
			hasCode = true
			break
		}
	}
	if hasCode {
		score += 15
	}

	lowerAnswer := strings.ToLower(cleanAnswer)
	var matchedCategories []string
	for _, category := range keywordCategories {
		hits := 0
		for _, keyword := range category.keywords {
			if strings.Contains(lowerAnswer, keyword) {
				hits++
			}
		}
		if hits > 0 {
			matchedCategories = append(matchedCategories, category.name)
			bonus := hits * 2
			if bonus > 5 {
				bonus = 5
			}
			score += bonus
		}
	}
	if len(matchedCategories) >= 2 {
		score += 10
	}

	genericCount := 0
	for _, phrase := range genericPhrases {
		if strings.Contains(lowerAnswer, phrase) {
			genericCount++
		}
	}
	if genericCount >= 2 {
		score -= 15
	}

	relevantTerms := countRelevantTerms(cleanQuestion, cleanAnswer)
	relevanceScore := relevantTerms * 5
	if relevanceScore > 30 {
		relevanceScore = 30
	}
	score += relevanceScore

	// Long but completely off-topic answers get penalized hard
	if relevantTerms == 0 && length > 20 {
		score -= 20
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	reason := fmt.Sprintf("Heuristic scoring: length (%d chars), ", length)
	if hasCode {
		reason += "code examples, "
	}
	if len(matchedCategories) > 0 {
		reason += fmt.Sprintf("technical keywords (%s), ", strings.Join(matchedCategories, ", "))
	}
	reason += fmt.Sprintf("relevance (%d terms), difficulty: %s", relevantTerms, difficulty)

	return &models.ScoreResult{
		Score:  score,
		Reason: reason,
		Method: methodHeuristic,
	}
}

// countRelevantTerms counts question words (>3 chars) that overlap the answer's
// word set by substring in either direction, plus a few hardcoded semantic
// equivalences.
func countRelevantTerms(question, answer string) int {
	questionWords := meaningfulWords(question)
	answerWords := meaningfulWords(answer)

	count := 0
	for _, qWord := range questionWords {
		for _, aWord := range answerWords {
			if strings.Contains(aWord, qWord) || strings.Contains(qWord, aWord) ||
				(strings.Contains(qWord, "react") && strings.Contains(aWord, "component")) ||
				(strings.Contains(qWord, "javascript") && (strings.Contains(aWord, "js") || strings.Contains(aWord, "script"))) ||
				(strings.Contains(qWord, "node") && strings.Contains(aWord, "server")) ||
				(strings.Contains(qWord, "api") && strings.Contains(aWord, "endpoint")) {
				count++
				break
			}
		}
	}

	return count
}

func meaningfulWords(text string) []string {
	cleaned := nonWordChars.ReplaceAllString(strings.ToLower(text), " ")
	var words []string
	for _, word := range strings.Fields(cleaned) {
		if len([]rune(word)) > 3 {
			words = append(words, word)
		}
	}
	return words
}

// FallbackQuestions is the static bank returned when no generation provider is
// usable: always exactly 2 easy, 2 medium, 2 hard.
func FallbackQuestions() []models.GeneratedQuestion {
	return []models.GeneratedQuestion{
		{Text: "What is the virtual DOM and why is it useful in React?", Difficulty: models.DifficultyEasy},
		{Text: "Explain the difference between let, const, and var in JavaScript.", Difficulty: models.DifficultyEasy},
		{Text: "How would you design state management for a medium-sized React application? Which libraries would you consider and why?", Difficulty: models.DifficultyMedium},
		{Text: "Explain how you would secure a REST API built with Node.js and Express — include authentication and input validation.", Difficulty: models.DifficultyMedium},
		{Text: "Design an approach to scale a real-time collaboration feature for a React app (e.g., concurrent cursors). How would you handle consistency, latency, and failure?", Difficulty: models.DifficultyHard},
		{Text: "Given a performance bottleneck in a Node.js service under heavy CPU load, how would you diagnose and optimize it?", Difficulty: models.DifficultyHard},
	}
}

// HeuristicSummary aggregates scored pairs into a final result with an
// arithmetic-mean final score.
func HeuristicSummary(profile models.CandidateProfile, pairs []models.QAPair) *models.SummaryResult {
	finalScore := 0
	if len(pairs) > 0 {
		total := 0
		for _, pair := range pairs {
			if pair.Score != nil {
				total += *pair.Score
			}
		}
		finalScore = int(math.Round(float64(total) / float64(len(pairs))))
	}

	name := profile.Name
	if name == "" {
		name = "Candidate"
	}

	recommendation := "Needs improvement"
	if finalScore >= 70 {
		recommendation = "Recommended for next round"
	}

	return &models.SummaryResult{
		FinalScore:           finalScore,
		Summary:              fmt.Sprintf("%s completed a technical interview with an average score of %d%%. %s. This is an automated assessment based on question responses.", name, finalScore, recommendation),
		HiringRecommendation: recommendation,
		Strengths:            "Not specified",
		AreasForImprovement:  "Not specified",
	}
}
