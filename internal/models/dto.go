package models

// GeneratedQuestion is one item of a provider's generation response before it
// becomes a persisted Question.
type GeneratedQuestion struct {
	Text       string     `json:"q"`
	Difficulty Difficulty `json:"difficulty"`
}

// ScoreResult is produced fresh on every scoring call. Only Score is persisted
// onto the Question; Reason and Method exist for logging and audit.
type ScoreResult struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
	Method string `json:"method"`
}

// SummaryResult carries the completion-time fields copied onto the Interview.
type SummaryResult struct {
	FinalScore           int    `json:"finalScore"`
	Summary              string `json:"summary"`
	HiringRecommendation string `json:"hiringRecommendation"`
	Strengths            string `json:"strengths"`
	AreasForImprovement  string `json:"areasForImprovement"`
}

// CandidateProfile is the slice of candidate identity sent to summary providers.
type CandidateProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// QAPair is one scored question/answer tuple handed to the summary aggregator
// and the batch scorer.
type QAPair struct {
	Question   string     `json:"q"`
	Answer     string     `json:"a"`
	Score      *int       `json:"score"`
	Difficulty Difficulty `json:"difficulty"`
}

type StartInterviewRequest struct {
	CandidateID string `json:"candidate_id"`
}

type SubmitAnswerRequest struct {
	CandidateID   string `json:"candidate_id"`
	QuestionIndex *int   `json:"question_index"`
	Answer        string `json:"answer"`
	TimeTakenSec  *int   `json:"time_taken_sec"`
}

type PauseResumeRequest struct {
	CandidateID string `json:"candidate_id"`
	Action      string `json:"action"`
}

type UpdateCandidateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type InterviewResponse struct {
	Interview *Interview `json:"interview"`
}

type CandidateListResponse struct {
	Candidates []Candidate `json:"candidates"`
	Total      int64       `json:"total"`
}

type ResumeUploadResponse struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ResumeURL   string `json:"resume_url"`
}
