package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	StatusPending    InterviewStatus = "pending"
	StatusNotStarted InterviewStatus = "not-started"
	StatusOngoing    InterviewStatus = "ongoing"
	StatusPaused     InterviewStatus = "paused"
	StatusCompleted  InterviewStatus = "completed"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const QuestionCount = 6

type Candidate struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	Phone     string    `gorm:"type:text" json:"phone"`
	ResumeURL string    `gorm:"type:text" json:"resume_url"`
	Metadata  string    `gorm:"type:text" json:"metadata"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Interview Interview `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"interview"`
}

func (Candidate) TableName() string {
	return "candidates"
}

type Interview struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"-"`
	CandidateID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Status               InterviewStatus `gorm:"not null;default:'not-started'" json:"status"`
	CurrentQuestionIndex int             `gorm:"not null;default:0" json:"current_question_index"`
	FinalScore           *int            `json:"final_score"`
	Summary              string          `gorm:"type:text" json:"summary"`
	HiringRecommendation string          `gorm:"type:text" json:"hiring_recommendation"`
	Strengths            string          `gorm:"type:text" json:"strengths"`
	AreasForImprovement  string          `gorm:"type:text" json:"areas_for_improvement"`
	StartedAt            *time.Time      `json:"started_at"`
	CompletedAt          *time.Time      `json:"completed_at"`

	// Ordered by QuestionIndex; either empty or exactly QuestionCount entries
	Questions []Question `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Interview) TableName() string {
	return "interviews"
}

// AllScored reports whether every question holds a score. An interview with no
// questions is never considered scored.
func (i *Interview) AllScored() bool {
	if len(i.Questions) == 0 {
		return false
	}
	for _, q := range i.Questions {
		if q.Score == nil {
			return false
		}
	}
	return true
}

type Question struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"-"`
	InterviewID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	QuestionIndex int        `gorm:"not null" json:"question_index"`
	Text          string     `gorm:"type:text;not null" json:"text"`
	Difficulty    Difficulty `gorm:"not null" json:"difficulty"`
	Answer        string     `gorm:"type:text" json:"answer"`
	Score         *int       `json:"score"`
	StartedAt     *time.Time `json:"started_at"`
	AnsweredAt    *time.Time `json:"answered_at"`
	TimeTakenSec  *int       `json:"time_taken_sec"`
}

func (Question) TableName() string {
	return "questions"
}
