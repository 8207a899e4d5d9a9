package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rizkypratama/ai-interviewer/internal/models"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	FindAll(search, sort string, page, limit int) ([]models.Candidate, int64, error)
	UpdateContact(id uuid.UUID, name, email, phone string) (*models.Candidate, error)
	SaveInterview(candidate *models.Candidate) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.
		Preload("Interview.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_index ASC")
		}).
		Preload("Interview").
		Where("id = ?", id).
		First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

var sortColumns = map[string]string{
	"created_at":   "created_at ASC",
	"-created_at":  "created_at DESC",
	"updated_at":   "updated_at ASC",
	"-updated_at":  "updated_at DESC",
	"final_score":  "interviews.final_score ASC NULLS LAST",
	"-final_score": "interviews.final_score DESC NULLS LAST",
}

func (r *candidateRepository) FindAll(search, sort string, page, limit int) ([]models.Candidate, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	order, ok := sortColumns[sort]
	if !ok {
		order = sortColumns["-updated_at"]
	}

	query := r.db.Model(&models.Candidate{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"candidates.name ILIKE ? OR candidates.email ILIKE ? OR candidates.phone ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	// Sorting by final_score needs the interview row joined in
	query = query.
		Joins("LEFT JOIN interviews ON interviews.candidate_id = candidates.id").
		Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Interview.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_index ASC")
		}).
		Preload("Interview")

	var candidates []models.Candidate
	if err := query.Find(&candidates).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, total, nil
}

func (r *candidateRepository) UpdateContact(id uuid.UUID, name, email, phone string) (*models.Candidate, error) {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"email":      email,
			"phone":      phone,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrCandidateNotFound
	}

	return r.FindByID(id)
}

// SaveInterview persists the whole Candidate+Interview aggregate in one
// transaction so a failed write never leaves a half-updated interview behind.
func (r *candidateRepository) SaveInterview(candidate *models.Candidate) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&candidate.Interview).Error; err != nil {
			return fmt.Errorf("failed to save interview: %w", err)
		}

		for i := range candidate.Interview.Questions {
			q := &candidate.Interview.Questions[i]
			q.InterviewID = candidate.Interview.ID
			if err := tx.Save(q).Error; err != nil {
				return fmt.Errorf("failed to save question %d: %w", q.QuestionIndex, err)
			}
		}

		if err := tx.Model(&models.Candidate{}).
			Where("id = ?", candidate.ID).
			Update("updated_at", time.Now()).Error; err != nil {
			return fmt.Errorf("failed to touch candidate: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save interview aggregate: %w", err)
	}
	return nil
}
