package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"rizkypratama/ai-interviewer/internal/models"
	"rizkypratama/ai-interviewer/internal/repositories"
)

// Worker runs administrative rescore jobs in the background: the batch scorer
// is re-applied to a completed interview and the summary refreshed. This is
// auxiliary tooling; the live interview path scores synchronously.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueRescore(candidateID uuid.UUID)
}

type worker struct {
	candidateRepo repositories.CandidateRepository
	aiService     AIService
	jobQueue      chan uuid.UUID
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewWorker(
	candidateRepo repositories.CandidateRepository,
	aiService AIService,
	concurrency int,
) Worker {
	return &worker{
		candidateRepo: candidateRepo,
		aiService:     aiService,
		jobQueue:      make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting rescore worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping rescore worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Rescore worker stopped")
}

// EnqueueRescore implements Worker.
func (w *worker) EnqueueRescore(candidateID uuid.UUID) {
	select {
	case w.jobQueue <- candidateID:
		log.Printf("📥 Rescore job %s enqueued\n", candidateID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue rescore job %s\n", candidateID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case candidateID := <-w.jobQueue:
			log.Printf("👷 Worker #%d rescoring candidate %s\n", workerID, candidateID)
			if err := w.rescore(ctx, candidateID); err != nil {
				log.Printf("❌ Worker #%d failed to rescore %s: %v\n", workerID, candidateID, err)
			} else {
				log.Printf("✅ Worker #%d rescored %s\n", workerID, candidateID)
			}
		}
	}
}

// rescore replays the batch scorer over a completed interview's pairs and
// refreshes every score plus the summary fields. This is the one sanctioned
// mutation of a completed interview.
func (w *worker) rescore(ctx context.Context, candidateID uuid.UUID) error {
	candidate, err := w.candidateRepo.FindByID(candidateID)
	if err != nil {
		return err
	}

	interview := &candidate.Interview
	if interview.Status != models.StatusCompleted {
		return fmt.Errorf("interview for candidate %s is not completed", candidateID)
	}

	pairs := make([]models.QAPair, 0, len(interview.Questions))
	for _, q := range interview.Questions {
		pairs = append(pairs, models.QAPair{
			Question:   q.Text,
			Answer:     q.Answer,
			Score:      q.Score,
			Difficulty: q.Difficulty,
		})
	}

	scored := w.aiService.ScoreAnswers(ctx, pairs)
	for i := range scored {
		// A failed pair keeps its previous score
		if scored[i].Result.Method == "error" {
			continue
		}
		score := scored[i].Result.Score
		interview.Questions[i].Score = &score
		pairs[i].Score = &score
	}

	summary := w.aiService.GenerateSummary(ctx, models.CandidateProfile{
		Name:  candidate.Name,
		Email: candidate.Email,
		Phone: candidate.Phone,
	}, pairs)

	finalScore := summary.FinalScore
	interview.FinalScore = &finalScore
	interview.Summary = summary.Summary
	interview.HiringRecommendation = summary.HiringRecommendation
	interview.Strengths = summary.Strengths
	interview.AreasForImprovement = summary.AreasForImprovement

	return w.candidateRepo.SaveInterview(candidate)
}
