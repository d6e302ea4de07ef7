package services

import (
	"math/rand"

	"github.com/atahmasb/trivia-api/internal/models"

	"gorm.io/gorm"
)

// AnyCategory selects the quiz pool from every category.
const AnyCategory uint = 0

type QuizService struct {
	db   *gorm.DB
	pick func(n int) int
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db, pick: rand.Intn}
}

// NextQuestion picks a question uniformly at random from categoryID (or from
// all categories for AnyCategory), skipping the ids in previous. It returns
// nil without error once the pool is exhausted.
func (s *QuizService) NextQuestion(categoryID uint, previous []uint) (*models.Question, error) {
	pool, err := s.Pool(categoryID, previous)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}
	q := pool[s.pick(len(pool))]
	return &q, nil
}

func (s *QuizService) Pool(categoryID uint, previous []uint) ([]models.Question, error) {
	query := s.db.Order("id ASC")
	if categoryID != AnyCategory {
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var pool []models.Question
	if err := query.Find(&pool).Error; err != nil {
		return nil, internal("quiz pool", err)
	}
	return pool, nil
}
