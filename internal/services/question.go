package services

import (
	"errors"
	"strings"

	"github.com/atahmasb/trivia-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrEmptyPage        = errors.New("no questions on page")
	ErrEmptySearchTerm  = errors.New("search term is empty")
	ErrInvalidQuestion  = errors.New("question and answer are required")
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionPage struct {
	Questions []models.Question
	Total     int64
}

type QuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

func (s *QuestionService) List(page int) (*QuestionPage, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Scopes(Paginate(page)).Find(&questions).Error; err != nil {
		return nil, internal("list questions", err)
	}
	if len(questions) == 0 {
		return nil, notFound("list questions", ErrEmptyPage)
	}

	total, err := s.Count()
	if err != nil {
		return nil, err
	}

	return &QuestionPage{Questions: questions, Total: total}, nil
}

func (s *QuestionService) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("get question", ErrQuestionNotFound)
		}
		return nil, internal("get question", err)
	}
	return &question, nil
}

func (s *QuestionService) Create(input QuestionInput) (*models.Question, error) {
	if strings.TrimSpace(input.Question) == "" || strings.TrimSpace(input.Answer) == "" {
		return nil, badRequest("create question", ErrInvalidQuestion)
	}

	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, internal("create question", err)
	}
	return &question, nil
}

// Delete removes the question and returns it as it was before removal.
func (s *QuestionService) Delete(id uint) (*models.Question, error) {
	question, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	result := s.db.Delete(&models.Question{}, question.ID)
	if result.Error != nil {
		return nil, internal("delete question", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("delete question", ErrQuestionNotFound)
	}
	return question, nil
}

// Search matches term case-insensitively anywhere in the question text. LIKE
// wildcards in term are matched literally.
func (s *QuestionService) Search(term string) ([]models.Question, error) {
	if term == "" {
		return nil, notFound("search questions", ErrEmptySearchTerm)
	}

	pattern := "%" + escapeLike(term) + "%"
	var questions []models.Question
	err := s.db.Where(s.searchClause(), pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, internal("search questions", err)
	}
	return questions, nil
}

// searchClause folds case in the database, on both sides of the match.
func (s *QuestionService) searchClause() string {
	if s.db.Dialector.Name() == "postgres" {
		return `question ILIKE ? ESCAPE '\'`
	}
	return `LOWER(question) LIKE LOWER(?) ESCAPE '\'`
}

func (s *QuestionService) ByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, internal("questions by category", err)
	}
	return questions, nil
}

func (s *QuestionService) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return 0, internal("count questions", err)
	}
	return total, nil
}

// CategoryIDs lists the category of each question, in order and with repeats.
func CategoryIDs(questions []models.Question) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.Category
	}
	return ids
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
