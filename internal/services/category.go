package services

import (
	"github.com/atahmasb/trivia-api/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, internal("list categories", err)
	}
	return categories, nil
}

// Labels maps every category id to its type label.
func (s *CategoryService) Labels() (map[uint]string, error) {
	categories, err := s.List()
	if err != nil {
		return nil, err
	}
	labels := make(map[uint]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Type
	}
	return labels, nil
}
