// Package seed loads question banks into the store.
//
// A bank is a YAML or JSON document:
//
//	categories:
//	  - type: Science
//	    questions:
//	      - question: What is the heaviest organ in the human body?
//	        answer: The Liver
//	        difficulty: 4
//
// Categories are matched by type and questions by their text within the
// category, so applying the same bank twice changes nothing.
package seed

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atahmasb/trivia-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gorm.io/gorm"
)

type Bank struct {
	Categories []Category `koanf:"categories" validate:"required,dive"`
}

type Category struct {
	Type      string     `koanf:"type" validate:"required"`
	Questions []Question `koanf:"questions" validate:"dive"`
}

type Question struct {
	Question   string `koanf:"question" validate:"required"`
	Answer     string `koanf:"answer" validate:"required"`
	Difficulty int    `koanf:"difficulty" validate:"min=1,max=5"`
}

type Result struct {
	CategoriesCreated int
	QuestionsCreated  int
	QuestionsSkipped  int
}

var validate = validator.New()

func Load(path string) (*Bank, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = json.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, fmt.Errorf("unsupported bank format %q", filepath.Ext(path))
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}

	var bank Bank
	if err := k.Unmarshal("", &bank); err != nil {
		return nil, fmt.Errorf("decode bank %s: %w", path, err)
	}
	if err := validate.Struct(&bank); err != nil {
		return nil, fmt.Errorf("invalid bank %s: %w", path, err)
	}
	return &bank, nil
}

// Apply writes bank into db in one transaction.
func Apply(db *gorm.DB, bank *Bank) (Result, error) {
	var res Result
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, c := range bank.Categories {
			category, created, err := findOrCreateCategory(tx, c.Type)
			if err != nil {
				return fmt.Errorf("category %q: %w", c.Type, err)
			}
			if created {
				res.CategoriesCreated++
			}

			for _, q := range c.Questions {
				var existing int64
				err := tx.Model(&models.Question{}).
					Where("question = ? AND category = ?", q.Question, category.ID).
					Count(&existing).Error
				if err != nil {
					return fmt.Errorf("question %q: %w", q.Question, err)
				}
				if existing > 0 {
					res.QuestionsSkipped++
					continue
				}

				question := models.Question{
					Question:   q.Question,
					Answer:     q.Answer,
					Category:   category.ID,
					Difficulty: q.Difficulty,
				}
				if err := tx.Create(&question).Error; err != nil {
					return fmt.Errorf("question %q: %w", q.Question, err)
				}
				res.QuestionsCreated++
			}
		}
		return nil
	})
	return res, err
}

func findOrCreateCategory(tx *gorm.DB, typ string) (*models.Category, bool, error) {
	var category models.Category
	err := tx.Where("type = ?", typ).First(&category).Error
	if err == nil {
		return &category, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	category = models.Category{Type: typ}
	if err := tx.Create(&category).Error; err != nil {
		return nil, false, err
	}
	return &category, true, nil
}
