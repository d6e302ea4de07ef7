package services

import (
	"fmt"
	"testing"

	"github.com/atahmasb/trivia-api/internal/database"
	"github.com/atahmasb/trivia-api/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func seedCategories(t *testing.T, db *gorm.DB, types ...string) {
	t.Helper()
	for i, typ := range types {
		require.NoError(t, db.Create(&models.Category{ID: uint(i + 1), Type: typ}).Error)
	}
}

// seedQuestions inserts n questions cycling through the given categories.
func seedQuestions(t *testing.T, db *gorm.DB, n int, categories ...uint) []models.Question {
	t.Helper()
	out := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		q := models.Question{
			Question:   fmt.Sprintf("Question %d?", i+1),
			Answer:     fmt.Sprintf("Answer %d", i+1),
			Category:   categories[i%len(categories)],
			Difficulty: i%5 + 1,
		}
		require.NoError(t, db.Create(&q).Error)
		out = append(out, q)
	}
	return out
}
