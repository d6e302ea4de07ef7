package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/atahmasb/trivia-api/internal/database"
	"github.com/atahmasb/trivia-api/internal/middleware"
	"github.com/atahmasb/trivia-api/internal/models"
	"github.com/atahmasb/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	db     *gorm.DB
	deps   Dependencies
	router *gin.Engine
}

func setupAPI(t *testing.T, auth *services.AuthService) *testAPI {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	deps := NewDependencies(db, auth)
	r := gin.New()
	r.Use(middleware.CORS())
	SetupRoutes(r, deps)
	return &testAPI{db: db, deps: deps, router: r}
}

func (a *testAPI) seedCategories(t *testing.T, types ...string) {
	t.Helper()
	for i, typ := range types {
		require.NoError(t, a.db.Create(&models.Category{ID: uint(i + 1), Type: typ}).Error)
	}
}

func (a *testAPI) seedQuestions(t *testing.T, n int, categories ...uint) []models.Question {
	t.Helper()
	out := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		q := models.Question{
			Question:   fmt.Sprintf("Question %d?", i+1),
			Answer:     fmt.Sprintf("Answer %d", i+1),
			Category:   categories[i%len(categories)],
			Difficulty: i%5 + 1,
		}
		require.NoError(t, a.db.Create(&q).Error)
		out = append(out, q)
	}
	return out
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"success":false,"error":%d,"message":%q}`, status, message), w.Body.String())
}
