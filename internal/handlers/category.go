package handlers

import (
	"log"
	"net/http"

	"github.com/atahmasb/trivia-api/internal/models"
	"github.com/atahmasb/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, questionService: questionService}
}

type CategoriesResponse struct {
	Categories map[uint]string `json:"categories"`
}

// QuestionSetResponse is an unpaginated set of questions. CurrentCategory
// holds the category id of every question in the set.
type QuestionSetResponse struct {
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions" example:"1"`
	CurrentCategory []uint            `json:"current_category"`
}

func newQuestionSet(questions []models.Question) QuestionSetResponse {
	if questions == nil {
		questions = []models.Question{}
	}
	return QuestionSetResponse{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: services.CategoryIDs(questions),
	}
}

// ListCategories godoc
// @Summary      List categories
// @Description  Map of every category id to its type label
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	labels, err := h.categoryService.Labels()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: labels})
}

// ListCategoryQuestions godoc
// @Summary      List questions in a category
// @Description  All questions of the category ordered by id, unpaginated
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} QuestionSetResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	questions, err := h.questionService.ByCategory(categoryID)
	if err != nil {
		log.Printf("questions by category %d: %v", categoryID, err)
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, newQuestionSet(questions))
}
