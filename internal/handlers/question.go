package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/atahmasb/trivia-api/internal/models"
	"github.com/atahmasb/trivia-api/internal/services"
	"github.com/atahmasb/trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	hub             *ws.Hub
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService, hub *ws.Hub) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, categoryService: categoryService, hub: hub}
}

type CreateQuestionRequest struct {
	Question   string     `json:"question" binding:"notblank" example:"What is the heaviest organ in the human body?"`
	Answer     string     `json:"answer" binding:"notblank" example:"The Liver"`
	Category   FlexibleID `json:"category" binding:"required" swaggertype:"integer" example:"1"`
	Difficulty int        `json:"difficulty" binding:"required,min=1,max=5" example:"4"`
}

// QuestionPageResponse is one page of questions. CurrentCategory holds the
// category id of every question on the page, not a label.
type QuestionPageResponse struct {
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions" example:"19"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory []uint            `json:"current_category"`
}

type DeleteQuestionResponse struct {
	Success bool `json:"success" example:"true"`
	ID      uint `json:"id" example:"5"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm" example:"title"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Ten questions per page ordered by id, with the total count and every category
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionPageResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if errors.Is(err, strconv.ErrRange) {
		abortWithStatus(c, http.StatusNotFound)
		return
	}
	if err != nil {
		page = 1
	}

	result, err := h.questionService.List(page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	labels, err := h.categoryService.Labels()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionPageResponse{
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      labels,
		CurrentCategory: services.CategoryIDs(result.Questions),
	})
}

// CreateQuestion godoc
// @Summary      Add a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	question, err := h.questionService.Create(services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   uint(req.Category),
		Difficulty: req.Difficulty,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.hub.Broadcast(question.Category, ws.WSMessage{Type: ws.EventQuestionCreated, Data: question})
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := parseID(c, "id")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	question, err := h.questionService.Delete(questionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.hub.Broadcast(question.Category, ws.WSMessage{Type: ws.EventQuestionDeleted, Data: question})
	c.JSON(http.StatusOK, DeleteQuestionResponse{Success: true, ID: question.ID})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text, unpaginated
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Success      200 {object} QuestionSetResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	questions, err := h.questionService.Search(req.SearchTerm)
	if err != nil {
		if services.KindOf(err) == services.KindInternal {
			log.Printf("search questions: %v", err)
		}
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, newQuestionSet(questions))
}
