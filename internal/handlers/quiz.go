package handlers

import (
	"log"
	"net/http"

	"github.com/atahmasb/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategory id 0 means any category.
type QuizCategory struct {
	ID   FlexibleID `json:"id" swaggertype:"integer" example:"1"`
	Type string     `json:"type" example:"Science"`
}

type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuizResponse carries either a question or false once the pool is exhausted.
type QuizResponse struct {
	Question interface{} `json:"question"`
}

// NextQuizQuestion godoc
// @Summary      Next quiz question
// @Description  Random question from the category (id 0 or no category: all) not in previous_questions; question is false when none remain
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuizQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	categoryID := services.AnyCategory
	if req.QuizCategory != nil {
		categoryID = uint(req.QuizCategory.ID)
	}

	question, err := h.quizService.NextQuestion(categoryID, req.PreviousQuestions)
	if err != nil {
		log.Printf("quiz question: %v", err)
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}

	if question == nil {
		c.JSON(http.StatusOK, QuizResponse{Question: false})
		return
	}
	c.JSON(http.StatusOK, QuizResponse{Question: question})
}
