package handlers

import (
	"log"

	"github.com/atahmasb/trivia-api/internal/middleware"
	"github.com/atahmasb/trivia-api/internal/services"
	"github.com/atahmasb/trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"gorm.io/gorm"
)

// Dependencies are the services the routes are built from. A nil Auth leaves
// the mutating routes open.
type Dependencies struct {
	DB         *gorm.DB
	Categories *services.CategoryService
	Questions  *services.QuestionService
	Quiz       *services.QuizService
	Auth       *services.AuthService
	Hub        *ws.Hub
}

func NewDependencies(db *gorm.DB, auth *services.AuthService) Dependencies {
	return Dependencies{
		DB:         db,
		Categories: services.NewCategoryService(db),
		Questions:  services.NewQuestionService(db),
		Quiz:       services.NewQuizService(db),
		Auth:       auth,
		Hub:        ws.NewHub(),
	}
}

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Println("binding validator is not go-playground/validator, notblank rule unavailable")
		return
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		log.Printf("register notblank validation: %v", err)
	}
}

func SetupRoutes(r *gin.Engine, deps Dependencies) {
	registerValidators()

	categoryHandler := NewCategoryHandler(deps.Categories, deps.Questions)
	questionHandler := NewQuestionHandler(deps.Questions, deps.Categories, deps.Hub)
	quizHandler := NewQuizHandler(deps.Quiz)
	wsHandler := NewWSHandler(deps.Hub)
	healthHandler := NewHealthHandler(deps.DB)

	r.HandleMethodNotAllowed = true
	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)

	r.GET("/health", healthHandler.Health)
	r.GET("/ws/questions", wsHandler.HandleQuestionFeed)

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id/questions", categoryHandler.ListCategoryQuestions)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", middleware.EditorAuth(deps.Auth), questionHandler.CreateQuestion)
		questions.DELETE("/:id", middleware.EditorAuth(deps.Auth), questionHandler.DeleteQuestion)
	}

	r.POST("/search", questionHandler.SearchQuestions)
	r.POST("/quizzes", quizHandler.NextQuizQuestion)
}
