package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/nederlandse-workbook/learning-service/internal/config"
	"github.com/nederlandse-workbook/learning-service/internal/services"
	"github.com/nederlandse-workbook/learning-service/internal/utils"
)

type HandlerManager struct {
	wordHandler   *WordHandler
	reviewHandler *ReviewHandler
	quizHandler   *QuizHandler
	auth          gin.HandlerFunc
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	authCfg config.AuthConfig,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		wordHandler:   NewWordHandler(serviceManager.Word(), serviceManager.Import(), serviceManager.Progress(), logger),
		reviewHandler: NewReviewHandler(serviceManager.Review(), logger),
		quizHandler:   NewQuizHandler(serviceManager.Quiz(), logger),
		auth:          NewAuthMiddleware(authCfg, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes, all owner-scoped behind auth
	v1 := router.Group("/api/v1")
	v1.Use(hm.auth)
	{
		words := v1.Group("/words")
		{
			words.POST("", hm.wordHandler.CreateWord)
			words.GET("", hm.wordHandler.ListWords)
			words.GET("/:id", hm.wordHandler.GetWord)
			words.PUT("/:id", hm.wordHandler.UpdateWord)
			words.DELETE("/:id", hm.wordHandler.DeleteWord)
			words.POST("/import", hm.wordHandler.ImportWords)
			words.POST("/:id/flashcard", hm.wordHandler.AddFlashcard)
			words.DELETE("/:id/flashcard", hm.wordHandler.RemoveFlashcard)
			words.POST("/:id/category/:category_id", hm.wordHandler.Categorize)
			words.DELETE("/:id/category/:category_id", hm.wordHandler.Uncategorize)
		}

		categories := v1.Group("/categories")
		{
			categories.POST("", hm.wordHandler.CreateCategory)
			categories.GET("", hm.wordHandler.ListCategories)
		}

		flashcards := v1.Group("/flashcards")
		{
			flashcards.GET("", hm.reviewHandler.ListCards)
			flashcards.GET("/due", hm.reviewHandler.DueCards)
			flashcards.POST("/:id/rate/:rating", hm.reviewHandler.RateCard)
		}

		quiz := v1.Group("/quiz")
		{
			quiz.POST("/start/:type", hm.quizHandler.StartQuiz)
			quiz.GET("/question", hm.quizHandler.CurrentQuestion)
			quiz.POST("/answer", hm.quizHandler.SubmitAnswer)
			quiz.POST("/finish", hm.quizHandler.FinishQuiz)
			quiz.GET("/history", hm.quizHandler.History)
			quiz.GET("/history/:id", hm.quizHandler.SessionDetail)
		}

		progress := v1.Group("/progress")
		{
			progress.GET("/dashboard", hm.wordHandler.Dashboard)
		}
	}
}
