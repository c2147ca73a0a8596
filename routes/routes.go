package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"questionnaire/handlers"
	"questionnaire/middleware"
	"questionnaire/services"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	answerHandler *handlers.AnswerHandler,
	questionHandler *handlers.QuestionHandler,
	statsHandler *handlers.StatsHandler,
	authService *services.AuthService,
	log *logrus.Logger,
) {
	router.Use(middleware.RecoverJSON(log))

	// Public routes
	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.Auth(authService))
	{
		protected.POST("/logout", authHandler.Logout)
		protected.POST("/answer_question", answerHandler.Submit)
		protected.GET("/questions", questionHandler.List)
		protected.POST("/questions", questionHandler.Create)
		protected.GET("/statistics", statsHandler.Get)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
