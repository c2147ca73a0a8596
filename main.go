package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"questionnaire/config"
	"questionnaire/handlers"
	"questionnaire/models"
	"questionnaire/routes"
	"questionnaire/services"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}

func main() {
	// Load configuration
	cfg := config.Load()
	log := newLogger()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Statistics{},
		&models.Group{},
		&models.Permission{},
	)
	if err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	sessions := services.NewRedisSessionStore(redisClient)
	accessService := services.NewAccessService(db)
	authService := services.NewAuthService(db, sessions, accessService, cfg.JWTSecret, cfg.SessionTTL)
	questionService := services.NewQuestionService(db)
	statsService := services.NewStatsService(db)

	// Seed the Question entity permissions before any user can register.
	if err := accessService.EnsureQuestionPermissions(context.Background()); err != nil {
		log.WithError(err).Fatal("failed to seed permissions")
	}

	// Start the background statistics worker
	statsWorker := services.NewStatsWorker(statsService, log)
	go statsWorker.Run()
	defer statsWorker.Stop()

	answerService := services.NewAnswerService(db, statsWorker)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	answerHandler := handlers.NewAnswerHandler(answerService, log)
	questionHandler := handlers.NewQuestionHandler(questionService, log)
	statsHandler := handlers.NewStatsHandler(statsService, log)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())

	// Setup routes
	routes.SetupRoutes(router, authHandler, answerHandler, questionHandler, statsHandler, authService, log)

	// Start server
	log.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
