package main

import (
	"log"

	"dailyquiz/config"
	"dailyquiz/handlers"
	"dailyquiz/middleware"
	"dailyquiz/models"
	"dailyquiz/routes"
	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Question{},
		&models.Option{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.Attempt{},
		&models.AttemptAnswer{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)
	blacklist := services.NewTokenBlacklist(redisClient)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	userService := services.NewUserService(db)
	classService := services.NewClassService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)
	reportService := services.NewReportService(db)
	clock := services.NewQuizClock(quizService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, blacklist, cfg.JWTSecret)
	adminHandler := handlers.NewAdminHandler(userService, cfg.AllowOpenWrite)
	classHandler := handlers.NewClassHandler(classService)
	questionHandler := handlers.NewQuestionHandler(questionService, cfg.AllowOpenWrite)
	quizHandler := handlers.NewQuizHandler(quizService)
	studentHandler := handlers.NewStudentHandler(quizService)
	facultyHandler := handlers.NewFacultyHandler(reportService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, adminHandler, classHandler, questionHandler,
		quizHandler, studentHandler, facultyHandler, clock, blacklist, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
