package routes

import (
	"log"
	"net/http"
	"strconv"

	"dailyquiz/handlers"
	"dailyquiz/middleware"
	"dailyquiz/models"
	"dailyquiz/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	classHandler *handlers.ClassHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
	studentHandler *handlers.StudentHandler,
	facultyHandler *handlers.FacultyHandler,
	clock *services.QuizClock,
	blacklist *services.TokenBlacklist,
	jwtSecret string,
) {
	requireAuth := middleware.RequireAuth(jwtSecret, blacklist)
	optionalAuth := middleware.OptionalAuth(jwtSecret, blacklist)

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
	router.POST("/logout", optionalAuth, authHandler.Logout)

	// Admin user management; the handler enforces admin-or-open-write itself
	admin := router.Group("/admin", optionalAuth)
	{
		admin.POST("/users", adminHandler.UpsertUser)
		admin.GET("/users", adminHandler.ListUsers)
	}

	// Questions: open reads, admin-or-open-write mutations
	questions := router.Group("/questions", optionalAuth)
	{
		questions.POST("", questionHandler.Create)
		questions.POST("/import", questionHandler.Import)
		questions.GET("", questionHandler.List)
		questions.DELETE("/:id", questionHandler.Delete)
	}

	// Classes: admin creates, anyone reads
	classes := router.Group("/classes")
	{
		classes.POST("", requireAuth, middleware.RequireRoles(models.RoleAdmin), classHandler.Create)
		classes.GET("", classHandler.List)
	}

	// Quiz scheduling is admin only, no open-write bypass
	quizzes := router.Group("/quizzes", requireAuth, middleware.RequireRoles(models.RoleAdmin))
	{
		quizzes.POST("", quizHandler.Create)
		quizzes.GET("", quizHandler.List)
	}

	// Student routes
	student := router.Group("/student", requireAuth, middleware.RequireRoles(models.RoleStudent))
	{
		student.GET("/quizzes", studentHandler.Quizzes)
		student.POST("/attempt", studentHandler.SubmitAttempt)
	}

	// Faculty routes
	faculty := router.Group("/faculty", requireAuth, middleware.RequireRoles(models.RoleFaculty))
	{
		faculty.GET("/students", facultyHandler.Students)
		faculty.GET("/attendance", facultyHandler.Attendance)
	}

	// WebSocket countdown for a scheduled quiz
	router.GET("/ws/quiz/:id", func(c *gin.Context) {
		quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid quiz ID"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for quiz %d: %v", quizID, err)
			return
		}

		go clock.Stream(conn, uint(quizID))
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
