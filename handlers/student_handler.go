package handlers

import (
	"net/http"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	quizService *services.QuizService
}

func NewStudentHandler(quizService *services.QuizService) *StudentHandler {
	return &StudentHandler{quizService: quizService}
}

// Quizzes returns up to 3 recent quizzes for the caller's class, with correct
// answers withheld.
func (h *StudentHandler) Quizzes(c *gin.Context) {
	studentID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	quizzes, err := h.quizService.StudentQuizzes(studentID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quizzes": quizzes})
}

// SubmitAttempt grades the submitted answers and records the attempt.
func (h *StudentHandler) SubmitAttempt(c *gin.Context) {
	studentID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	var req services.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payload"})
		return
	}

	result, err := h.quizService.SubmitAttempt(studentID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"score":           result.Score,
		"attemptId":       result.AttemptID,
		"detailedResults": result.Results,
	})
}
