package handlers

import (
	"net/http"
	"strconv"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	allowOpenWrite  bool
}

func NewQuestionHandler(questionService *services.QuestionService, allowOpenWrite bool) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		allowOpenWrite:  allowOpenWrite,
	}
}

func (h *QuestionHandler) Create(c *gin.Context) {
	if !authorizeWrite(c, h.allowOpenWrite) {
		return
	}

	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid question payload"})
		return
	}

	question, err := h.questionService.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "question": question})
}

// List returns all questions newest first, as a bare array for frontend
// convenience.
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List()
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	if !authorizeWrite(c, h.allowOpenWrite) {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid question ID"})
		return
	}

	if err := h.questionService.Delete(uint(id)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type importQuestionsRequest struct {
	Questions []services.ImportQuestionRecord `json:"questions" binding:"required,min=1"`
}

// Import bulk-loads question records, normalizing the correct-answer shape of
// each one on the way in.
func (h *QuestionHandler) Import(c *gin.Context) {
	if !authorizeWrite(c, h.allowOpenWrite) {
		return
	}

	var req importQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid import payload"})
		return
	}

	created, skipped, err := h.questionService.Import(req.Questions)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"imported":  len(created),
		"skipped":   skipped,
		"questions": created,
	})
}
