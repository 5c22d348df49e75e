package handlers

import (
	"net/http"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	classService *services.ClassService
}

func NewClassHandler(classService *services.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

type createClassRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req createClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name required"})
		return
	}

	cls, err := h.classService.Create(req.Name)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "class": cls})
}

func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.classService.List()
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "classes": classes})
}
