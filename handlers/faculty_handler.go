package handlers

import (
	"net/http"

	"dailyquiz/services"

	"github.com/gin-gonic/gin"
)

type FacultyHandler struct {
	reportService *services.ReportService
}

func NewFacultyHandler(reportService *services.ReportService) *FacultyHandler {
	return &FacultyHandler{reportService: reportService}
}

// Students lists the students in the caller's class.
func (h *FacultyHandler) Students(c *gin.Context) {
	facultyID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	students, err := h.reportService.ClassStudents(facultyID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "students": students})
}

// Attendance returns the Monday-Friday attendance/marks table for the week
// given by ?week=YYYY-Www (current week when absent), optionally narrowed by
// ?class=.
func (h *FacultyHandler) Attendance(c *gin.Context) {
	facultyID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	report, err := h.reportService.Attendance(facultyID, c.Query("week"), c.Query("class"))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}
