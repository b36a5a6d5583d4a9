package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"schooljournal/models"
)

// GradeHandler lists and creates grade entries
type GradeHandler struct {
	grades GradeStore
}

func NewGradeHandler(grades GradeStore) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// List has two shapes. With a studentId query parameter it returns that
// student's grades plus their average; without it, every grade system-wide
// with the student's name and no average. The difference is intentional.
func (h *GradeHandler) List(c *gin.Context) {
	raw := c.Query("studentId")
	if raw == "" {
		grades, err := h.grades.ListAll(c.Request.Context())
		if err != nil {
			storeError(c, "grade list", err)
			return
		}
		if grades == nil {
			grades = []models.GradeWithStudent{}
		}
		c.JSON(http.StatusOK, gin.H{"grades": grades})
		return
	}

	studentID, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "studentId required")
		return
	}

	grades, err := h.grades.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		storeError(c, "grade list", err)
		return
	}
	if grades == nil {
		grades = []models.Grade{}
	}

	average, err := h.grades.AverageForStudent(c.Request.Context(), studentID)
	if err != nil {
		storeError(c, "grade average", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"averageGrade": average, "grades": grades})
}

// Create inserts a grade entry. The date defaults to today and the comment
// to an empty string.
func (h *GradeHandler) Create(c *gin.Context) {
	var req models.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "studentId, subjectId and grade required")
		return
	}

	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	id, err := h.grades.Create(c.Request.Context(), req)
	if err != nil {
		storeError(c, "grade create", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": msgGradeCreated})
}
