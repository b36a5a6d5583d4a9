package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"schooljournal/models"
)

// ClassHandler lists, creates and deletes classes
type ClassHandler struct {
	classes ClassStore
}

func NewClassHandler(classes ClassStore) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// List returns every class, or only the classes owned by the teacher given
// in the teacherId query parameter
func (h *ClassHandler) List(c *gin.Context) {
	var teacherID *int
	if raw := c.Query("teacherId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "teacherId required")
			return
		}
		teacherID = &id
	}

	classes, err := h.classes.List(c.Request.Context(), teacherID)
	if err != nil {
		storeError(c, "class list", err)
		return
	}
	if classes == nil {
		classes = []models.Class{}
	}

	c.JSON(http.StatusOK, classes)
}

// Create inserts a new class
func (h *ClassHandler) Create(c *gin.Context) {
	var req models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name required")
		return
	}

	id, err := h.classes.Create(c.Request.Context(), req.Name, req.TeacherID)
	if err != nil {
		storeError(c, "class create", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": msgClassCreated})
}

// Delete removes the class given by the id query parameter. A confirmation
// is returned whether or not a row existed.
func (h *ClassHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		badRequest(c, "id required")
		return
	}

	if err := h.classes.Delete(c.Request.Context(), id); err != nil {
		storeError(c, "class delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgClassDeleted})
}
