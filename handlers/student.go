package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"schooljournal/models"
)

// defaultStudentPassword is assigned when a student is created without one
const defaultStudentPassword = "student123"

// StudentHandler lists, creates, enrolls and soft-deletes students
type StudentHandler struct {
	students StudentStore
}

func NewStudentHandler(students StudentStore) *StudentHandler {
	return &StudentHandler{students: students}
}

// List returns every student, or only the students enrolled in the class
// given by the classId query parameter
func (h *StudentHandler) List(c *gin.Context) {
	var (
		students []models.Student
		err      error
	)
	if raw := c.Query("classId"); raw != "" {
		classID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			badRequest(c, "classId required")
			return
		}
		students, err = h.students.ListByClass(c.Request.Context(), classID)
	} else {
		students, err = h.students.List(c.Request.Context())
	}
	if err != nil {
		storeError(c, "student list", err)
		return
	}
	if students == nil {
		students = []models.Student{}
	}

	c.JSON(http.StatusOK, students)
}

// Create inserts a new student account, enrolling it into a class when
// classId is given
func (h *StudentHandler) Create(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email, firstName and lastName required")
		return
	}

	if req.Password == "" {
		req.Password = defaultStudentPassword
	}

	id, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		storeError(c, "student create", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": msgStudentCreated})
}

// Enroll adds an existing student to a class. Submitting the same pair
// again is a no-op, not an error.
func (h *StudentHandler) Enroll(c *gin.Context) {
	var req models.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "classId and studentId required")
		return
	}

	if err := h.students.Enroll(c.Request.Context(), req.ClassID, req.StudentID); err != nil {
		storeError(c, "student enroll", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgStudentEnrolled})
}

// Delete soft-deletes the student given by the id query parameter. The row
// is kept so grade and enrollment history stays retrievable.
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		badRequest(c, "id required")
		return
	}

	if err := h.students.SoftDelete(c.Request.Context(), id); err != nil {
		storeError(c, "student delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgStudentDeleted})
}
