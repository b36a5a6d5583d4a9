package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"schooljournal/models"
)

// Client-facing messages. The frontend renders them verbatim, so they are
// kept identical to the existing contract.
const (
	msgCredentialsRequired = "Email и пароль обязательны"
	msgBadCredentials      = "Неверный email или пароль"
	msgClassCreated        = "Класс создан"
	msgClassDeleted        = "Класс удален"
	msgStudentCreated      = "Ученик создан"
	msgStudentEnrolled     = "Ученик добавлен в класс"
	msgStudentDeleted      = "Ученик удален"
	msgGradeCreated        = "Оценка добавлена"
	msgScheduleCreated     = "Расписание добавлено"
	msgDatabaseError       = "Ошибка базы данных"
)

// UserStore authenticates stored user accounts
type UserStore interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// ClassStore manages class rows
type ClassStore interface {
	List(ctx context.Context, teacherID *int) ([]models.Class, error)
	Create(ctx context.Context, name string, teacherID *int) (int, error)
	Delete(ctx context.Context, id int) error
}

// StudentStore manages student accounts and enrollments
type StudentStore interface {
	List(ctx context.Context) ([]models.Student, error)
	ListByClass(ctx context.Context, classID int) ([]models.Student, error)
	Create(ctx context.Context, student models.CreateStudentRequest) (int, error)
	Enroll(ctx context.Context, classID, studentID int) error
	SoftDelete(ctx context.Context, id int) error
}

// GradeStore manages grade rows
type GradeStore interface {
	ListByStudent(ctx context.Context, studentID int) ([]models.Grade, error)
	AverageForStudent(ctx context.Context, studentID int) (float64, error)
	ListAll(ctx context.Context) ([]models.GradeWithStudent, error)
	Create(ctx context.Context, entry models.CreateGradeRequest) (int, error)
}

// ScheduleStore manages schedule rows
type ScheduleStore interface {
	ListByClass(ctx context.Context, classID int) ([]models.ScheduleEntry, error)
	Create(ctx context.Context, entry models.CreateScheduleRequest) (int, error)
}

// Preflight answers a CORS pre-flight for one resource without touching the
// store. Each resource advertises exactly the methods it supports.
func Preflight(allowMethods, allowHeaders string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Max-Age", "86400")
		c.Status(http.StatusOK)
	}
}

// MethodNotAllowed answers any unrecognized method on a known resource
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func storeError(c *gin.Context, op string, err error) {
	log.Printf("Error in %s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgDatabaseError})
}
