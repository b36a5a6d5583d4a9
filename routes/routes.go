package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooljournal/handlers"
)

// Handlers groups the per-resource handlers wired into the router
type Handlers struct {
	Auth     *handlers.AuthHandler
	Classes  *handlers.ClassHandler
	Students *handlers.StudentHandler
	Grades   *handlers.GradeHandler
	Schedule *handlers.ScheduleHandler
}

// SetupRoutes configures the API routes. Each resource answers its own
// pre-flight and every unrecognized method gets a JSON 405.
func SetupRoutes(r *gin.Engine, h Handlers) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.OPTIONS("/auth", handlers.Preflight("POST, OPTIONS", "Content-Type"))
	api.POST("/auth", h.Auth.Login)

	api.OPTIONS("/classes", handlers.Preflight("GET, POST, DELETE, OPTIONS", "Content-Type, X-User-Id"))
	api.GET("/classes", h.Classes.List)
	api.POST("/classes", h.Classes.Create)
	api.DELETE("/classes", h.Classes.Delete)

	api.OPTIONS("/students", handlers.Preflight("GET, POST, PUT, DELETE, OPTIONS", "Content-Type, X-User-Id"))
	api.GET("/students", h.Students.List)
	api.POST("/students", h.Students.Create)
	api.PUT("/students", h.Students.Enroll)
	api.DELETE("/students", h.Students.Delete)

	api.OPTIONS("/grades", handlers.Preflight("GET, POST, OPTIONS", "Content-Type, X-User-Id"))
	api.GET("/grades", h.Grades.List)
	api.POST("/grades", h.Grades.Create)

	api.OPTIONS("/schedule", handlers.Preflight("GET, POST, OPTIONS", "Content-Type, X-User-Id"))
	api.GET("/schedule", h.Schedule.List)
	api.POST("/schedule", h.Schedule.Create)
}
