package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"schooljournal/config"
	"schooljournal/db"
	"schooljournal/handlers"
	"schooljournal/middleware"
	"schooljournal/repository"
	"schooljournal/routes"
)

func main() {
	cfg := config.Load()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	if cfg.MigrationsPath != "" {
		if err := db.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	middleware.ApplyMiddleware(router)

	routes.SetupRoutes(router, routes.Handlers{
		Auth:     handlers.NewAuthHandler(repository.NewUserRepository(conn)),
		Classes:  handlers.NewClassHandler(repository.NewClassRepository(conn)),
		Students: handlers.NewStudentHandler(repository.NewStudentRepository(conn)),
		Grades:   handlers.NewGradeHandler(repository.NewGradeRepository(conn)),
		Schedule: handlers.NewScheduleHandler(repository.NewScheduleRepository(conn)),
	})

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
