package main

import (
	"log"

	"github.com/ehsworks/safety-go/internal/api/middleware"
	"github.com/ehsworks/safety-go/internal/api/routes"
	"github.com/ehsworks/safety-go/internal/config"
	"github.com/ehsworks/safety-go/internal/config/db"
	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/domain/option"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&user.RoleEntry{},
		&option.Entry{},
		&form.Definition{},
		&form.Section{},
		&form.Field{},
		&form.Validation{},
		&form.Submission{},
		&form.WorkflowHistory{},
		&form.Document{},
		&form.SecurityMailConfig{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
