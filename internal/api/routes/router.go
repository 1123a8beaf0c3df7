package routes

import (
	"context"

	"github.com/ehsworks/safety-go/internal/api/handlers"
	"github.com/ehsworks/safety-go/internal/api/middleware"
	"github.com/ehsworks/safety-go/internal/application"
	"github.com/ehsworks/safety-go/internal/application/reminder"
	"github.com/ehsworks/safety-go/internal/config"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/pkg/mailer"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and handlers onto the engine.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) *application.Services {
	repos := repository.NewRepositories(db)
	mail := mailer.New(mailer.Config{
		Host:        config.SmtpHost,
		Port:        config.SmtpPort,
		User:        config.SmtpUser,
		Password:    config.SmtpPassword,
		From:        config.SmtpFrom,
		AppName:     config.AppName,
		TemplateDir: config.TemplateDir,
	})
	services := application.New(repos, mail, application.NotifierConfig{
		DefaultSecurityEmail: config.DefaultSecurityEmail,
		SecurityEmailEnabled: config.SecurityEmailEnabled,
	})
	h := handlers.New(services)

	// Run the closure reminder sweep alongside the API server unless a
	// standalone scheduler owns it.
	if config.ReminderSweepEnabled {
		go reminder.New(repos, mail).Run(context.Background())
	}

	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/profile", h.User.Profile)

		forms := auth.Group("/forms")
		{
			forms.POST("", h.Form.Submit)
			forms.GET("/inbox", h.Form.Inbox)
			forms.GET("/definitions", h.Form.Definitions)
			forms.GET("/schema", h.Form.Schema)
			forms.GET("/submission-allowed", h.Form.SubmissionAllowed)
			forms.GET("/:id", h.Form.Detail)
			forms.PUT("/:id", h.Form.UpdateForm)
			forms.PUT("/:id/status", h.Form.UpdateStatus)
		}

		auth.GET("/documents/:id", h.Form.Document)

		// account administration is an admin-only surface
		users := auth.Group("/users", middleware.RequireRoles(user.RoleAdmin))
		{
			users.GET("", h.User.List)
			users.POST("", h.User.Create)
			users.PUT("/:id", h.User.Update)
			users.PUT("/:id/status", h.User.SetStatus)
		}

		auth.GET("/options", h.Option.List)
		auth.GET("/options/all", h.Option.ListAll)
		auth.GET("/roles", h.Option.Roles)
	}

	return services
}
