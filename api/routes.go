package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/sendbun/SimpleInbox/api/handlers"
	"github.com/sendbun/SimpleInbox/api/middleware"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/tracing"
	"github.com/sendbun/SimpleInbox/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, s *services.Services, log logger.Logger) {
	if s == nil {
		panic("Services cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))

	apiHandlers := handlers.InitHandlers(s, log)

	// Health check endpoint (no custom context needed)
	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.CustomContextMiddleware("simple-inbox"))
	api.Use(middleware.TracingMiddleware())
	{
		// Provider proxy endpoints, mirroring the upstream API 1:1
		domains := api.Group("/domains")
		{
			domains.GET("/site-domains", apiHandlers.Domains.SiteDomains())
		}

		accounts := api.Group("/accounts")
		{
			accounts.POST("/create", apiHandlers.Accounts.Create())
			accounts.DELETE("/:emailAccountId", apiHandlers.Accounts.Delete())
		}

		emails := api.Group("/emails")
		{
			emails.GET("", apiHandlers.Emails.List())
			emails.GET("/:emailAccountId/:messageId", apiHandlers.Emails.Get())
			emails.DELETE("/:emailAccountId/:messageId/delete", apiHandlers.Emails.Delete())
		}

		// Managed session endpoints; the server owns the account lifecycle
		session := api.Group("/session")
		{
			session.POST("/bootstrap", apiHandlers.Session.Bootstrap())
			session.POST("/rotate", apiHandlers.Session.Rotate())
			session.POST("/cleanup", apiHandlers.Session.Cleanup())
			session.GET("/account", apiHandlers.Session.Account())
			session.GET("/inbox", apiHandlers.Session.Inbox())
			session.GET("/inbox/:messageId", apiHandlers.Session.Open())
			session.DELETE("/inbox/:messageId", apiHandlers.Session.Delete())
			session.GET("/inbox/:messageId/download", apiHandlers.Session.Download())
			session.GET("/inbox/:messageId/print", apiHandlers.Session.Print())
		}
	}
}
