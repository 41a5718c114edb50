// Package api is the HTTP surface of the admin service: a gin router
// exposing the dashboard operations over the upstream travel-content
// backend. Handlers stay thin; all data shaping lives in the content and
// form packages.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/config"
	"github.com/travel-content-admin/internal/upstream"
)

// NewRouter creates and configures the Gin router
func NewRouter(clients *upstream.Clients, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(clients, log)
	blogHandler := NewBlogHandler(clients, log)
	collectionHandler := NewCollectionHandler(clients, log)
	contentHandler := NewContentHandler(clients, log)
	experienceHandler := NewExperienceHandler(clients, log)
	miscHandler := NewMiscHandler(clients, log)

	// Health check
	router.GET("/health", healthCheck(clients))

	// API v1
	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		blogs := v1.Group("/blogs")
		{
			blogs.GET("", blogHandler.List)
			blogs.GET("/:id", blogHandler.Get)
			blogs.POST("", blogHandler.Create)
			blogs.PATCH("/:id", blogHandler.Update)
			blogs.DELETE("/:id", blogHandler.Delete)
		}

		collections := v1.Group("/collections")
		{
			collections.GET("", collectionHandler.List)
			collections.GET("/:id", collectionHandler.Get)
			collections.GET("/:id/contents", contentHandler.ListByCollection)
			collections.POST("", collectionHandler.Create)
			collections.PATCH("/:id", collectionHandler.Update)
			collections.DELETE("/:id", collectionHandler.Delete)
		}

		contents := v1.Group("/collection-contents")
		{
			contents.GET("", contentHandler.List)
			contents.GET("/:id", contentHandler.Get)
			contents.POST("", contentHandler.Create)
			contents.PATCH("/:id", contentHandler.Update)
			contents.DELETE("/:id", contentHandler.Delete)
		}

		experiences := v1.Group("/experiences")
		{
			experiences.GET("", experienceHandler.List)
			experiences.GET("/:id", experienceHandler.Get)
			experiences.POST("", experienceHandler.Create)
			experiences.PATCH("/:id", experienceHandler.Update)
			experiences.DELETE("/:id", experienceHandler.Delete)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", miscHandler.ListTags)
			tags.POST("", miscHandler.CreateTag)
			tags.DELETE("/:id", miscHandler.DeleteTag)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.GET("", miscHandler.ListContacts)
			contacts.GET("/:id", miscHandler.GetContact)
			contacts.DELETE("/:id", miscHandler.DeleteContact)
		}

		locations := v1.Group("/locations")
		{
			locations.GET("/continents", listContinents)
			locations.GET("/continents/:name/countries", listCountries)
			locations.GET("/countries/:code/states", listStates)
			locations.GET("/countries/:code/cities", listCities)
			locations.GET("/search", searchCountries)
		}
	}

	return router
}

// healthCheck reports the service status plus the backend's own health
func healthCheck(clients *upstream.Clients) gin.HandlerFunc {
	return func(c *gin.Context) {
		upstreamStatus := "unreachable"
		if status, err := clients.Health.Check(c.Request.Context()); err == nil && status != nil {
			upstreamStatus = status.Status
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"upstream":  upstreamStatus,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "travel-content-admin",
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware stamps each request with an id for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("request_id", c.GetString("request_id")).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
