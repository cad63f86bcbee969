package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/silfira/realty/api/internal/config"
	"github.com/silfira/realty/api/internal/database"
	"github.com/silfira/realty/api/internal/handlers"
	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/middleware"
	"github.com/silfira/realty/api/internal/repository"
	"github.com/silfira/realty/api/internal/repository/gormstore"
	"github.com/silfira/realty/api/internal/repository/mongostore"
	"github.com/silfira/realty/api/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load .env if present; environment variables take precedence either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Env)
	log.Info("Starting Silfira Realtors API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"backend":     string(cfg.Database.Backend),
		"port":        cfg.Server.Port,
	})

	ctx := context.Background()

	// Open the configured backend. Both produce the same Store contract and
	// a Pinger for the readiness check.
	var (
		store  *repository.Store
		pinger handlers.Pinger
	)
	switch cfg.Database.Backend {
	case config.BackendPostgres:
		pg, err := database.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database", err, map[string]interface{}{
				"host": cfg.Database.Host,
				"port": cfg.Database.Port,
				"name": cfg.Database.Name,
			})
		}
		defer pg.Close()

		store, err = gormstore.New(pg.Gorm)
		if err != nil {
			log.Fatal("Failed to initialize relational store", err, nil)
		}
		pinger = pg

		log.Info("Database connection established", map[string]interface{}{
			"backend":  "postgres",
			"host":     cfg.Database.Host,
			"port":     cfg.Database.Port,
			"database": cfg.Database.Name,
			"pool_min": cfg.Database.PoolMin,
			"pool_max": cfg.Database.PoolMax,
		})
	case config.BackendMongo:
		mg, err := database.OpenMongo(ctx, cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database", err, map[string]interface{}{
				"database": cfg.Database.MongoDBName,
			})
		}
		defer func() {
			if err := mg.Close(context.Background()); err != nil {
				log.Error("Failed to disconnect from mongodb", err, nil)
			}
		}()

		store = mongostore.New(mg.DB)
		pinger = mg

		log.Info("Database connection established", map[string]interface{}{
			"backend":  "mongo",
			"database": cfg.Database.MongoDBName,
		})
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(pinger, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize service and handler layers
	propertyHandler := handlers.NewPropertyHandler(services.NewPropertyService(store.Properties, log))
	agentHandler := handlers.NewAgentHandler(services.NewAgentService(store.Agents, log))
	inquiryHandler := handlers.NewInquiryHandler(services.NewInquiryService(store.Inquiries, log))
	valuationHandler := handlers.NewValuationHandler(services.NewValuationService(store.Valuations, log))
	testimonialHandler := handlers.NewTestimonialHandler(services.NewTestimonialService(store.Testimonials, log))

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.List)
			properties.POST("", propertyHandler.Create)
			properties.GET("/:id", propertyHandler.Get)
		}

		agents := v1.Group("/agents")
		{
			agents.GET("", agentHandler.List)
			agents.GET("/:id", agentHandler.Get)
		}

		inquiries := v1.Group("/inquiries")
		{
			inquiries.GET("", inquiryHandler.List)
			inquiries.POST("", inquiryHandler.Create)
		}

		valuations := v1.Group("/valuations")
		{
			valuations.GET("", valuationHandler.List)
			valuations.POST("", valuationHandler.Create)
		}

		v1.GET("/testimonials", testimonialHandler.List)
		v1.GET("/stats", propertyHandler.Stats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
