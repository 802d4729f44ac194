package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnTengye/contratos/config"
	"github.com/AnTengye/contratos/handler"
	"github.com/AnTengye/contratos/middleware"
	"github.com/AnTengye/contratos/pkg/logger"
	"github.com/AnTengye/contratos/service"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("CONTRATOS_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully", "path", configPath)

	repo, err := service.NewRepository(&cfg.Store)
	if err != nil {
		slog.Error("failed to open contract store", "error", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Object storage is optional: without it documents can still be downloaded
	var storage service.ObjectStorage
	if cfg.Minio.Enabled() {
		minioSvc, err := service.NewMinioService(&cfg.Minio)
		if err != nil {
			slog.Error("failed to initialize MINIO service", "error", err)
			os.Exit(1)
		}
		if err := minioSvc.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure MINIO bucket", "error", err)
			os.Exit(1)
		}
		storage = minioSvc
	} else {
		slog.Warn("minio not configured, publishing disabled")
	}

	docs := service.NewDocumentService(repo, storage, &cfg.Document)

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(cfg, repo, docs)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return
	}

	slog.Info("server exited gracefully")
}

func newRouter(cfg *config.Config, repo service.ContractRepository, docs *service.DocumentService) *gin.Engine {
	authHandler := handler.NewAuthHandler(cfg)
	contractHandler := handler.NewContractHandler(repo, docs)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.NoStore())
	router.Use(middleware.RateLimit(cfg.Server.RateLimit, time.Minute))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"storage":   docs.StorageEnabled(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.GET("/clauses", handler.Clauses)
		protected.GET("/contracts", contractHandler.List)
		protected.GET("/contracts/:id", contractHandler.Get)
		protected.GET("/contracts/:id/clauses/:number", contractHandler.Clause)
		protected.GET("/contracts/:id/document/text", contractHandler.Text)
		protected.GET("/contracts/:id/document/pdf", contractHandler.PDF)
	}

	// Agents are read-only
	editors := protected.Group("/")
	editors.Use(middleware.RequireRole(middleware.EditorRoles...))
	{
		editors.POST("/contracts", contractHandler.Create)
		editors.DELETE("/contracts/:id", contractHandler.Delete)
		editors.PATCH("/contracts/:id/document", contractHandler.UpdateDocument)
		editors.POST("/contracts/:id/document", contractHandler.Publish)
	}

	return router
}
