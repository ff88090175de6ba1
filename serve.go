package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/auth"
	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/config"
	_ "github.com/kusasa/backend/docs"
	"github.com/kusasa/backend/gemini"
	"github.com/kusasa/backend/handlers"
	"github.com/kusasa/backend/intake"
	"github.com/kusasa/backend/mcp"
	"github.com/kusasa/backend/session"
	"github.com/kusasa/backend/storage"
	"github.com/kusasa/backend/tools"
	"github.com/kusasa/backend/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// app wires the long-lived services shared by the server and the CLI
type app struct {
	cfg        *config.Config
	client     *gemini.Client
	catalog    *catalog.Catalog
	normalizer *intake.Normalizer
	analyzer   *agent.Analyzer
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	log.Println("Loading job catalog...")
	cat, err := storage.LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load job catalog: %w", err)
	}

	log.Println("Initializing Gemini client...")
	client, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newAppWithClient(cfg, client, cat), nil
}

func newAppWithClient(cfg *config.Config, client *gemini.Client, cat *catalog.Catalog) *app {
	return &app{
		cfg:     cfg,
		client:  client,
		catalog: cat,
		normalizer: intake.NewNormalizer(cfg.MaxUploadBytes,
			intake.WithFileNamePrefix(cfg.IncludeFileName),
		),
		analyzer: agent.NewAnalyzer(client, client, cat),
	}
}

func (a *app) Close() error {
	return a.client.Close()
}

// router builds the gin engine with every route registered
func (a *app) router(store *session.Store) *gin.Engine {
	cfg := a.cfg
	tokens := auth.NewSessionTokens(cfg)

	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewParseResumeTool(a.client, a.normalizer))
	toolRegistry.Register(tools.NewMatchJobsTool(a.client, a.catalog))
	toolRegistry.Register(tools.NewListJobsTool(a.catalog))
	mcpServer := mcp.NewServer(toolRegistry, "kusasa", handlers.Version)

	sessionHandler := handlers.NewSessionHandler(store, tokens, a.normalizer, a.analyzer)
	cvHandler := handlers.NewCVHandler(a.client, a.normalizer)
	jobsHandler := handlers.NewJobsHandler(a.catalog, a.client)
	systemHandler := handlers.NewSystemHandler(a.catalog, toolRegistry)

	// Inference endpoints share one budget per session, or per IP when stateless
	limiter := utils.NewKeyedLimiter(cfg.AnalyzeRatePerMinute)
	perSession := utils.RateLimitMiddleware(limiter, func(c *gin.Context) string {
		if sess := auth.GetSession(c); sess != nil {
			return "session:" + sess.ID
		}
		return ""
	})
	perIP := utils.RateLimitMiddleware(limiter, nil)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Allow the browser front-end to read refreshed tokens
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", auth.RefreshHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", systemHandler.HealthCheck)

	api := router.Group("/api")
	{
		sessionHandler.RegisterRoutes(api, auth.SessionMiddleware(tokens, store), perSession)

		api.GET("/jobs", jobsHandler.ListJobs)
		api.GET("/jobs/:id", jobsHandler.GetJob)
		api.POST("/match-jobs", perIP, jobsHandler.MatchJobs)
		api.POST("/parse-cv", perIP, cvHandler.ParseCV)

		// Tools introspection endpoint
		api.GET("/tools", systemHandler.GetTools)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	return router
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	log.Printf("Services initialized: %d jobs in catalog", a.catalog.Len())

	store := session.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	go store.Run(ctx, time.Minute)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router(store),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited gracefully")
	return nil
}

