package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"showcase/cli"
	"showcase/config"
	"showcase/core"
	"showcase/database"
	"showcase/handlers"
	"showcase/service"
	"showcase/state"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed static/*
var staticFiles embed.FS

func main() {
	// Load environment variables and parse CLI flags
	config.ParseFlags()

	logFile, err := setupLogging(config.Settings.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Check if CLI mode is requested
	if config.Settings.CLIMode {
		mainCLI()
		return
	}

	log.Println("System starting up...")

	// Initialize database. A failed open is not fatal for the demo: the
	// settings page renders with defaults when no database handle is
	// available.
	db, err := database.InitDB(config.Settings)
	if err != nil {
		log.Printf("Warning: Failed to initialize database, settings page will run degraded: %v", err)
		core.LogErrorSimple("database", "database initialization failed: "+err.Error())
		db = nil
	}

	acc := database.NewAccessor(db)
	handlers.SetAccessor(acc)

	// Initialize services
	service.InitServices(acc)

	// Start gallery session sweeper
	stopCleanup := state.Global.StartCleanup(
		time.Duration(config.Settings.GalleryCleanupIntervalMinutes)*time.Minute,
		time.Duration(config.Settings.GallerySessionMaxAgeMinutes)*time.Minute,
	)
	defer stopCleanup()

	// Start goroutine monitor
	go monitorGoroutines()

	// Set Gin mode
	if config.Settings.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Direct Gin logs to the configured log file
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()

	// Disable Gin color logs to avoid ANSI issues on Windows terminals
	gin.DisableConsoleColor()

	// Create router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Static file service using embedded FS
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("Failed to create static file system: %v", err)
	}
	r.StaticFS("/web", http.FS(staticFS))

	// Root path redirect
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/web/index.html")
	})

	// API routes
	api := r.Group("/api")
	{
		// Settings page routes
		api.GET("/settings", handlers.GetSettings)
		api.POST("/settings", handlers.UpdateSettings)

		// Gallery view session routes
		api.POST("/gallery/sessions", handlers.CreateGallerySession)
		api.GET("/gallery/sessions/:id", handlers.GetGallerySession)
		api.DELETE("/gallery/sessions/:id", handlers.DeleteGallerySession)
		api.POST("/gallery/sessions/:id/toggle", handlers.ToggleGalleryComponent)
		api.POST("/gallery/sessions/:id/submit", handlers.SubmitGalleryName)
		api.POST("/gallery/sessions/:id/sort", handlers.SortGalleryStatus)

		// Error log routes
		api.GET("/error-logs", handlers.GetErrorLogs)
		api.GET("/error-logs/:id", handlers.GetErrorLog)
		api.DELETE("/error-logs", handlers.ClearErrorLogs)

		// Health and metrics routes
		api.GET("/health", handlers.HealthCheck)
		api.GET("/metrics", handlers.GetMetrics)
		api.GET("/metrics/prometheus", handlers.GetPrometheusMetrics)
	}

	// Find an available port
	port := findAvailablePort(config.Settings.Port)
	if port != config.Settings.Port {
		log.Printf("Default port %d is busy. Switched to %d", config.Settings.Port, port)
	}

	// Create HTTP server
	addr := fmt.Sprintf("0.0.0.0:%d", port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on http://127.0.0.1:%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for OS interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("System shutting down...")

	// Close database connection
	if err := database.CloseDB(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	// Gracefully shut down HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// findAvailablePort searches for an available port
func findAvailablePort(startPort int) int {
	for port := startPort; port < startPort+100; port++ {
		addr := fmt.Sprintf("0.0.0.0:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port
		}
	}
	log.Fatal("No available ports found")
	return startPort
}

// monitorGoroutines tracks goroutine count to prevent leaks
func monitorGoroutines() {
	ticker := time.NewTicker(time.Duration(config.Settings.GoroutineMonitorIntervalSeconds) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		count := runtime.NumGoroutine()
		if count > config.Settings.GoroutineWarnThreshold {
			log.Printf("WARNING: High goroutine count detected: %d", count)
		} else if config.Settings.LogLevel == "DEBUG" {
			log.Printf("Current goroutine count: %d", count)
		}
	}
}

// mainCLI entrypoint for CLI (HTTP client mode)
func mainCLI() {
	// CLI mode skips DB load; acts as HTTP client
	log.SetFlags(log.Ldate | log.Ltime)

	serverURL := config.Settings.CLIServer

	fmt.Printf("Showcase CLI - Connecting to %s\n", serverURL)

	cliInstance, err := cli.New(serverURL)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("\nTips:")
		fmt.Println("  1. Make sure the Showcase server is running:")
		fmt.Println("     ./showcase")
		fmt.Println("  2. Or specify a different server:")
		fmt.Printf("     ./showcase --cli --server http://your-server:8788\n")
		os.Exit(1)
	}

	// Start CLI loop (readline handles Ctrl+C automatically)
	cliInstance.Start()
}
