package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/api"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/cache"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/config"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/database"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/repository"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/scheduler"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/service"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/universe"
	"github.com/ndewijer/Put-Option-Screener-Backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Load the symbol universe
	u, err := universe.Load(cfg.Universe.Path)
	if err != nil {
		log.Fatalf("Failed to load universe: %v", err)
	}
	log.Printf("Loaded universe: %d symbols in %d groups", len(u.Symbols()), len(u.Groups()))

	// Create repositories
	dividendRepo := repository.NewDividendRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	feed := yahoo.NewFinanceClient()
	summaries := cache.NewSummaryCache(cfg.Cache.TTL)

	systemService := service.NewSystemService(db)
	settingsService := service.NewSettingsService(settingsRepo)
	historyService := service.NewHistoryService(feed, dividendRepo, summaries)
	analysisService := service.NewAnalysisService(feed, historyService, u, summaries)

	// Start the background history refresh
	refreshScheduler, err := scheduler.New(historyService, u, cfg.Scheduler.RefreshSchedule)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	refreshScheduler.Start()
	defer refreshScheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, analysisService, settingsService, u, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
