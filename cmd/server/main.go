/*
main.go - Application entry point

PURPOSE:

	Initializes and starts the vacation calendar server. Handles
	configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
 1. Parse command-line flags
 2. Load configuration (file + environment)
 3. Initialize SQLite store
 4. Create API handler with dependencies
 5. Start server with graceful shutdown

COMMAND-LINE FLAGS:

	-config  Configuration file path (optional; defaults + env apply without it)
	-port    HTTP server port (overrides config)
	-db      SQLite database path (overrides config)
	         Use ":memory:" for an in-memory database

GRACEFUL SHUTDOWN:

	On SIGINT/SIGTERM:
	1. Stop accepting new connections
	2. Wait for active requests to complete (30s timeout)
	3. Close database connection
	4. Exit
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solari/vacation-engine/api"
	"github.com/solari/vacation-engine/config"
	"github.com/solari/vacation-engine/holiday"
	"github.com/solari/vacation-engine/store/sqlite"
)

func main() {
	// Flags
	configPath := flag.String("config", "", "configuration file path")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	// Initialize store
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize handler and router
	handler := api.NewHandler(store, holiday.NewRegistry(), cfg.Core())
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in background
	go func() {
		log.Printf("Server starting on port %d (year %d, %s/%s)",
			cfg.Server.Port, cfg.Year, cfg.Country, cfg.Subdivision)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped")
}
