package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gifthelper/backend/config"
	httpDelivery "github.com/gifthelper/backend/internal/delivery/http"
	"github.com/gifthelper/backend/internal/infrastructure/catalog"
	"github.com/gifthelper/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GiftHelper Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog seed: %s", cfg.Catalog.SeedPath)

	// Initialize infrastructure dependencies. The store loads the seed
	// file lazily on the first suggestion request and caches the
	// normalized snapshot for the process lifetime.
	catalogStore := catalog.NewStore(catalog.NewFileSource(cfg.Catalog.SeedPath))

	// Initialize usecase layer
	suggestionService := usecase.NewSuggestionService(catalogStore, usecase.SuggestionConfig{
		EnableDebugLogging: cfg.Engine.EnableDebugLogging,
	})

	if cfg.Engine.EnableDebugLogging {
		log.Printf("Suggestion engine debug logging enabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(suggestionService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
