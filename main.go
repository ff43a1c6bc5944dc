package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushq/unidesk/internal/adapter/embedding"
	"github.com/campushq/unidesk/internal/adapter/llm"
	"github.com/campushq/unidesk/internal/config"
	"github.com/campushq/unidesk/internal/policy"
	"github.com/campushq/unidesk/internal/resolver"
	"github.com/campushq/unidesk/internal/semantic"
	"github.com/campushq/unidesk/internal/service"
	"github.com/campushq/unidesk/internal/store"
	"github.com/campushq/unidesk/internal/tools"
	transport "github.com/campushq/unidesk/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting university support center...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Model: %s", cfg.LLMModel)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize oracles
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)
	embedder := embedding.NewEmbedder(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModel, cfg.EmbeddingTimeout)

	// Initialize semantic retrieval and tools
	indices := semantic.NewRegistry(cfg.CacheDir, embedder)
	registry := tools.NewRegistry(resolver.New(indices))

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewDefault(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service and server
	svc := service.New(cfg, db, llmClient, registry, policyEngine)
	server := transport.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Support center API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down support center...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Support center stopped")
}
