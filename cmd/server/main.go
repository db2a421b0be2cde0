package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	creatoranalyzer "holokit/agents/creator-analyzer"
	"holokit/agents/creator-analyzer/github"
	"holokit/agents/creator-analyzer/instagram"
	"holokit/agents/creator-analyzer/youtube"
	"holokit/server"
	"holokit/shared/ai"
	"holokit/shared/config"
	"holokit/shared/imagegen"
	"holokit/shared/monitoring"
	"holokit/shared/scheduler"
	"holokit/shared/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := storage.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}()

	analyzer, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build analyzer: %v", err)
	}

	sched := scheduler.New(store)
	if err := sched.Start(ctx, cfg.Schedule.PremiumSweep); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	srv := server.New(cfg, store, analyzer, imagegen.NewClient(cfg.ImageGen.ReplicateToken), monitoring.NewMonitor())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: srv.Router(),
	}

	go func() {
		fmt.Printf("🚀 Holo-Kit API listening on %s\n", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// buildAnalyzer wires the pipeline, substituting a mock client for any
// platform whose credentials are missing.
func buildAnalyzer(ctx context.Context, cfg *config.Config) (*creatoranalyzer.Agent, error) {
	var yt creatoranalyzer.YouTubeProvider = youtube.Mock{}
	if cfg.YouTube.APIKey != "" {
		client, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube client: %w", err)
		}
		yt = client
	} else {
		log.Println("⚠️ YOUTUBE_API_KEY not set, using mock YouTube data")
	}

	gh := github.NewClient(cfg.GitHub.Token)

	var ig creatoranalyzer.ProfileFetcher = instagram.Mock{}
	if cfg.Instagram.Configured() {
		ig = instagram.NewClient(&cfg.Instagram)
	} else {
		log.Println("⚠️ Instagram credentials not set, using mock Instagram data")
	}

	summarizer, err := ai.NewSummarizer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create summarizer: %w", err)
	}
	characterizer, err := ai.NewCharacterizer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create characterizer: %w", err)
	}

	return creatoranalyzer.New(yt, gh, ig, summarizer, characterizer), nil
}
