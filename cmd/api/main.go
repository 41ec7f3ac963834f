// ABOUTME: Main entry point for the Sports News API server
// ABOUTME: Loads configuration, wires the application and serves until signalled

package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"sports-news-api/internal/app"
	"sports-news-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer application.Close()

	application.Logger.Info("Starting Sports News API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"dump_backend": cfg.Dump.Backend,
		"feeds_file":   cfg.Pipeline.FeedsFile,
	})

	if err := application.Serve(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	// Print banner
	fmt.Println(`
   _____                  __           _   __
  / ___/____  ____  _____/ /______    / | / /__ _      _______
  \__ \/ __ \/ __ \/ ___/ __/ ___/   /  |/ / _ \ | /| / / ___/
 ___/ / /_/ / /_/ / /  / /_(__  )   / /|  /  __/ |/ |/ (__  )
/____/ .___/\____/_/   \__/____/   /_/ |_/\___/|__/|__/____/
    /_/
	`)
}
