package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CalvinKoushik/ecom-backend/internal/config"
	"github.com/CalvinKoushik/ecom-backend/internal/shiprocket"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := shiprocket.NewClient(cfg.Shiprocket, cfg.HTTPTimeout, logger)
	tokens := shiprocket.NewTokenCache(client, cfg.Shiprocket.TokenTTL, logger)

	fmt.Printf("Logging in to %s as %s\n\n", cfg.Shiprocket.BaseURL, cfg.Shiprocket.Email)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	if _, err := tokens.Token(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		fmt.Printf("\nMake sure:\n")
		fmt.Printf("  1. SHIPROCKET_EMAIL belongs to an API user, not the account owner\n")
		fmt.Printf("  2. SHIPROCKET_PASSWORD is that API user's password\n")
		os.Exit(1)
	}

	token, _ := tokens.Current()
	fmt.Printf("Login OK\n")
	fmt.Printf("Token will be reused until %s (%s from now)\n",
		token.ExpiresAt.Format(time.RFC3339),
		time.Until(token.ExpiresAt).Round(time.Minute),
	)
}
