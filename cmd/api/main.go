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

	"github.com/codnextech/anchored-api/internal/config"
	"github.com/codnextech/anchored-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/codnextech/anchored-api/internal/infrastructure/jwt"
	transporthttp "github.com/codnextech/anchored-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	sessionTokens, err := jwtinfra.NewProvider(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("session token provider: %v (set SESSION_SECRET)", err)
	}

	if len(cfg.AdminPasswordHashes) == 0 {
		log.Println("WARN: no admin password hashes configured; admin login is disabled")
	}

	deps := &transporthttp.Deps{
		WaitlistRepo:  dynamo.NewWaitlistRepo(dynamoClient, cfg.DynamoTables.Waitlist, cfg.StoreTimeout),
		AllowlistRepo: dynamo.NewAdminEmailRepo(dynamoClient, cfg.DynamoTables.AdminEmails, cfg.StoreTimeout),
		SessionTokens: sessionTokens,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
