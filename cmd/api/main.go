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

	"github.com/sms4jawaly/sms4jawaly-go/internal/cache/redis"
	"github.com/sms4jawaly/sms4jawaly-go/internal/config"
	"github.com/sms4jawaly/sms4jawaly-go/internal/handler"
	routes "github.com/sms4jawaly/sms4jawaly-go/internal/router"
	"github.com/sms4jawaly/sms4jawaly-go/internal/scheduler"
	"github.com/sms4jawaly/sms4jawaly-go/internal/server"
	"github.com/sms4jawaly/sms4jawaly-go/internal/service"
	"github.com/sms4jawaly/sms4jawaly-go/jawaly"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	// Init gateway client. Bad credentials are a startup error, not a
	// per-request one.
	gateway, err := jawaly.New(jawaly.Config{
		APIKey:    cfg.Gateway.APIKey,
		APISecret: cfg.Gateway.APISecret,
		Sender:    cfg.Gateway.Sender,
		BaseURL:   cfg.Gateway.BaseURL,
	})
	if err != nil {
		log.Fatalf("failed to build gateway client: %v", err)
	}

	// Init services.
	acctSvc := service.NewAccountService(
		gateway,
		cache,
		cfg.Cache.BalanceTTL,
		cfg.Cache.SendersTTL,
		cfg.LowBalanceThreshold,
	)
	msgSvc := service.NewMessageService(gateway, cache, cfg.Cache.JobTTL)

	// Periodic balance refresher.
	refresher := scheduler.NewSchedulerService(
		acctSvc,
		cfg.Refresher.Interval,
		cfg.Refresher.Timeout,
	)

	// HTTP dependencies & server wiring.

	// Handlers
	homeHandler := handler.NewHomeHandler()
	messageHandler := handler.NewMessageHandler(msgSvc, refresher)
	accountHandler := handler.NewAccountHandler(acctSvc)

	// Init route dependencies
	deps := routes.AppDeps{
		Home:    homeHandler,
		Message: messageHandler,
		Account: accountHandler,
	}

	// Init Server
	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		log.Printf("HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Start the balance refresher after everything is wired up.
	if err := refresher.Start(); err != nil {
		log.Fatalf("Balance refresher error: %v", err)
	}
	log.Println("[Main] Balance refresher started.")

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	// Give components some time to shut down cleanly.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop the refresher (waits for an in-flight refresh to finish or time out).
	log.Println("[Main] Stopping balance refresher...")
	if err := refresher.Stop(); err != nil {
		log.Printf("[Main] Balance refresher did not stop cleanly: %v", err)
	} else {
		log.Println("[Main] Balance refresher stopped.")
	}

	// Gracefully shut down the HTTP server.
	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		log.Println("[Main] HTTP server stopped.")
	}

	log.Println("[Main] Shutdown complete.")
}
