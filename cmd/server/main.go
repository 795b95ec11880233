package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/ignite/author-registry/internal/api"
	"github.com/ignite/author-registry/internal/config"
	"github.com/ignite/author-registry/internal/metrics"
	"github.com/ignite/author-registry/internal/notify"
	"github.com/ignite/author-registry/internal/repository/postgres"
	"github.com/ignite/author-registry/internal/service/author"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	repo := postgres.NewAuthorRepo(db)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	var recorder author.Metrics = metrics.Noop{}
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		recorder = metrics.NewRedisRecorder(redisClient)
		log.Printf("Creation metrics enabled (redis %s)", cfg.Redis.Addr)
	}

	var notifier author.Notifier = notify.Noop{}
	notifyCfg := notify.Config{
		AccessKey: cfg.Notifications.AccessKey,
		SecretKey: cfg.Notifications.SecretKey,
		Region:    cfg.Notifications.Region,
		From:      cfg.Notifications.From,
		To:        cfg.Notifications.To,
	}
	if notifyCfg.Enabled() {
		n, err := notify.NewEmailNotifier(ctx, notifyCfg)
		if err != nil {
			log.Fatalf("Failed to initialize SES notifier: %v", err)
		}
		notifier = n
		log.Printf("Author-created notifications enabled (to %s)", notifyCfg.To)
	}

	svc := author.NewService(repo, recorder, notifier)
	server := api.NewServer(cfg.Server, svc)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		log.Printf("Author registry listening on %s", addr)
		errCh <- server.ListenAndServe(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigCh:
		log.Printf("Received %s, shutting down", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
