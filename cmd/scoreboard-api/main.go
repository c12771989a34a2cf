package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/merev/scoreboard-api/internal/config"
	"github.com/merev/scoreboard-api/internal/database"
	"github.com/merev/scoreboard-api/internal/game"
	apphttp "github.com/merev/scoreboard-api/internal/http"
	"github.com/merev/scoreboard-api/internal/settings"
	"github.com/merev/scoreboard-api/internal/store"
)

func main() {
	cfg := config.Load()
	settings.SetDefaults(settings.Settings{Locale: cfg.DefaultLocale})

	st, closeStore := openStore(cfg)
	defer closeStore()

	writer := store.NewWriter(st, cfg.SaveTimeout)

	repo := game.NewRepository(st, writer)
	svc := game.NewService(repo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	svc.Mount(ctx)
	cancel()

	handler := game.NewHandler(svc)
	router := apphttp.NewRouter(handler)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("scoreboard-api running on port %s (store: %s)", cfg.Port, cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down scoreboard-api...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	writer.Close()
}

// openStore connects the configured backend. The returned func releases it.
func openStore(cfg config.Config) (store.Store, func()) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		return store.NewRedisStore(client, cfg.RedisPrefix), func() { _ = client.Close() }

	case config.BackendMemory:
		log.Println("using in-memory store, data will not survive a restart")
		return store.NewMemoryStore(), func() {}

	default:
		db, err := database.NewPool(cfg.DBDSN)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := database.Migrate(ctx, db); err != nil {
			db.Close()
			log.Fatalf("migration failed: %v", err)
		}
		return store.NewPostgresStore(db), db.Close
	}
}
