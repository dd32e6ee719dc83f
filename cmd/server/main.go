package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdg-garage/hotel-web/internal/config"
	"github.com/gdg-garage/hotel-web/internal/database"
	"github.com/gdg-garage/hotel-web/internal/handlers"
	"github.com/gdg-garage/hotel-web/internal/notifier"
	"github.com/gdg-garage/hotel-web/internal/session"
	"github.com/gdg-garage/hotel-web/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func run() error {
	// Load Configuration
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policy, err := validation.ParsePolicy(cfg.ValidationPolicy)
	if err != nil {
		return fmt.Errorf("invalid VALIDATION_POLICY: %w", err)
	}

	store, closeStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	notifiers, closeNotifiers := newNotifiers(cfg)
	defer closeNotifiers()

	// Initialize Handlers
	pages, err := handlers.NewPageHandler(store)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	registrationHandler := handlers.NewRegistrationHandler(store, notifiers, policy)
	reservationHandler := handlers.NewReservationHandler(store, notifiers, policy)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, sessions, pages, registrationHandler, reservationHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	lis, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	// Start Server
	log.Printf("Starting server on port %s (sessions=%s, policy=%s, notifiers=%d)", cfg.Port, cfg.SessionBackend, policy, len(notifiers))
	return serve(ctx, srv, lis)
}

// serve blocks until the server fails or ctx is cancelled. On cancellation
// it returns only once in-flight requests have drained or the grace period
// ran out.
func serve(ctx context.Context, srv *http.Server, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(lis) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
		log.Printf("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// expiryPurger is a session backend that can drop expired entries itself.
// Redis expires keys on its own and does not need one.
type expiryPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case "memory":
		store := session.NewMemoryStore(cfg.SessionTTL)
		go purgeExpired(ctx, store, time.Hour)
		return store, func() {}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return session.NewRedisStore(client, cfg.SessionTTL), func() { client.Close() }, nil

	case "sqlite":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		store := session.NewSQLStore(db, cfg.SessionTTL)
		go purgeExpired(ctx, store, time.Hour)
		return store, func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown SESSION_BACKEND %q (want memory, sqlite or redis)", cfg.SessionBackend)
	}
}

func purgeExpired(ctx context.Context, store expiryPurger, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				log.Printf("Session purge failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Purged %d expired session entries", n)
			}
		}
	}
}

// newNotifiers builds every notifier whose credentials are configured. A
// notifier that cannot be set up is logged and left out.
func newNotifiers(cfg *config.Config) (notifier.Multi, func()) {
	var notifiers notifier.Multi
	closers := []func(){}

	if cfg.EmailAPIKey != "" {
		email, err := notifier.NewEmailNotifier(&http.Client{Timeout: 10 * time.Second}, cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.EmailFrom, cfg.BaseURL)
		if err != nil {
			log.Printf("Email notifier not initialized: %v", err)
		} else {
			notifiers = append(notifiers, email)
		}
	}

	if cfg.DiscordBotToken != "" {
		discord, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			notifiers = append(notifiers, discord)
		}
	}

	if cfg.RabbitMQURL != "" {
		queue, err := notifier.NewQueueNotifier(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			log.Printf("Queue notifier not initialized: %v", err)
		} else {
			notifiers = append(notifiers, queue)
			closers = append(closers, func() { queue.Close() })
		}
	}

	return notifiers, func() {
		for _, c := range closers {
			c()
		}
	}
}
