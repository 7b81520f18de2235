package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gymtrack/internal/auth"
	"gymtrack/internal/config"
	"gymtrack/internal/observability/logging"
	"gymtrack/internal/observability/metrics"
	"gymtrack/internal/session"
	"gymtrack/internal/store"
	httpx "gymtrack/internal/transport/http"
)

const serviceName = "gymtrack"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	args := os.Args[1:]
	command := "run"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	var err error
	switch command {
	case "run":
		err = runServer(cfg, args)
	case "make-user":
		err = makeUser(cfg, args)
	default:
		fmt.Fprintln(os.Stderr, "usage: gymtrack [run|make-user] [flags]")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func openStores(ctx context.Context, cfg config.Config) (store.UserStore, store.ExerciseStore, func(context.Context) error, error) {
	if cfg.Store == "memory" {
		slog.Warn("using in-memory store, data is lost on exit")
		m := store.NewMemory()
		return m.Users, m.Exercises, func(context.Context) error { return nil }, nil
	}
	m, err := store.Dial(ctx, cfg.MongoURL, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	return m.Users, m.Exercises, m.Close, nil
}

func runServer(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	addr := fs.String("listener", cfg.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dialCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	users, exercises, closeStore, err := openStores(dialCtx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = closeStore(closeCtx)
	}()

	metrics.MustRegister(serviceName)

	authn := auth.New(users, auth.NewPasswordHasher())
	sessions := session.NewManager(users, cfg.SessionTTL)
	handler := httpx.NewRouter(cfg, authn, sessions, users, exercises)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", srv.Addr, "store", cfg.Store)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}

func makeUser(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("make-user", flag.ExitOnError)
	name := fs.String("name", "", "user name")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *password == "" {
		return errors.New("-name and -password are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	users, _, closeStore, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore(ctx) }()

	authn := auth.New(users, auth.NewPasswordHasher())
	user, err := authn.Register(ctx, *name, *password)
	if err != nil {
		return err
	}
	fmt.Printf("created user %s (%s)\n", user.Name, user.ID.Hex())
	return nil
}
