package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/hotel-reservations/internal/application"
	"github.com/example/hotel-reservations/internal/cli"
	"github.com/example/hotel-reservations/internal/config"
	httptransport "github.com/example/hotel-reservations/internal/http"
	"github.com/example/hotel-reservations/internal/logging"
	"github.com/example/hotel-reservations/internal/metrics"
	"github.com/example/hotel-reservations/internal/reservation"
)

const (
	defaultConfigPath = "hotel.toml"
	commandHashToken  = "hash-token"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// A missing .env file is normal outside development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Error("hotel exited with error", "error", err)
		os.Exit(1)
	}
}

// run dispatches on the first argument: "menu", "serve", "hash-token" or
// nothing, in which case the configured mode is used.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var command string
	if len(args) > 0 {
		command = strings.TrimSpace(args[0])
	}

	switch command {
	case commandHashToken:
		return hashToken(args[1:], stdout)
	case "", config.ModeMenu, config.ModeServe:
	default:
		return fmt.Errorf("unknown command %q (want %s, %s or %s)", command, config.ModeMenu, config.ModeServe, commandHashToken)
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if command != "" {
		cfg.Mode = command
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
	}

	// The menu owns stdout, so its logs go to stderr.
	logOutput := stdout
	if cfg.Mode == config.ModeMenu {
		logOutput = stderr
	}
	logger, err := logging.New(logOutput, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a, err := newApp(ctx, cfg, logger, time.Now)
	if err != nil {
		return err
	}

	if cfg.Mode == config.ModeServe {
		return a.serve(ctx)
	}
	return cli.NewMenu(a.service, stdin, stdout, cfg.DefaultSearchWindow, logger).Run(ctx)
}

func configPath() string {
	if path := strings.TrimSpace(os.Getenv("HOTEL_CONFIG")); path != "" {
		return path
	}
	return defaultConfigPath
}

func hashToken(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: hotel %s <token>", commandHashToken)
	}
	encoded, err := application.HashAdminToken(args[0], application.DefaultArgon2idParams)
	if err != nil {
		return fmt.Errorf("hash admin token: %w", err)
	}
	_, err = fmt.Fprintln(out, encoded)
	return err
}

type app struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	service *application.HotelService
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger, now func() time.Time) (*app, error) {
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	customers := application.NewCustomerDirectoryWithLogger(logger)
	service := application.NewHotelServiceWithLogger(
		reservation.NewRegistry(),
		reservation.NewLedger(nil, now),
		customers,
		now,
		logger,
		m,
	)

	if cfg.SeedDemoData {
		if err := service.SeedDemoData(ctx); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	return &app{cfg: cfg, logger: logger, metrics: m, service: service}, nil
}

func (a *app) handler() (http.Handler, error) {
	var guard *application.AdminGuard
	if strings.TrimSpace(a.cfg.AdminTokenHash) != "" {
		var err error
		guard, err = application.NewAdminGuard(a.cfg.AdminTokenHash)
		if err != nil {
			return nil, fmt.Errorf("parse admin token hash: %w", err)
		}
	}

	routerCfg := httptransport.RouterConfig{
		Rooms:        httptransport.NewRoomHandler(a.service, a.logger),
		Customers:    httptransport.NewCustomerHandler(a.service, a.logger),
		Reservations: httptransport.NewReservationHandler(a.service, a.cfg.DefaultSearchWindow, a.logger),
		Admin:        httptransport.NewAdminHandler(a.service, a.logger),
		Logger:       a.logger,
	}
	if guard != nil {
		routerCfg.AdminGuard = guard
	}
	if a.metrics != nil {
		routerCfg.Metrics = a.metrics.Handler()
		routerCfg.MetricsPath = a.cfg.Metrics.Path
		routerCfg.Observer = a.metrics
	}
	return httptransport.NewRouter(routerCfg), nil
}

func (a *app) serve(ctx context.Context) error {
	handler, err := a.handler()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	a.logger.Info("hotel API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}
