package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SeatingService/internal/api"
	"github.com/m04kA/SMC-SeatingService/internal/api/middleware"
	bookingRepo "github.com/m04kA/SMC-SeatingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SeatingService/internal/infra/storage/migrate"
	bookingsService "github.com/m04kA/SMC-SeatingService/internal/service/bookings"
	checkAvailabilityUC "github.com/m04kA/SMC-SeatingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-SeatingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SeatingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SeatingService/pkg/txmanager"
)

const rateLimitCleanupInterval = time.Minute

func NewServeCmd(configPath *string) *cobra.Command {
	var runMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath, runMigrations)
		},
	}
	cmd.Flags().BoolVar(&runMigrations, "migrate", false, "apply pending migrations before start")
	return cmd
}

func runServe(configPath string, runMigrations bool) error {
	a, err := openApp(configPath, true)
	if err != nil {
		return err
	}
	defer a.close()

	cfg, log := a.cfg, a.log
	log.Info("Starting SMC-SeatingService %s...", Version)
	log.Info("Configuration loaded from %s", configPath)

	if runMigrations {
		applied, err := migrate.Up(context.Background(), a.db, log)
		if err != nil {
			return err
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Инициализируем репозиторий и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(a.db)
	txMgr := txmanager.NewTransactionManager(a.db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, a.metrics, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, a.metrics, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, txMgr, a.metrics, log)

	// Ограничение частоты запросов (если включено)
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		if err := limiter.TrustProxies(cfg.RateLimit.TrustedProxies); err != nil {
			return err
		}
		go limiter.RunCleanup(rateLimitCleanupInterval, a.stopCh)
		log.Info("Rate limiting enabled (rps=%.2f, burst=%d)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	handler := api.NewRouter(api.Dependencies{
		CheckAvailability: checkAvailabilityUseCase,
		GetAvailableSlots: getAvailableSlotsUseCase,
		CreateBooking:     createBookingUseCase,
		Reservations:      bookingSvc,
		ContactPhone:      cfg.Seating.ContactPhone,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		Metrics:           a.metrics,
		MetricsPath:       cfg.Metrics.Path,
		RateLimiter:       limiter,
		Logger:            log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}
