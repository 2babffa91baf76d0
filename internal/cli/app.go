package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SeatingService/internal/config"
	"github.com/m04kA/SMC-SeatingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SeatingService/pkg/logger"
	"github.com/m04kA/SMC-SeatingService/pkg/metrics"
)

const pingTimeout = 5 * time.Second

// app общие зависимости команд: конфиг, логгер, пул соединений
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	sqlDB   *sql.DB
	db      *dbmetrics.DB
	metrics *metrics.Metrics
	stopCh  chan struct{}
}

// openApp загружает конфиг и подключается к базе
// withMetrics включает сбор метрик, если он разрешен в конфиге
func openApp(configPath string, withMetrics bool) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, stopCh: make(chan struct{})}

	// Инициализируем метрики (если включены)
	if withMetrics && cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	a.sqlDB, err = sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	a.sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	a.sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	a.sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	// Проверяем соединение
	if err := a.sqlDB.PingContext(ctx); err != nil {
		a.close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик коллектор nil, обертка просто проксирует запросы
	if a.metrics != nil {
		a.db = dbmetrics.WrapWithDefault(a.sqlDB, a.metrics, a.stopCh)
		log.Info("Database metrics collection started")
	} else {
		a.db = dbmetrics.Wrap(a.sqlDB, nil)
	}

	return a, nil
}

func (a *app) close() {
	close(a.stopCh)
	if a.sqlDB != nil {
		_ = a.sqlDB.Close()
	}
	_ = a.log.Close()
}
