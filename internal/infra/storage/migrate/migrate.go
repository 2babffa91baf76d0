package migrate

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SeatingService/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Files возвращает имена миграций в порядке применения
func Files() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Up применяет еще не примененные миграции, учитывая их в schema_migrations
func Up(ctx context.Context, db dbmetrics.DBExecutor, log Logger) (int, error) {
	names, err := Files()
	if err != nil {
		return 0, fmt.Errorf("migrate: list migrations: %w", err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`); err != nil {
		return 0, fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	applied := 0
	for _, name := range names {
		var done bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name,
		).Scan(&done); err != nil {
			return applied, fmt.Errorf("migrate: check %s: %w", name, err)
		}
		if done {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("migrate: read %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("migrate: apply %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			return applied, fmt.Errorf("migrate: record %s: %w", name, err)
		}

		log.Info("Applied migration %s", name)
		applied++
	}

	return applied, nil
}
