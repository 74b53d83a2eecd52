package postgres

import (
	"context"
	"fmt"

	"battery-delivery/migrations"
	"battery-delivery/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate накатывает встроенные в бинарник миграции через goose.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		err := db.Close()
		if err != nil {
			log.Error("failed to close migration connection", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	err := goose.SetDialect(string(goose.DialectPostgres))
	if err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	err = goose.UpContext(ctx, db, ".")
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}

	log.Info("database migrated", logger.NewField("version", version))
	return nil
}
