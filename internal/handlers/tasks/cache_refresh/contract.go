//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cache_refresh_test
package cache_refresh

import (
	"context"

	"battery-delivery/pkg/logger"
)

// Service кэширующий сервис, который умеет полностью перечитать свою таблицу.
type Service interface {
	Reload(ctx context.Context) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
