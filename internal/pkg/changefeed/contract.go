//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=changefeed_test
package changefeed

import (
	"context"

	"battery-delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Reloader полностью перезагружает кэш одного сервиса.
type Reloader interface {
	Reload(ctx context.Context) error
}
