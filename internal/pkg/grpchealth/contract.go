//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=grpchealth_test
package grpchealth

import (
	"context"

	"battery-delivery/pkg/logger"
)

// Pinger проверка доступности хранилища, от нее зависит статус SERVING.
type Pinger interface {
	Ping(ctx context.Context) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
