//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=channel_delete_test
package channel_delete

import (
	"context"

	"battery-delivery/pkg/logger"

	"github.com/google/uuid"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Delete(ctx context.Context, id uuid.UUID) error
}
