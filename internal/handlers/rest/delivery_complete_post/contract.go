//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_complete_post_test
package delivery_complete_post

import (
	"context"

	"battery-delivery/internal/entities"
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
	Complete(ctx context.Context, id uuid.UUID, location *string) (*entities.Delivery, error)
}
