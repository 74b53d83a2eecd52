//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_patch_test
package delivery_patch

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
	Update(ctx context.Context, id uuid.UUID, modify entities.DeliveryModify) (*entities.Delivery, error)
}
