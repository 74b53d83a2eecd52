//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=channel_post_test
package channel_post

import (
	"context"

	"battery-delivery/internal/entities"
	"battery-delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Create(ctx context.Context, name string, active bool) (*entities.Channel, error)
}
