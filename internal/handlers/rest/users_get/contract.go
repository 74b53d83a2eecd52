//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=users_get_test
package users_get

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
	List(ctx context.Context) ([]entities.User, error)
	ByRole(role entities.UserRole) ([]entities.User, error)
}
