//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"battery-delivery/internal/entities"
)

type Repository interface {
	List(ctx context.Context) ([]entities.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, notification entities.Notification)
}
