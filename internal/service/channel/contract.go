//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=channel_test
package channel

import (
	"context"

	"battery-delivery/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Channel, error)
	ListActive(ctx context.Context) ([]entities.Channel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Channel, error)
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	Create(ctx context.Context, name string, active bool) (*entities.Channel, error)
	Update(ctx context.Context, id uuid.UUID, channelModify entities.ChannelModify) (*entities.Channel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Notifier interface {
	Notify(ctx context.Context, notification entities.Notification)
}

type ChangePublisher interface {
	PublishChange(ctx context.Context, table string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
