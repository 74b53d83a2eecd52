//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"battery-delivery/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context) ([]entities.Delivery, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Delivery, error)
	Create(ctx context.Context, create entities.DeliveryCreate) (*entities.Delivery, error)
	Update(ctx context.Context, id uuid.UUID, modify entities.DeliveryModify) (*entities.Delivery, error)
}

type Notifier interface {
	Notify(ctx context.Context, notification entities.Notification)
}

// ChangePublisher сообщает другим инстансам, что таблица изменилась.
type ChangePublisher interface {
	PublishChange(ctx context.Context, table string) error
}

type TimeFactory interface {
	Now() time.Time
}
