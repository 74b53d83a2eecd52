//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"battery-delivery/internal/pkg/config"
	channelService "battery-delivery/internal/service/channel"
	deliveryService "battery-delivery/internal/service/delivery"
	reportService "battery-delivery/internal/service/report"
	userService "battery-delivery/internal/service/user"
	"battery-delivery/pkg/logger"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication собирает сервисы, кэши и фоновые задачи HTTP сервиса (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher ChangePublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTimeFactory,

		provideDeliveryRepository,
		provideChannelRepository,
		provideUserRepository,

		provideServiceDelivery,
		provideServiceChannel,
		provideServiceUser,
		provideServiceReport,

		provideChangeFeedHub,

		provideCacheRefreshTasks,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceChannel), new(*channelService.Channel)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),
	)
	return &Application{}, nil
}
