package app

import (
	"context"
	"fmt"
	"time"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/handlers/rest/channel_delete"
	"battery-delivery/internal/handlers/rest/channel_patch"
	"battery-delivery/internal/handlers/rest/channel_post"
	"battery-delivery/internal/handlers/rest/channel_status_post"
	"battery-delivery/internal/handlers/rest/channels_get"
	"battery-delivery/internal/handlers/rest/deliveries_get"
	"battery-delivery/internal/handlers/rest/delivery_complete_post"
	"battery-delivery/internal/handlers/rest/delivery_patch"
	"battery-delivery/internal/handlers/rest/delivery_post"
	"battery-delivery/internal/handlers/rest/delivery_start_post"
	"battery-delivery/internal/handlers/rest/delivery_summary_get"
	"battery-delivery/internal/handlers/rest/report_get"
	"battery-delivery/internal/handlers/rest/users_get"
	"battery-delivery/internal/handlers/tasks/cache_refresh"
	"battery-delivery/internal/pkg/changefeed"
	"battery-delivery/internal/pkg/config"
	"battery-delivery/internal/pkg/factory/timestamp"
	"battery-delivery/internal/pkg/notify"
	channelRepo "battery-delivery/internal/repository/channel"
	deliveryRepo "battery-delivery/internal/repository/delivery"
	userRepo "battery-delivery/internal/repository/user"
	channelService "battery-delivery/internal/service/channel"
	deliveryService "battery-delivery/internal/service/delivery"
	reportService "battery-delivery/internal/service/report"
	userService "battery-delivery/internal/service/user"
	"battery-delivery/pkg/background"
	"battery-delivery/pkg/logger"
	"battery-delivery/pkg/querier"
	"battery-delivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceChannel    ServiceChannel
	ServiceUser       ServiceUser
	ServiceReport     ServiceReport
	ChangeFeed        *changefeed.Hub
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	deliveries_get.Service
	delivery_post.Service
	delivery_patch.Service
	delivery_start_post.Service
	delivery_complete_post.Service
	delivery_summary_get.Service
}

type ServiceChannel interface {
	channels_get.Service
	channel_post.Service
	channel_patch.Service
	channel_status_post.Service
	channel_delete.Service
}

type ServiceUser interface {
	users_get.Service
}

type ServiceReport interface {
	report_get.Service
}

// ChangePublisher Kafka producer или changefeed.NopPublisher, если изменения
// доставляет триггер postgres.
type ChangePublisher interface {
	PublishChange(ctx context.Context, table string) error
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTimeFactory(cfg *config.Config) (*timestamp.Factory, error) {
	location, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("report timezone: %w", err)
	}
	return timestamp.New(location), nil
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideChannelRepository(querier *querier.Querier) *channelRepo.Repository {
	return channelRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceDelivery(
	log logger.Logger,
	repository *deliveryRepo.Repository,
	publisher ChangePublisher,
	timeFactory *timestamp.Factory,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		notify.New(log, "deliveries"),
		publisher,
		timeFactory,
	)
}

func provideServiceChannel(
	log logger.Logger,
	repository *channelRepo.Repository,
	publisher ChangePublisher,
	txManager *tx.Manager,
) *channelService.Channel {
	return channelService.New(
		repository,
		notify.New(log, "channels"),
		publisher,
		txManager,
	)
}

func provideServiceUser(log logger.Logger, repository *userRepo.Repository) *userService.User {
	return userService.New(repository, notify.New(log, "users"))
}

func provideServiceReport(deliveries *deliveryService.Delivery, timeFactory *timestamp.Factory) *reportService.Report {
	return reportService.New(deliveries, timeFactory)
}

// provideChangeFeedHub каждая таблица перезагружает ровно один кэш.
// Отчет считается по кэшу доставок и отдельной подписки не требует.
func provideChangeFeedHub(
	log logger.Logger,
	cfg *config.Config,
	deliveries *deliveryService.Delivery,
	channels *channelService.Channel,
	users *userService.User,
) *changefeed.Hub {
	hub := changefeed.NewHub(log, cfg.ChangeFeed.ReloadTimeout)
	hub.Subscribe(entities.TableDeliveries, "deliveries", deliveries)
	hub.Subscribe(entities.TableChannels, "channels", channels)
	hub.Subscribe(entities.TableUsers, "users", users)
	return hub
}

func provideCacheRefreshTasks(
	log logger.Logger,
	cfg *config.Config,
	deliveries *deliveryService.Delivery,
	channels *channelService.Channel,
	users *userService.User,
) []background.Task {
	interval := cfg.Tasks.CacheRefreshInterval
	return []background.Task{
		cache_refresh.NewCacheRefresh(log, "deliveries", deliveries, interval),
		cache_refresh.NewCacheRefresh(log, "channels", channels, interval),
		cache_refresh.NewCacheRefresh(log, "users", users, interval),
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
