//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=table_changed_test
package table_changed

import (
	"context"

	"battery-delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// ChangeHandler получатель уведомлений об изменении таблицы (changefeed.Hub).
type ChangeHandler interface {
	Publish(ctx context.Context, table string)
}
