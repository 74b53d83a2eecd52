//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"time"

	"battery-delivery/internal/entities"
)

type DeliverySource interface {
	Cached(filter entities.DeliveryFilter) []entities.Delivery
}

type TimeFactory interface {
	Now() time.Time
	PeriodStart(period entities.ReportPeriod, now time.Time) *time.Time
}
