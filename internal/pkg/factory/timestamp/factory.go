package timestamp

import (
	"time"

	"battery-delivery/internal/entities"
)

// Factory выдает время для записей доставок. Время в UTC с точностью до микросекунд,
// как его хранит timestamptz, чтобы сравнение с прочитанными из БД значениями было точным.
type Factory struct {
	location *time.Location
}

// New location используется для границ периодов отчета ("сегодня" по местному времени магазина).
func New(location *time.Location) *Factory {
	if location == nil {
		location = time.UTC
	}
	return &Factory{
		location: location,
	}
}

func (f *Factory) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// PeriodStart начало периода отчета относительно now. Для PeriodAll возвращает nil.
func (f *Factory) PeriodStart(period entities.ReportPeriod, now time.Time) *time.Time {
	local := now.In(f.location)
	startOfDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, f.location)

	var start time.Time
	switch period {
	case entities.PeriodToday:
		start = startOfDay
	case entities.PeriodWeek:
		start = startOfDay.AddDate(0, 0, -7)
	case entities.PeriodMonth:
		start = startOfDay.AddDate(0, -1, 0)
	default:
		return nil
	}

	start = start.UTC()
	return &start
}
