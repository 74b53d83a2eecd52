package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportPeriod string

const (
	PeriodToday ReportPeriod = "today"
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
	PeriodAll   ReportPeriod = "all"
)

func (p ReportPeriod) String() string {
	return string(p)
}

func (p ReportPeriod) IsValid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return true
	default:
		return false
	}
}

type Report struct {
	Period         ReportPeriod
	From           *time.Time
	Total          int
	Pending        int
	InProgress     int
	Completed      int
	Urgent         int
	Revenue        decimal.Decimal
	CompletionRate float64
	AverageMinutes float64
	FastestMinutes float64
	CourierRanking []CourierRank
	GeneratedAt    time.Time
}

type CourierRank struct {
	Position       int
	Name           string
	AverageMinutes float64
	Deliveries     int
}
