package report

import (
	"fmt"
	"math"
	"sort"

	"battery-delivery/internal/entities"

	"github.com/shopspring/decimal"
)

const rankingSize = 5

// Report считает показатели панели администратора по кэшу доставок.
type Report struct {
	deliveries  DeliverySource
	timeFactory TimeFactory
}

func New(deliveries DeliverySource, timeFactory TimeFactory) *Report {
	return &Report{
		deliveries:  deliveries,
		timeFactory: timeFactory,
	}
}

func (r *Report) Build(period entities.ReportPeriod) (*entities.Report, error) {
	if period == "" {
		period = entities.PeriodAll
	}
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period.String())
	}

	now := r.timeFactory.Now()
	from := r.timeFactory.PeriodStart(period, now)

	report := &entities.Report{
		Period:         period,
		From:           from,
		Revenue:        decimal.Zero,
		CourierRanking: []entities.CourierRank{},
		GeneratedAt:    now,
	}

	var (
		durations []float64
		byCourier = make(map[string][]float64)
	)

	for _, d := range r.deliveries.Cached(entities.DeliveryFilter{}) {
		if from != nil && d.CreatedAt.Before(*from) {
			continue
		}

		report.Total++
		switch d.Status {
		case entities.DeliveryPending:
			report.Pending++
		case entities.DeliveryInProgress:
			report.InProgress++
		case entities.DeliveryCompleted:
			report.Completed++
		}
		if d.Urgent {
			report.Urgent++
		}
		if d.Value != nil {
			report.Revenue = report.Revenue.Add(*d.Value)
		}

		minutes, ok := deliveryMinutes(d)
		if !ok {
			continue
		}
		durations = append(durations, minutes)
		if d.Courier != nil && *d.Courier != "" {
			byCourier[*d.Courier] = append(byCourier[*d.Courier], minutes)
		}
	}

	if report.Total > 0 {
		report.CompletionRate = math.Round(float64(report.Completed) / float64(report.Total) * 100)
	}
	if len(durations) > 0 {
		report.AverageMinutes = math.Round(mean(durations))
		report.FastestMinutes = math.Round(minimum(durations))
	}
	report.CourierRanking = ranking(byCourier)

	return report, nil
}

// deliveryMinutes время в пути от начала до прибытия, только для завершенных.
func deliveryMinutes(d entities.Delivery) (float64, bool) {
	if d.Status != entities.DeliveryCompleted || d.StartedAt == nil || d.ArrivedAt == nil {
		return 0, false
	}
	if d.ArrivedAt.Before(*d.StartedAt) {
		return 0, false
	}
	return d.ArrivedAt.Sub(*d.StartedAt).Minutes(), true
}

// ranking лучшие курьеры по среднему времени. При равенстве выше тот, у кого больше доставок.
func ranking(byCourier map[string][]float64) []entities.CourierRank {
	ranks := make([]entities.CourierRank, 0, len(byCourier))
	for name, minutes := range byCourier {
		ranks = append(ranks, entities.CourierRank{
			Name:           name,
			AverageMinutes: math.Round(mean(minutes)),
			Deliveries:     len(minutes),
		})
	}

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].AverageMinutes != ranks[j].AverageMinutes {
			return ranks[i].AverageMinutes < ranks[j].AverageMinutes
		}
		if ranks[i].Deliveries != ranks[j].Deliveries {
			return ranks[i].Deliveries > ranks[j].Deliveries
		}
		return ranks[i].Name < ranks[j].Name
	})

	if len(ranks) > rankingSize {
		ranks = ranks[:rankingSize]
	}
	for i := range ranks {
		ranks[i].Position = i + 1
	}
	return ranks
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minimum(values []float64) float64 {
	result := values[0]
	for _, v := range values[1:] {
		result = min(result, v)
	}
	return result
}
