package table_changed

import (
	"time"

	"battery-delivery/internal/entities"
)

type tableChangedEvent struct {
	Table      string    `json:"table"`
	OccurredAt time.Time `json:"occurred_at"`
}

func isKnownTable(table string) bool {
	switch table {
	case entities.TableDeliveries, entities.TableChannels, entities.TableUsers:
		return true
	default:
		return false
	}
}
