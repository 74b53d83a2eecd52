package channel

import (
	"time"

	"github.com/google/uuid"
)

type ChannelDB struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChannelModifyDB struct {
	Name   *string
	Active *bool
}
