package entities

import (
	"time"

	"github.com/google/uuid"
)

type Channel struct {
	ID        uuid.UUID
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChannelModify struct {
	Name   *string
	Active *bool
}

func (m ChannelModify) IsEmpty() bool {
	return m.Name == nil && m.Active == nil
}
