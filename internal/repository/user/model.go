package user

import (
	"time"

	"github.com/google/uuid"
)

type UserDB struct {
	ID        uuid.UUID
	Name      string
	Role      string
	CreatedAt time.Time
}
