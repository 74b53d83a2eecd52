package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Role      UserRole
	CreatedAt time.Time
}

type UserRole string

const (
	RoleSeller  UserRole = "vendedora"
	RoleCourier UserRole = "entregador"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSeller, RoleCourier, RoleAdmin:
		return true
	default:
		return false
	}
}
