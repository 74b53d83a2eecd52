package user

import (
	"context"
	"fmt"
	"sync"

	"battery-delivery/internal/entities"
)

// User только чтение таблицы usuarios. Разбиение по ролям считается по кэшу.
type User struct {
	repository Repository
	notifier   Notifier

	mu    sync.RWMutex
	cache []entities.User
}

func New(repository Repository, notifier Notifier) *User {
	return &User{
		repository: repository,
		notifier:   notifier,
		cache:      []entities.User{},
	}
}

func (u *User) List(ctx context.Context) ([]entities.User, error) {
	users, err := u.repository.List(ctx)
	if err != nil {
		u.notifier.Notify(ctx, entities.Notification{
			Level:   entities.NotificationError,
			Title:   "❌ Erro",
			Message: "Não foi possível carregar os usuários.",
		})
		return nil, fmt.Errorf("list users: %w", err)
	}

	u.mu.Lock()
	u.cache = users
	u.mu.Unlock()

	result := make([]entities.User, len(users))
	copy(result, users)
	return result, nil
}

func (u *User) Reload(ctx context.Context) error {
	_, err := u.List(ctx)
	return err
}

func (u *User) Cached() []entities.User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	result := make([]entities.User, len(u.cache))
	copy(result, u.cache)
	return result
}

func (u *User) Couriers() []entities.User {
	return u.byRole(entities.RoleCourier)
}

func (u *User) Sellers() []entities.User {
	return u.byRole(entities.RoleSeller)
}

// ByRole фильтр по произвольной роли, для admin в том числе.
func (u *User) ByRole(role entities.UserRole) ([]entities.User, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role.String())
	}
	return u.byRole(role), nil
}

func (u *User) byRole(role entities.UserRole) []entities.User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	result := make([]entities.User, 0, len(u.cache))
	for _, user := range u.cache {
		if user.Role == role {
			result = append(result, user)
		}
	}
	return result
}
