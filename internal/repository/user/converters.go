package user

import (
	"battery-delivery/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID,
		Name:      u.Name,
		Role:      entities.UserRole(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
