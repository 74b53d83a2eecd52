package user

import (
	"context"
	"fmt"

	"battery-delivery/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) List(ctx context.Context) ([]entities.User, error) {
	query := `
	SELECT id, nome, tipo, created_at
	FROM usuarios
	ORDER BY nome`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Role,
			&userModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(userModels), nil
}
