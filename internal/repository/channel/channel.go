package channel

import (
	"context"
	"errors"
	"fmt"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/repository"
	"battery-delivery/internal/service/channel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returning = "RETURNING id, nome_canal, canal_ativo, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) List(ctx context.Context) ([]entities.Channel, error) {
	return r.list(ctx, nil)
}

func (r *Repository) ListActive(ctx context.Context) ([]entities.Channel, error) {
	return r.list(ctx, sq.Eq{"canal_ativo": true})
}

func (r *Repository) list(ctx context.Context, where sq.Sqlizer) ([]entities.Channel, error) {
	builder := qb.
		Select("id", "nome_canal", "canal_ativo", "created_at", "updated_at").
		From("canais").
		OrderBy("nome_canal")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected channel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected channel repository list error: %w", err)
	}
	defer rows.Close()

	channelModels := make([]ChannelDB, 0, 8)
	for rows.Next() {
		var channelModel ChannelDB
		err := rows.Scan(
			&channelModel.ID,
			&channelModel.Name,
			&channelModel.Active,
			&channelModel.CreatedAt,
			&channelModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected channel repository list error: %w", err)
		}
		channelModels = append(channelModels, channelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected channel repository list error: %w", err)
	}

	return ToDomainList(channelModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Channel, error) {
	query := `SELECT id, nome_canal, canal_ativo, created_at, updated_at
		FROM canais
		WHERE id = $1`

	var channelModel ChannelDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&channelModel.ID,
			&channelModel.Name,
			&channelModel.Active,
			&channelModel.CreatedAt,
			&channelModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, channel.ErrChannelNotFound
		}
		return nil, fmt.Errorf("unexpected channel repository getbyid error: %w", err)
	}

	return ToDomain(&channelModel), nil
}

// ExistsByName проверяет имя без учета регистра. excludeID исключает сам переименовываемый канал.
func (r *Repository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	where := sq.And{sq.Expr("lower(nome_canal) = lower(?)", name)}
	if excludeID != nil {
		where = append(where, sq.NotEq{"id": *excludeID})
	}

	query, args, err := qb.
		Select("1").
		Prefix("SELECT EXISTS (").
		From("canais").
		Where(where).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected channel repository exists error: %w", err)
	}

	var exists bool
	err = r.querier.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected channel repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) Create(ctx context.Context, name string, active bool) (*entities.Channel, error) {
	query := `INSERT INTO canais (nome_canal, canal_ativo)
		VALUES ($1, $2)
		` + returning

	var channelModel ChannelDB
	err := r.querier.QueryRow(ctx, query, name, active).
		Scan(
			&channelModel.ID,
			&channelModel.Name,
			&channelModel.Active,
			&channelModel.CreatedAt,
			&channelModel.UpdatedAt,
		)
	if err != nil {
		if repository.IsUniqueViolation(err, repository.ChannelNameIndex) {
			return nil, channel.ErrDuplicateName
		}
		return nil, fmt.Errorf("unexpected channel repository create error: %w", err)
	}

	return ToDomain(&channelModel), nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, channelModify entities.ChannelModify) (*entities.Channel, error) {
	channelModifyModel := FromDomainModify(&channelModify)

	builder := qb.
		Update("canais")

	// опционные поля
	if channelModifyModel.Name != nil {
		builder = builder.Set("nome_canal", channelModifyModel.Name)
	}
	if channelModifyModel.Active != nil {
		builder = builder.Set("canal_ativo", channelModifyModel.Active)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected channel repository update error: %w", err)
	}

	var channelModel ChannelDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&channelModel.ID,
			&channelModel.Name,
			&channelModel.Active,
			&channelModel.CreatedAt,
			&channelModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, channel.ErrChannelNotFound
		}

		if repository.IsUniqueViolation(err, repository.ChannelNameIndex) {
			return nil, channel.ErrDuplicateName
		}

		return nil, fmt.Errorf("unexpected channel repository update error: %w", err)
	}

	return ToDomain(&channelModel), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM canais WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected channel repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return channel.ErrChannelNotFound
	}

	return nil
}
