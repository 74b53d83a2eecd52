package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/service/delivery"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const tableName = "entregas"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var returningColumns = "RETURNING " + strings.Join(deliveryColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) List(ctx context.Context) ([]entities.Delivery, error) {
	query, args, err := qb.
		Select(deliveryColumns...).
		From(tableName).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 32)
	for rows.Next() {
		var deliveryModel DeliveryDB
		err := rows.Scan(deliveryModel.scanDest()...)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		deliveryModels = append(deliveryModels, deliveryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Delivery, error) {
	query, args, err := qb.
		Select(deliveryColumns...).
		From(tableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	var deliveryModel DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(deliveryModel.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

// Create вставляет новую доставку. Статус всегда pendente, entregador и время начала/прибытия пустые.
func (r *Repository) Create(ctx context.Context, create entities.DeliveryCreate) (*entities.Delivery, error) {
	query, args, err := qb.
		Insert(tableName).
		Columns(
			"cliente",
			"telefone",
			"endereco",
			"numero",
			"referencia",
			"bateria",
			"valor",
			"forma_pagamento",
			"veiculo",
			"data_entrega",
			"horario_entrega",
			"urgente",
			"vendedor",
			"canal",
			"status",
			"horario_pedido",
		).
		Values(
			create.Customer,
			create.Phone,
			create.Address,
			create.Number,
			create.Reference,
			create.Battery,
			decimalToNumeric(create.Value),
			create.PaymentMethod.String(),
			vehicleToDB(create.Vehicle),
			create.DeliveryDate,
			create.DeliveryTime,
			create.Urgent,
			create.Seller,
			create.Channel,
			entities.DeliveryPending.String(),
			create.OrderedAt,
		).
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	var deliveryModel DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(deliveryModel.scanDest()...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

// Update применяет частичное обновление. Если меняется статус, строка обновляется только
// из разрешенного предыдущего статуса: из двух курьеров, взявших одну доставку, выигрывает один.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, modify entities.DeliveryModify) (*entities.Delivery, error) {
	columns := FromDomainModify(&modify)
	if len(columns) == 0 {
		return nil, delivery.ErrEmptyUpdate
	}

	builder := qb.
		Update(tableName).
		SetMap(columns).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if modify.Status != nil {
		builder = builder.Where(sq.Eq{"status": statusesToDB(modify.Status.Predecessors())})
	}

	query, args, err := builder.
		Suffix(returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryModel DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(deliveryModel.scanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.explainNoRows(ctx, id, modify.Status)
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

// explainNoRows отличает отсутствующую доставку от запрещенного перехода статуса.
func (r *Repository) explainNoRows(ctx context.Context, id uuid.UUID, status *entities.DeliveryStatus) error {
	if status == nil {
		return delivery.ErrDeliveryNotFound
	}

	var current string
	err := r.querier.QueryRow(ctx, `SELECT status FROM entregas WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return fmt.Errorf("%w: %s -> %s", delivery.ErrInvalidTransition, current, status.String())
}

func statusesToDB(statuses []entities.DeliveryStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = s.String()
	}
	return result
}
