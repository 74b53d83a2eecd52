package delivery

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// DeliveryDB строка таблицы entregas.
type DeliveryDB struct {
	ID            uuid.UUID
	Customer      string
	Phone         string
	Address       string
	Number        string
	Reference     *string
	Battery       string
	Value         pgtype.Numeric
	PaymentMethod string
	Vehicle       *string
	DeliveryDate  *time.Time
	DeliveryTime  *string
	Urgent        bool
	Courier       *string
	Seller        *string
	Channel       *string
	Status        string
	OrderedAt     time.Time
	StartedAt     *time.Time
	ArrivedAt     *time.Time
	Location      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (d *DeliveryDB) scanDest() []any {
	return []any{
		&d.ID,
		&d.Customer,
		&d.Phone,
		&d.Address,
		&d.Number,
		&d.Reference,
		&d.Battery,
		&d.Value,
		&d.PaymentMethod,
		&d.Vehicle,
		&d.DeliveryDate,
		&d.DeliveryTime,
		&d.Urgent,
		&d.Courier,
		&d.Seller,
		&d.Channel,
		&d.Status,
		&d.OrderedAt,
		&d.StartedAt,
		&d.ArrivedAt,
		&d.Location,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}

// порядок совпадает со scanDest
var deliveryColumns = []string{
	"id",
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
	"entregador",
	"vendedor",
	"canal",
	"status",
	"horario_pedido",
	"horario_inicio",
	"horario_chegada",
	"localizacao_entrega",
	"created_at",
	"updated_at",
}
