package delivery

import (
	"battery-delivery/internal/entities"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	delivery := &entities.Delivery{
		ID:            d.ID,
		Customer:      d.Customer,
		Phone:         d.Phone,
		Address:       d.Address,
		Number:        d.Number,
		Reference:     d.Reference,
		Battery:       d.Battery,
		Value:         numericToDecimal(d.Value),
		PaymentMethod: entities.PaymentMethod(d.PaymentMethod),
		DeliveryDate:  d.DeliveryDate,
		DeliveryTime:  d.DeliveryTime,
		Urgent:        d.Urgent,
		Courier:       d.Courier,
		Seller:        d.Seller,
		Channel:       d.Channel,
		Status:        entities.DeliveryStatus(d.Status),
		OrderedAt:     d.OrderedAt,
		StartedAt:     d.StartedAt,
		ArrivedAt:     d.ArrivedAt,
		Location:      d.Location,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.Vehicle != nil {
		vehicle := entities.Vehicle(*d.Vehicle)
		delivery.Vehicle = &vehicle
	}

	return delivery
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i := range deliveriesDB {
		result[i] = *ToDomain(&deliveriesDB[i])
	}
	return result
}

// FromDomainModify колонки, которые нужно обновить. Порядок ключей не важен, squirrel сортирует их сам.
func FromDomainModify(m *entities.DeliveryModify) map[string]any {
	columns := make(map[string]any)
	if m == nil {
		return columns
	}

	if m.Customer != nil {
		columns["cliente"] = *m.Customer
	}
	if m.Phone != nil {
		columns["telefone"] = *m.Phone
	}
	if m.Address != nil {
		columns["endereco"] = *m.Address
	}
	if m.Number != nil {
		columns["numero"] = *m.Number
	}
	if m.Reference != nil {
		columns["referencia"] = *m.Reference
	}
	if m.Battery != nil {
		columns["bateria"] = *m.Battery
	}
	if m.Value != nil {
		columns["valor"] = decimalToNumeric(m.Value)
	}
	if m.PaymentMethod != nil {
		columns["forma_pagamento"] = m.PaymentMethod.String()
	}
	if m.Vehicle != nil {
		columns["veiculo"] = m.Vehicle.String()
	}
	if m.DeliveryDate != nil {
		columns["data_entrega"] = *m.DeliveryDate
	}
	if m.DeliveryTime != nil {
		columns["horario_entrega"] = *m.DeliveryTime
	}
	if m.Urgent != nil {
		columns["urgente"] = *m.Urgent
	}
	if m.Courier != nil {
		columns["entregador"] = *m.Courier
	}
	if m.Seller != nil {
		columns["vendedor"] = *m.Seller
	}
	if m.Channel != nil {
		columns["canal"] = *m.Channel
	}
	if m.Status != nil {
		columns["status"] = m.Status.String()
	}
	if m.StartedAt != nil {
		columns["horario_inicio"] = *m.StartedAt
	}
	if m.ArrivedAt != nil {
		columns["horario_chegada"] = *m.ArrivedAt
	}
	if m.Location != nil {
		columns["localizacao_entrega"] = *m.Location
	}

	return columns
}

func vehicleToDB(v *entities.Vehicle) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}

func numericToDecimal(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return nil
	}
	d := decimal.NewFromBigInt(n.Int, n.Exp)
	return &d
}

func decimalToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}
