// Package converters переводит сущности в DTO REST API и обратно.
package converters

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"battery-delivery/internal/entities"
	"battery-delivery/internal/generated/dto"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var ErrInvalidField = errors.New("invalid field value")

func DeliveryToDTO(d entities.Delivery) dto.Delivery {
	res := dto.Delivery{
		ID:            d.ID,
		Customer:      d.Customer,
		Phone:         d.Phone,
		Address:       d.Address,
		Number:        d.Number,
		Reference:     d.Reference,
		Battery:       d.Battery,
		Value:         d.Value,
		PaymentMethod: d.PaymentMethod.String(),
		DeliveryTime:  d.DeliveryTime,
		Urgent:        d.Urgent,
		Courier:       d.Courier,
		Seller:        d.Seller,
		Channel:       d.Channel,
		Status:        dto.DeliveryStatus(d.Status),
		OrderedAt:     d.OrderedAt,
		StartedAt:     d.StartedAt,
		ArrivedAt:     d.ArrivedAt,
		Location:      d.Location,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}

	if d.Vehicle != nil {
		vehicle := d.Vehicle.String()
		res.Vehicle = &vehicle
	}
	if d.DeliveryDate != nil {
		date := d.DeliveryDate.Format(dateLayout)
		res.DeliveryDate = &date
	}
	return res
}

func DeliveriesToDTO(deliveries []entities.Delivery) []dto.Delivery {
	res := make([]dto.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		res = append(res, DeliveryToDTO(d))
	}
	return res
}

func DeliveryCreateFromDTO(req dto.DeliveryCreate) (entities.DeliveryCreate, error) {
	create := entities.DeliveryCreate{
		Customer:     req.Customer,
		Phone:        req.Phone,
		Address:      req.Address,
		Reference:    req.Reference,
		Battery:      req.Battery,
		Value:        req.Value,
		DeliveryTime: req.DeliveryTime,
		Seller:       req.Seller,
		Channel:      req.Channel,
	}

	// форма продавца шлет пустую строку, если способ оплаты не выбран
	if req.PaymentMethod != nil {
		create.PaymentMethod = entities.PaymentMethod(strings.TrimSpace(*req.PaymentMethod))
	}
	if req.Number != nil {
		create.Number = *req.Number
	}
	if req.Urgent != nil {
		create.Urgent = *req.Urgent
	}
	if req.OrderedAt != nil {
		create.OrderedAt = *req.OrderedAt
	}

	create.Vehicle = parseVehicle(req.Vehicle)

	date, err := parseDate(req.DeliveryDate)
	if err != nil {
		return entities.DeliveryCreate{}, err
	}
	create.DeliveryDate = date

	return create, nil
}

func DeliveryModifyFromDTO(req dto.DeliveryUpdate) (entities.DeliveryModify, error) {
	modify := entities.DeliveryModify{
		Customer:     req.Customer,
		Phone:        req.Phone,
		Address:      req.Address,
		Number:       req.Number,
		Reference:    req.Reference,
		Battery:      req.Battery,
		Value:        req.Value,
		DeliveryTime: req.DeliveryTime,
		Urgent:       req.Urgent,
		Courier:      req.Courier,
		Seller:       req.Seller,
		Channel:      req.Channel,
		Location:     req.Location,
	}

	if req.PaymentMethod != nil {
		method := entities.PaymentMethod(strings.TrimSpace(*req.PaymentMethod))
		modify.PaymentMethod = &method
	}

	if req.Status != nil {
		status := entities.DeliveryStatus(*req.Status)
		if !status.IsValid() {
			return entities.DeliveryModify{}, fmt.Errorf("%w: status %q", ErrInvalidField, *req.Status)
		}
		modify.Status = &status
	}

	if req.DeliveryTime != nil {
		if _, err := time.Parse(timeLayout, *req.DeliveryTime); err != nil {
			return entities.DeliveryModify{}, fmt.Errorf("%w: delivery_time %q", ErrInvalidField, *req.DeliveryTime)
		}
	}

	modify.Vehicle = parseVehicle(req.Vehicle)

	date, err := parseDate(req.DeliveryDate)
	if err != nil {
		return entities.DeliveryModify{}, err
	}
	modify.DeliveryDate = date

	return modify, nil
}

func ChannelToDTO(c entities.Channel) dto.Channel {
	return dto.Channel{
		ID:        c.ID,
		Name:      c.Name,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ChannelsToDTO(channels []entities.Channel) []dto.Channel {
	res := make([]dto.Channel, 0, len(channels))
	for _, c := range channels {
		res = append(res, ChannelToDTO(c))
	}
	return res
}

func UsersToDTO(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for _, u := range users {
		res = append(res, dto.User{
			ID:        u.ID,
			Name:      u.Name,
			Role:      dto.UserRole(u.Role),
			CreatedAt: u.CreatedAt,
		})
	}
	return res
}

func ReportToDTO(r entities.Report) dto.Report {
	ranking := make([]dto.CourierRank, 0, len(r.CourierRanking))
	for _, rank := range r.CourierRanking {
		ranking = append(ranking, dto.CourierRank{
			Position:       rank.Position,
			Name:           rank.Name,
			AverageMinutes: float32(rank.AverageMinutes),
			Deliveries:     rank.Deliveries,
		})
	}

	return dto.Report{
		Period:         r.Period.String(),
		From:           r.From,
		Total:          r.Total,
		Pending:        r.Pending,
		InProgress:     r.InProgress,
		Completed:      r.Completed,
		Urgent:         r.Urgent,
		Revenue:        r.Revenue,
		CompletionRate: float32(r.CompletionRate),
		AverageMinutes: float32(r.AverageMinutes),
		FastestMinutes: float32(r.FastestMinutes),
		CourierRanking: ranking,
		GeneratedAt:    r.GeneratedAt,
	}
}

// parseVehicle неизвестный тип машины сохраняется как есть, сводка печатает его дословно.
func parseVehicle(raw *string) *entities.Vehicle {
	if raw == nil {
		return nil
	}

	vehicle := entities.Vehicle(strings.TrimSpace(*raw))
	return &vehicle
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}

	date, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: delivery_date %q", ErrInvalidField, *raw)
	}
	return &date, nil
}
