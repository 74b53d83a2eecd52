package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Delivery struct {
	ID            uuid.UUID
	Customer      string
	Phone         string
	Address       string
	Number        string
	Reference     *string
	Battery       string
	Value         *decimal.Decimal
	PaymentMethod PaymentMethod
	Vehicle       *Vehicle
	DeliveryDate  *time.Time
	DeliveryTime  *string
	Urgent        bool
	Courier       *string
	Seller        *string
	Channel       *string
	Status        DeliveryStatus
	OrderedAt     time.Time
	StartedAt     *time.Time
	ArrivedAt     *time.Time
	Location      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pendente"
	DeliveryInProgress DeliveryStatus = "em_andamento"
	DeliveryCompleted  DeliveryStatus = "finalizada"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryInProgress, DeliveryCompleted:
		return true
	default:
		return false
	}
}

// Predecessors статусы, из которых разрешен переход в s.
// Жизненный цикл только вперед: pendente -> em_andamento -> finalizada.
func (s DeliveryStatus) Predecessors() []DeliveryStatus {
	switch s {
	case DeliveryInProgress:
		return []DeliveryStatus{DeliveryPending}
	case DeliveryCompleted:
		return []DeliveryStatus{DeliveryInProgress}
	default:
		return nil
	}
}

type PaymentMethod string

const (
	PaymentDebit  PaymentMethod = "debito"
	PaymentCredit PaymentMethod = "credito"
	PaymentPix    PaymentMethod = "pix"
	PaymentCash   PaymentMethod = "dinheiro"
)

func (p PaymentMethod) String() string {
	return string(p)
}

// Label подпись для сводки заказа. Неизвестные значения печатаются как есть.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentDebit:
		return "Débito"
	case PaymentCredit:
		return "Crédito"
	case PaymentPix:
		return "Pix"
	case PaymentCash:
		return "Dinheiro"
	default:
		return string(p)
	}
}

type Vehicle string

const (
	VehicleTruck1113 Vehicle = "caminhao-1113"
	VehicleTruck608  Vehicle = "caminhao-608"
	VehicleVan       Vehicle = "van"
	VehicleMotorbike Vehicle = "moto"
)

func (v Vehicle) String() string {
	return string(v)
}

func (v Vehicle) Label() string {
	switch v {
	case VehicleTruck1113:
		return "Caminhão 1113"
	case VehicleTruck608:
		return "Caminhão 608"
	case VehicleVan:
		return "Van"
	case VehicleMotorbike:
		return "Moto"
	default:
		return string(v)
	}
}

// DeliveryModify частичное обновление: nil поле не меняется.
type DeliveryModify struct {
	Customer      *string
	Phone         *string
	Address       *string
	Number        *string
	Reference     *string
	Battery       *string
	Value         *decimal.Decimal
	PaymentMethod *PaymentMethod
	Vehicle       *Vehicle
	DeliveryDate  *time.Time
	DeliveryTime  *string
	Urgent        *bool
	Courier       *string
	Seller        *string
	Channel       *string
	Status        *DeliveryStatus
	StartedAt     *time.Time
	ArrivedAt     *time.Time
	Location      *string
}

func (m DeliveryModify) IsEmpty() bool {
	return m == DeliveryModify{}
}

// DeliveryCreate поля формы продавца. Обязательность полей проверяется валидатором.
type DeliveryCreate struct {
	Customer      string `validate:"required,notblank"`
	Phone         string `validate:"required,notblank"`
	Address       string `validate:"required,notblank"`
	Number        string
	Reference     *string
	Battery       string `validate:"required,notblank"`
	Value         *decimal.Decimal
	PaymentMethod PaymentMethod
	Vehicle       *Vehicle
	DeliveryDate  *time.Time
	DeliveryTime  *string `validate:"omitempty,datetime=15:04"`
	Urgent        bool
	Seller        *string
	Channel       *string
	OrderedAt     time.Time
}

type DeliveryFilter struct {
	Status  *DeliveryStatus
	Courier *string
	Seller  *string
}

func (f DeliveryFilter) Match(d Delivery) bool {
	if f.Status != nil && d.Status != *f.Status {
		return false
	}
	if f.Courier != nil && (d.Courier == nil || *d.Courier != *f.Courier) {
		return false
	}
	if f.Seller != nil && (d.Seller == nil || *d.Seller != *f.Seller) {
		return false
	}
	return true
}
