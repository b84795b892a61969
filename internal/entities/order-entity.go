package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID                  uuid.UUID
	RequestedBy         string
	RequestorDepartment null.String
	Status              string
	Notes               null.String
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Items []OrderItem `db:"-"`
}

// OrderItem — позиция заказа. Сумма позиции не хранится, она всегда quantity × unit_price.
type OrderItem struct {
	ID            int64
	OrderID       uuid.UUID
	Position      int
	EquipmentName string
	Quantity      int
	UnitPrice     decimal.Decimal
}

func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
