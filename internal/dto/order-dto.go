package dto

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderDelivered, OrderCancelled}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Mutable — изменять и отменять можно только заказ в статусе pending.
func (s OrderStatus) Mutable() bool {
	return s == OrderPending
}

type OrderItemDTO struct {
	EquipmentName string `json:"equipmentName"`
	Quantity      int    `json:"quantity"`
	UnitPrice     Money  `json:"unitPrice"`
	TotalPrice    Money  `json:"totalPrice"`
}

// Normalized пересчитывает totalPrice из quantity и unitPrice.
// Пришедшему по сети totalPrice не доверяем.
func (i OrderItemDTO) Normalized() OrderItemDTO {
	i.TotalPrice = i.UnitPrice.Times(i.Quantity)
	return i
}

type OrderDTO struct {
	ID                  string         `json:"id"`
	RequestedBy         string         `json:"requestedBy"`
	RequestorDepartment string         `json:"requestorDepartment,omitempty"`
	Status              OrderStatus    `json:"status"`
	Notes               string         `json:"notes,omitempty"`
	CreatedAt           string         `json:"createdAt,omitempty"`
	UpdatedAt           string         `json:"updatedAt,omitempty"`
	Items               []OrderItemDTO `json:"items"`
}

// Normalized возвращает копию с пересчитанными позициями.
func (o OrderDTO) Normalized() OrderDTO {
	items := make([]OrderItemDTO, len(o.Items))
	for i, item := range o.Items {
		items[i] = item.Normalized()
	}
	o.Items = items
	return o
}

// Total — сумма totalPrice позиций в порядке списка.
func (o OrderDTO) Total() Money {
	total := Money{}
	for _, item := range o.Items {
		total = total.Plus(item.TotalPrice)
	}
	return total
}

type OrderItemPayload struct {
	EquipmentName string `json:"equipmentName" validate:"required"`
	Quantity      int    `json:"quantity"      validate:"gt=0"`
	UnitPrice     Money  `json:"unitPrice"`
	TotalPrice    Money  `json:"totalPrice"`
}

// OrderPayload — тело POST/PATCH заказа.
type OrderPayload struct {
	RequestedBy         string             `json:"requestedBy"                   validate:"required"`
	RequestorDepartment string             `json:"requestorDepartment,omitempty" validate:"omitempty,max=100"`
	Status              OrderStatus        `json:"status,omitempty"              validate:"omitempty,oneof=pending delivered cancelled"`
	Notes               string             `json:"notes,omitempty"               validate:"omitempty,max=1000"`
	Items               []OrderItemPayload `json:"items"                         validate:"required,min=1,dive"`
}

// OrderPatchPayload — тело PATCH: отсутствующие поля не меняются,
// непустой items заменяет позиции целиком.
type OrderPatchPayload struct {
	RequestedBy         *string            `json:"requestedBy,omitempty"         validate:"omitempty,min=1"`
	RequestorDepartment *string            `json:"requestorDepartment,omitempty" validate:"omitempty,max=100"`
	Status              *OrderStatus       `json:"status,omitempty"              validate:"omitempty,oneof=pending delivered cancelled"`
	Notes               *string            `json:"notes,omitempty"               validate:"omitempty,max=1000"`
	Items               []OrderItemPayload `json:"items,omitempty"               validate:"omitempty,min=1,dive"`
}
