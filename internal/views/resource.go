package views

import (
	"context"
	"errors"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/events"
	"storage-equipment/pkg/apiclient"
)

var (
	// ErrActionDisabled — действие недоступно для записи в её текущем состоянии.
	ErrActionDisabled = errors.New("действие недоступно для этой записи")
	ErrNotConfirmed   = errors.New("действие не подтверждено")
	ErrUnknownRecord  = errors.New("записи нет в списке")
	ErrBadTransition  = errors.New("недопустимый переход состояния")
)

type EquipmentAPI interface {
	ListEquipment(ctx context.Context) ([]dto.EquipmentDTO, error)
	GetEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type OrderAPI interface {
	ListOrders(ctx context.Context) ([]dto.OrderDTO, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderDTO, error)
	CreateOrder(ctx context.Context, payload dto.OrderPayload) (*dto.OrderDTO, error)
	PatchOrder(ctx context.Context, id string, payload dto.OrderPayload) (*dto.OrderDTO, error)
	CancelOrder(ctx context.Context, id string) error
}

// Texts — сообщения для пользователя. *Failed дополняется текстом ошибки сервера,
// *Fallback показывается, когда сервер не ответил.
type Texts struct {
	LoadFailed     string
	LoadFallback   string
	DetailFailed   string
	DetailFallback string
	DeleteFailed   string
	DeleteFallback string
	SaveFailed     string
	ConfirmDelete  string
}

// Resource описывает, как представления работают с записями одного вида.
type Resource[T any] struct {
	Kind      Kind
	List      func(ctx context.Context) ([]T, error)
	Get       func(ctx context.Context, id string) (*T, error)
	Delete    func(ctx context.Context, id string) error
	ID        func(T) string
	CanDelete func(T) bool
	CanEdit   func(T) bool
	Texts     Texts
}

func EquipmentResource(api EquipmentAPI) Resource[dto.EquipmentDTO] {
	return Resource[dto.EquipmentDTO]{
		Kind:      KindEquipment,
		List:      api.ListEquipment,
		Get:       api.GetEquipment,
		Delete:    api.DeleteEquipment,
		ID:        func(e dto.EquipmentDTO) string { return e.ID },
		CanDelete: func(dto.EquipmentDTO) bool { return true },
		CanEdit:   func(dto.EquipmentDTO) bool { return true },
		Texts: Texts{
			LoadFailed:     "Failed to load equipment",
			LoadFallback:   "Failed to load equipment",
			DetailFailed:   "Failed to load equipment details",
			DetailFallback: "Failed to load equipment details",
			DeleteFailed:   "Failed to delete equipment",
			DeleteFallback: "Failed to delete equipment",
			SaveFailed:     "Failed to save equipment",
			ConfirmDelete:  "Are you sure you want to delete this equipment?",
		},
	}
}

// OrderResource: удалять (отменять) и править можно только заказ в статусе pending.
func OrderResource(api OrderAPI) Resource[dto.OrderDTO] {
	return Resource[dto.OrderDTO]{
		Kind:      KindOrder,
		List:      api.ListOrders,
		Get:       api.GetOrder,
		Delete:    api.CancelOrder,
		ID:        func(o dto.OrderDTO) string { return o.ID },
		CanDelete: func(o dto.OrderDTO) bool { return o.Status.Mutable() },
		CanEdit:   func(o dto.OrderDTO) bool { return o.Status.Mutable() },
		Texts: Texts{
			LoadFailed:     "Failed to load orders",
			LoadFallback:   "Failed to load orders. Please check if the backend server is running.",
			DetailFailed:   "Failed to load order details",
			DetailFallback: "Failed to load order details",
			DeleteFailed:   "Failed to cancel order",
			DeleteFallback: "Failed to cancel order",
			SaveFailed:     "Failed to save order",
			ConfirmDelete:  "Are you sure you want to cancel this order?",
		},
	}
}

// failureText: «<prefix>: <сообщение сервера>» для ответа с ошибкой, fallback для сбоя сети.
func failureText(prefix, fallback string, err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return prefix + ": " + apiErr.Message
	}
	return fallback
}

// Confirmer запрашивает у пользователя подтверждение разрушительного действия.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Confirmed — подтверждение уже получено (например, отдельной страницей).
var Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })

func aggregate(k Kind) events.Aggregate {
	return events.Aggregate(k)
}
