package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/entities"
	"storage-equipment/internal/events"
	"storage-equipment/internal/repositories"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/eventbus"
	"storage-equipment/pkg/types"
)

const orderListKey = "orders:list"

func orderKey(id string) string { return "orders:" + id }

type OrderServiceInterface interface {
	GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderDTO, error)
	FindOrder(ctx context.Context, id string) (*dto.OrderDTO, error)
	CreateOrder(ctx context.Context, payload dto.OrderPayload) (*dto.OrderDTO, error)
	PatchOrder(ctx context.Context, id string, patch dto.OrderPatchPayload) (*dto.OrderDTO, error)
	DeleteOrder(ctx context.Context, id string) error
}

type OrderService struct {
	orderRepository repositories.OrderRepositoryInterface
	cache           repositories.CacheRepositoryInterface
	cacheTTL        time.Duration
	bus             *eventbus.Bus
	logger          *zap.Logger
}

func NewOrderService(
	orderRepository repositories.OrderRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	bus *eventbus.Bus,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepository: orderRepository,
		cache:           cache,
		cacheTTL:        cacheTTL,
		bus:             bus,
		logger:          logger,
	}
}

func (s *OrderService) GetOrders(ctx context.Context, filter types.Filter) ([]dto.OrderDTO, error) {
	load := func() ([]dto.OrderDTO, error) {
		list, err := s.orderRepository.GetOrders(ctx, filter)
		if err != nil {
			return nil, err
		}
		out := make([]dto.OrderDTO, 0, len(list))
		for _, o := range list {
			out = append(out, orderToDTO(o))
		}
		return out, nil
	}
	if !filter.IsZero() {
		return load()
	}
	return readThrough(ctx, s.cache, s.cacheTTL, s.logger, orderListKey, load)
}

func (s *OrderService) FindOrder(ctx context.Context, id string) (*dto.OrderDTO, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	rec, err := readThrough(ctx, s.cache, s.cacheTTL, s.logger, orderKey(parsed.String()), func() (dto.OrderDTO, error) {
		o, err := s.orderRepository.FindOrder(ctx, parsed)
		if err != nil {
			return dto.OrderDTO{}, err
		}
		return orderToDTO(*o), nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, payload dto.OrderPayload) (*dto.OrderDTO, error) {
	if strings.TrimSpace(payload.RequestedBy) == "" {
		return nil, apperrors.NewInvalidInputError("requestedBy is required")
	}
	items, err := itemsFromPayload(payload.Items)
	if err != nil {
		return nil, err
	}
	status := payload.Status
	if status == "" {
		status = dto.OrderPending
	}

	created, err := s.orderRepository.CreateOrder(ctx, entities.Order{
		ID:                  uuid.New(),
		RequestedBy:         strings.TrimSpace(payload.RequestedBy),
		RequestorDepartment: optionalString(payload.RequestorDepartment),
		Status:              string(status),
		Notes:               optionalString(payload.Notes),
		Items:               items,
	})
	if err != nil {
		s.logger.Error("Ошибка при создании заказа", zap.String("requestedBy", payload.RequestedBy), zap.Error(err))
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, orderListKey)
	s.bus.Publish(ctx, events.OrderChangedEvent{ID: created.ID.String(), Action: events.ActionCreated, Status: created.Status})

	out := orderToDTO(*created)
	return &out, nil
}

// PatchOrder меняет только присланные поля. Заказ, который уже не pending, не меняется.
func (s *OrderService) PatchOrder(ctx context.Context, id string, patch dto.OrderPatchPayload) (*dto.OrderDTO, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	current, err := s.orderRepository.FindOrder(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if !dto.OrderStatus(current.Status).Mutable() {
		return nil, apperrors.ErrOrderNotPending
	}

	if patch.RequestedBy != nil {
		if strings.TrimSpace(*patch.RequestedBy) == "" {
			return nil, apperrors.NewInvalidInputError("requestedBy is required")
		}
		current.RequestedBy = strings.TrimSpace(*patch.RequestedBy)
	}
	if patch.RequestorDepartment != nil {
		current.RequestorDepartment = optionalString(*patch.RequestorDepartment)
	}
	if patch.Status != nil {
		current.Status = string(*patch.Status)
	}
	if patch.Notes != nil {
		current.Notes = optionalString(*patch.Notes)
	}
	replaceItems := len(patch.Items) > 0
	if replaceItems {
		if current.Items, err = itemsFromPayload(patch.Items); err != nil {
			return nil, err
		}
	}

	updated, err := s.orderRepository.UpdateOrder(ctx, *current, replaceItems)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, orderListKey, orderKey(parsed.String()))
	s.bus.Publish(ctx, events.OrderChangedEvent{ID: parsed.String(), Action: events.ActionUpdated, Status: updated.Status})

	out := orderToDTO(*updated)
	return &out, nil
}

// DeleteOrder отменяет заказ удалением записи. Разрешено только для pending.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	current, err := s.orderRepository.FindOrder(ctx, parsed)
	if err != nil {
		return err
	}
	if !dto.OrderStatus(current.Status).Mutable() {
		return apperrors.ErrOrderNotPending
	}

	if err := s.orderRepository.DeleteOrder(ctx, parsed); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, orderListKey, orderKey(parsed.String()))
	s.bus.Publish(ctx, events.OrderChangedEvent{ID: parsed.String(), Action: events.ActionDeleted, Status: current.Status})
	return nil
}
