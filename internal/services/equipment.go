package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/events"
	"storage-equipment/internal/repositories"
	"storage-equipment/pkg/eventbus"
	"storage-equipment/pkg/types"
)

const equipmentListKey = "equipment:list"

func equipmentKey(id string) string { return "equipment:" + id }

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	cache               repositories.CacheRepositoryInterface
	cacheTTL            time.Duration
	bus                 *eventbus.Bus
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	bus *eventbus.Bus,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		cache:               cache,
		cacheTTL:            cacheTTL,
		bus:                 bus,
		logger:              logger,
	}
}

// GetEquipment кеширует только полный список без параметров.
func (s *EquipmentService) GetEquipment(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, error) {
	load := func() ([]dto.EquipmentDTO, error) {
		list, err := s.equipmentRepository.GetEquipment(ctx, filter)
		if err != nil {
			return nil, err
		}
		out := make([]dto.EquipmentDTO, 0, len(list))
		for _, e := range list {
			out = append(out, equipmentToDTO(e))
		}
		return out, nil
	}
	if !filter.IsZero() {
		return load()
	}
	return readThrough(ctx, s.cache, s.cacheTTL, s.logger, equipmentListKey, load)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	rec, err := readThrough(ctx, s.cache, s.cacheTTL, s.logger, equipmentKey(parsed.String()), func() (dto.EquipmentDTO, error) {
		e, err := s.equipmentRepository.FindEquipment(ctx, parsed)
		if err != nil {
			return dto.EquipmentDTO{}, err
		}
		return equipmentToDTO(*e), nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error) {
	e, err := equipmentFromPayload(uuid.New(), payload)
	if err != nil {
		return nil, err
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, e)
	if err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.String("serial", e.SerialNumber), zap.Error(err))
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, equipmentListKey)
	s.bus.Publish(ctx, events.EquipmentChangedEvent{ID: created.ID.String(), Action: events.ActionCreated})

	out := equipmentToDTO(*created)
	return &out, nil
}

// UpdateEquipment заменяет запись целиком (PUT); nextService пересчитывается.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.EquipmentPayload) (*dto.EquipmentDTO, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	e, err := equipmentFromPayload(parsed, payload)
	if err != nil {
		return nil, err
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, e)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, equipmentListKey, equipmentKey(parsed.String()))
	s.bus.Publish(ctx, events.EquipmentChangedEvent{ID: parsed.String(), Action: events.ActionUpdated})

	out := equipmentToDTO(*updated)
	return &out, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.equipmentRepository.DeleteEquipment(ctx, parsed); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, equipmentListKey, equipmentKey(parsed.String()))
	s.bus.Publish(ctx, events.EquipmentChangedEvent{ID: parsed.String(), Action: events.ActionDeleted})
	return nil
}
