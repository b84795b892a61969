package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"storage-equipment/internal/entities"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/types"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
	gets int
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string]string{}} }

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value.(string)
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return "", apperrors.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type memoryEquipmentRepo struct {
	rows  []entities.Equipment
	lists int
}

func (r *memoryEquipmentRepo) GetEquipment(_ context.Context, _ types.Filter) ([]entities.Equipment, error) {
	r.lists++
	return append([]entities.Equipment(nil), r.rows...), nil
}

func (r *memoryEquipmentRepo) FindEquipment(_ context.Context, id uuid.UUID) (*entities.Equipment, error) {
	for _, e := range r.rows {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryEquipmentRepo) CreateEquipment(_ context.Context, e entities.Equipment) (*entities.Equipment, error) {
	e.CreatedAt, e.UpdatedAt = time.Now(), time.Now()
	r.rows = append(r.rows, e)
	return &e, nil
}

func (r *memoryEquipmentRepo) UpdateEquipment(_ context.Context, e entities.Equipment) (*entities.Equipment, error) {
	for i := range r.rows {
		if r.rows[i].ID == e.ID {
			r.rows[i] = e
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryEquipmentRepo) DeleteEquipment(_ context.Context, id uuid.UUID) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type memoryOrderRepo struct {
	rows    []entities.Order
	deleted []uuid.UUID
}

func (r *memoryOrderRepo) GetOrders(_ context.Context, _ types.Filter) ([]entities.Order, error) {
	return append([]entities.Order(nil), r.rows...), nil
}

func (r *memoryOrderRepo) FindOrder(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	for _, o := range r.rows {
		if o.ID == id {
			o := o
			o.Items = append([]entities.OrderItem(nil), o.Items...)
			return &o, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryOrderRepo) CreateOrder(_ context.Context, o entities.Order) (*entities.Order, error) {
	r.rows = append(r.rows, o)
	return &o, nil
}

func (r *memoryOrderRepo) UpdateOrder(_ context.Context, o entities.Order, replaceItems bool) (*entities.Order, error) {
	for i := range r.rows {
		if r.rows[i].ID == o.ID {
			if !replaceItems {
				o.Items = r.rows[i].Items
			}
			r.rows[i] = o
			return &o, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryOrderRepo) DeleteOrder(_ context.Context, id uuid.UUID) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
