package repositories

import (
	"context"
	"time"

	apperrors "storage-equipment/pkg/errors"
)

// CacheRepositoryInterface — кеш строковых значений. Промах — apperrors.ErrCacheMiss.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
}

// NoopCacheRepository используется, когда Redis не настроен: всегда промах.
type NoopCacheRepository struct{}

func NewNoopCacheRepository() CacheRepositoryInterface { return NoopCacheRepository{} }

func (NoopCacheRepository) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopCacheRepository) Get(context.Context, string) (string, error) {
	return "", apperrors.ErrCacheMiss
}

func (NoopCacheRepository) Del(context.Context, ...string) error { return nil }
