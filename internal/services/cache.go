package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"storage-equipment/internal/repositories"
	apperrors "storage-equipment/pkg/errors"
)

// readThrough отдаёт значение из кеша или вызывает load и кладёт результат в кеш.
// Сбои кеша только логируются: источник правды — БД.
func readThrough[T any](ctx context.Context, cache repositories.CacheRepositoryInterface, ttl time.Duration,
	logger *zap.Logger, key string, load func() (T, error)) (T, error) {

	raw, err := cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
		logger.Warn("битое значение в кеше, читаем из БД", zap.String("key", key))
	case !errors.Is(err, apperrors.ErrCacheMiss):
		logger.Warn("кеш недоступен", zap.String("key", key), zap.Error(err))
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if encoded, jsonErr := json.Marshal(value); jsonErr == nil {
		if setErr := cache.Set(ctx, key, string(encoded), ttl); setErr != nil {
			logger.Warn("не удалось записать в кеш", zap.String("key", key), zap.Error(setErr))
		}
	}
	return value, nil
}

func invalidate(ctx context.Context, cache repositories.CacheRepositoryInterface, logger *zap.Logger, keys ...string) {
	if err := cache.Del(ctx, keys...); err != nil {
		logger.Warn("не удалось сбросить кеш", zap.Strings("keys", keys), zap.Error(err))
	}
}
