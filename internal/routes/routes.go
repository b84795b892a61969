package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storage-equipment/internal/repositories"
	"storage-equipment/internal/services"
	"storage-equipment/pkg/config"
	"storage-equipment/pkg/eventbus"
)

// InitRouter собирает репозитории и сервисы и вешает маршруты на /api.
// redisClient может быть nil: тогда кеш отключён.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config, bus *eventbus.Bus, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	var cache repositories.CacheRepositoryInterface = repositories.NewNoopCacheRepository()
	if redisClient != nil {
		cache = repositories.NewRedisCacheRepository(redisClient)
	}

	// --- 1. РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	orderRepo := repositories.NewOrderRepository(dbConn, logger)

	// --- 2. СЕРВИСЫ ---
	equipmentService := services.NewEquipmentService(equipmentRepo, cache, cfg.Redis.CacheTTL, bus, logger)
	orderService := services.NewOrderService(orderRepo, cache, cfg.Redis.CacheTTL, bus, logger)

	// --- 3. РОУТЕРЫ ---
	runEquipmentRouter(api, equipmentService, logger)
	runOrderRouter(api, orderService, logger)

	logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
