package controllers

import (
	"net/http"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/services"
	"storage-equipment/pkg/api"
	"storage-equipment/pkg/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(service services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{
		orderService: service,
		logger:       logger,
	}
}

func (c *OrderController) GetOrders(ctx echo.Context) error {
	filter := types.ParseFilter(ctx.QueryParams())

	res, err := c.orderService.GetOrders(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetOrders: ошибка при получении списка заказов", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.SuccessList(ctx, res)
}

func (c *OrderController) FindOrder(ctx echo.Context) error {
	id := ctx.Param("id")

	res, err := c.orderService.FindOrder(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Warn("FindOrder: заказ не получен", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.Success(ctx, http.StatusOK, res)
}

func (c *OrderController) CreateOrder(ctx echo.Context) error {
	var payload dto.OrderPayload
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateOrder: ошибка привязки данных", zap.Error(err))
		return api.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("CreateOrder: ошибка валидации данных", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.orderService.CreateOrder(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateOrder: ошибка при создании заказа", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.Success(ctx, http.StatusCreated, res)
}

// PatchOrder — частичное обновление. Заказ не в статусе pending отвечает 409.
func (c *OrderController) PatchOrder(ctx echo.Context) error {
	id := ctx.Param("id")

	var patch dto.OrderPatchPayload
	if err := ctx.Bind(&patch); err != nil {
		c.logger.Error("PatchOrder: ошибка привязки данных", zap.Error(err))
		return api.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&patch); err != nil {
		c.logger.Warn("PatchOrder: ошибка валидации данных", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.orderService.PatchOrder(ctx.Request().Context(), id, patch)
	if err != nil {
		c.logger.Warn("PatchOrder: заказ не обновлён", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.Success(ctx, http.StatusOK, res)
}

func (c *OrderController) DeleteOrder(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.orderService.DeleteOrder(ctx.Request().Context(), id); err != nil {
		c.logger.Warn("DeleteOrder: заказ не отменён", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.NoContent(ctx)
}
