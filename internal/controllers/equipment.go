package controllers

import (
	"net/http"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/services"
	"storage-equipment/pkg/api"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	filter := types.ParseFilter(ctx.QueryParams())

	res, err := c.equipmentService.GetEquipment(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetEquipment: ошибка при получении списка оборудования", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.SuccessList(ctx, res)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Warn("FindEquipment: оборудование не получено", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.Success(ctx, http.StatusOK, res)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.EquipmentPayload
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateEquipment: ошибка привязки данных", zap.Error(err))
		return api.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("CreateEquipment: ошибка валидации данных", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateEquipment: ошибка при создании оборудования", zap.Any("payload", payload), zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.Success(ctx, http.StatusCreated, res)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.EquipmentPayload
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateEquipment: ошибка привязки данных", zap.Error(err))
		return api.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("UpdateEquipment: ошибка валидации данных", zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateEquipment: ошибка при обновлении оборудования", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.Success(ctx, http.StatusOK, res)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteEquipment: ошибка при удалении оборудования", zap.String("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err, c.logger)
	}

	return api.NoContent(ctx)
}

// badBody — тело запроса не разобралось как JSON.
func badBody(err error) error {
	return apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil)
}
