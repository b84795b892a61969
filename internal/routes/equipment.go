package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storage-equipment/internal/controllers"
	"storage-equipment/internal/services"
)

func runEquipmentRouter(api *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	{
		api.GET("/equipment", equipmentCtrl.GetEquipment)
		api.GET("/equipment/:id", equipmentCtrl.FindEquipment)
		api.POST("/equipment", equipmentCtrl.CreateEquipment)
		api.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
		api.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
	}
}
