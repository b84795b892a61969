package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storage-equipment/internal/controllers"
	"storage-equipment/internal/services"
)

func runOrderRouter(api *echo.Group, orderService services.OrderServiceInterface, logger *zap.Logger) {
	orderCtrl := controllers.NewOrderController(orderService, logger)
	{
		api.GET("/orders", orderCtrl.GetOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:id", orderCtrl.FindOrder)
		api.PATCH("/orders/:id", orderCtrl.PatchOrder)
		api.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}
}
