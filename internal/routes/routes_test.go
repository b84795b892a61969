package routes

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"storage-equipment/internal/services"
)

func TestRouters_RegisterContract(t *testing.T) {
	e := echo.New()
	api := e.Group("/api")
	runEquipmentRouter(api, services.EquipmentServiceInterface(nil), zap.NewNop())
	runOrderRouter(api, services.OrderServiceInterface(nil), zap.NewNop())

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		http.MethodGet + " /api/equipment",
		http.MethodGet + " /api/equipment/:id",
		http.MethodPost + " /api/equipment",
		http.MethodPut + " /api/equipment/:id",
		http.MethodDelete + " /api/equipment/:id",
		http.MethodGet + " /api/orders",
		http.MethodGet + " /api/orders/:id",
		http.MethodPost + " /api/orders",
		http.MethodPatch + " /api/orders/:id",
		http.MethodDelete + " /api/orders/:id",
	} {
		assert.True(t, got[want], want)
	}
	assert.False(t, got[http.MethodPut+" /api/orders/:id"])
}
