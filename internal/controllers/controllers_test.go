package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storage-equipment/internal/dto"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/types"
	"storage-equipment/pkg/validation"
)

type stubEquipmentService struct {
	list    []dto.EquipmentDTO
	filter  types.Filter
	created *dto.EquipmentPayload
	err     error
}

func (s *stubEquipmentService) GetEquipment(_ context.Context, f types.Filter) ([]dto.EquipmentDTO, error) {
	s.filter = f
	return s.list, s.err
}

func (s *stubEquipmentService) FindEquipment(_ context.Context, id string) (*dto.EquipmentDTO, error) {
	for _, e := range s.list {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *stubEquipmentService) CreateEquipment(_ context.Context, p dto.EquipmentPayload) (*dto.EquipmentDTO, error) {
	s.created = &p
	return &dto.EquipmentDTO{ID: "new", Name: p.Name, Status: dto.EquipmentOperational}, s.err
}

func (s *stubEquipmentService) UpdateEquipment(_ context.Context, id string, p dto.EquipmentPayload) (*dto.EquipmentDTO, error) {
	return &dto.EquipmentDTO{ID: id, Name: p.Name}, s.err
}

func (s *stubEquipmentService) DeleteEquipment(_ context.Context, id string) error {
	if _, err := s.FindEquipment(context.Background(), id); err != nil {
		return err
	}
	return s.err
}

type stubOrderService struct {
	status dto.OrderStatus
}

func (s *stubOrderService) GetOrders(context.Context, types.Filter) ([]dto.OrderDTO, error) {
	return nil, nil
}

func (s *stubOrderService) FindOrder(_ context.Context, id string) (*dto.OrderDTO, error) {
	return &dto.OrderDTO{ID: id, Status: s.status}, nil
}

func (s *stubOrderService) CreateOrder(_ context.Context, p dto.OrderPayload) (*dto.OrderDTO, error) {
	return &dto.OrderDTO{ID: "o-1", RequestedBy: p.RequestedBy, Status: dto.OrderPending}, nil
}

func (s *stubOrderService) PatchOrder(_ context.Context, id string, _ dto.OrderPatchPayload) (*dto.OrderDTO, error) {
	if !s.status.Mutable() {
		return nil, apperrors.ErrOrderNotPending
	}
	return &dto.OrderDTO{ID: id, Status: s.status}, nil
}

func (s *stubOrderService) DeleteOrder(context.Context, string) error {
	if !s.status.Mutable() {
		return apperrors.ErrOrderNotPending
	}
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func equipmentEcho(svc *stubEquipmentService) *echo.Echo {
	e := newEcho()
	ctrl := NewEquipmentController(svc, zap.NewNop())
	e.GET("/api/equipment", ctrl.GetEquipment)
	e.GET("/api/equipment/:id", ctrl.FindEquipment)
	e.POST("/api/equipment", ctrl.CreateEquipment)
	e.PUT("/api/equipment/:id", ctrl.UpdateEquipment)
	e.DELETE("/api/equipment/:id", ctrl.DeleteEquipment)
	return e
}

func TestEquipmentController_EmptyListIsArray(t *testing.T) {
	svc := &stubEquipmentService{}
	rec := serve(equipmentEcho(svc), http.MethodGet, "/api/equipment?search=pump&limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, "pump", svc.filter.Search)
	assert.Equal(t, 5, svc.filter.Limit)
}

func TestEquipmentController_NotFoundBody(t *testing.T) {
	rec := serve(equipmentEcho(&stubEquipmentService{}), http.MethodGet, "/api/equipment/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "not found", body["message"])
}

func TestEquipmentController_CreateValidates(t *testing.T) {
	svc := &stubEquipmentService{}
	e := equipmentEcho(svc)

	rec := serve(e, http.MethodPost, "/api/equipment", `{"name":"ab","serialNumber":"SN 1","manufacturer":"Acme","location":"ICU"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "serialNumber")
	assert.Nil(t, svc.created)

	rec = serve(e, http.MethodPost, "/api/equipment", `{"name":"Ventilator","serialNumber":"SN-1","manufacturer":"Acme","location":"ICU Room"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, "Ventilator", svc.created.Name)
}

func TestEquipmentController_MalformedBody(t *testing.T) {
	rec := serve(equipmentEcho(&stubEquipmentService{}), http.MethodPost, "/api/equipment", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEquipmentController_DeleteReturnsNoContent(t *testing.T) {
	svc := &stubEquipmentService{list: []dto.EquipmentDTO{{ID: "e-1"}}}
	e := equipmentEcho(svc)

	rec := serve(e, http.MethodDelete, "/api/equipment/e-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serve(e, http.MethodDelete, "/api/equipment/e-2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func orderEcho(svc *stubOrderService) *echo.Echo {
	e := newEcho()
	ctrl := NewOrderController(svc, zap.NewNop())
	e.GET("/api/orders", ctrl.GetOrders)
	e.POST("/api/orders", ctrl.CreateOrder)
	e.PATCH("/api/orders/:id", ctrl.PatchOrder)
	e.DELETE("/api/orders/:id", ctrl.DeleteOrder)
	return e
}

func TestOrderController_CreateRequiresItems(t *testing.T) {
	e := orderEcho(&stubOrderService{status: dto.OrderPending})

	rec := serve(e, http.MethodPost, "/api/orders", `{"requestedBy":"Dr. Grey","items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, http.MethodPost, "/api/orders",
		`{"requestedBy":"Dr. Grey","items":[{"equipmentName":"Pump","quantity":2,"unitPrice":10.5}]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requestedBy":"Dr. Grey"`)
}

func TestOrderController_NonPendingIsConflict(t *testing.T) {
	e := orderEcho(&stubOrderService{status: dto.OrderDelivered})

	rec := serve(e, http.MethodPatch, "/api/orders/o-1", `{"notes":"late"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(e, http.MethodDelete, "/api/orders/o-1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOrderController_ListNeverNull(t *testing.T) {
	rec := serve(orderEcho(&stubOrderService{}), http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
