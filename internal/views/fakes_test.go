package views

import (
	"context"
	"errors"
	"net/http"

	"storage-equipment/internal/dto"
	"storage-equipment/pkg/apiclient"
)

// fakeAPI реализует EquipmentAPI и OrderAPI поверх карт в памяти и считает вызовы.
type fakeAPI struct {
	equipment []dto.EquipmentDTO
	orders    []dto.OrderDTO

	failWith error
	calls    []string

	lastEquipmentPayload dto.EquipmentPayload
	lastOrderPayload     dto.OrderPayload
}

func (f *fakeAPI) record(call string) error {
	f.calls = append(f.calls, call)
	return f.failWith
}

func (f *fakeAPI) ListEquipment(ctx context.Context) ([]dto.EquipmentDTO, error) {
	if err := f.record("GET /equipment"); err != nil {
		return nil, err
	}
	return append([]dto.EquipmentDTO(nil), f.equipment...), nil
}

func (f *fakeAPI) GetEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	if err := f.record("GET /equipment/" + id); err != nil {
		return nil, err
	}
	for _, e := range f.equipment {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, &apiclient.Error{Status: http.StatusNotFound, Message: "not found"}
}

func (f *fakeAPI) CreateEquipment(ctx context.Context, p dto.EquipmentPayload) (*dto.EquipmentDTO, error) {
	f.lastEquipmentPayload = p
	if err := f.record("POST /equipment"); err != nil {
		return nil, err
	}
	rec := dto.EquipmentDTO{ID: "eq-new", Name: p.Name, SerialNumber: p.SerialNumber, Status: p.Status}
	f.equipment = append(f.equipment, rec)
	return &rec, nil
}

func (f *fakeAPI) UpdateEquipment(ctx context.Context, id string, p dto.EquipmentPayload) (*dto.EquipmentDTO, error) {
	f.lastEquipmentPayload = p
	if err := f.record("PUT /equipment/" + id); err != nil {
		return nil, err
	}
	rec := dto.EquipmentDTO{ID: id, Name: p.Name, SerialNumber: p.SerialNumber, Status: p.Status}
	return &rec, nil
}

func (f *fakeAPI) DeleteEquipment(ctx context.Context, id string) error {
	return f.record("DELETE /equipment/" + id)
}

func (f *fakeAPI) ListOrders(ctx context.Context) ([]dto.OrderDTO, error) {
	if err := f.record("GET /orders"); err != nil {
		return nil, err
	}
	return append([]dto.OrderDTO(nil), f.orders...), nil
}

func (f *fakeAPI) GetOrder(ctx context.Context, id string) (*dto.OrderDTO, error) {
	if err := f.record("GET /orders/" + id); err != nil {
		return nil, err
	}
	for _, o := range f.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, &apiclient.Error{Status: http.StatusNotFound, Message: "not found"}
}

func (f *fakeAPI) CreateOrder(ctx context.Context, p dto.OrderPayload) (*dto.OrderDTO, error) {
	f.lastOrderPayload = p
	if err := f.record("POST /orders"); err != nil {
		return nil, err
	}
	return &dto.OrderDTO{ID: "order-new", RequestedBy: p.RequestedBy, Status: dto.OrderPending}, nil
}

func (f *fakeAPI) PatchOrder(ctx context.Context, id string, p dto.OrderPayload) (*dto.OrderDTO, error) {
	f.lastOrderPayload = p
	if err := f.record("PATCH /orders/" + id); err != nil {
		return nil, err
	}
	return &dto.OrderDTO{ID: id, RequestedBy: p.RequestedBy, Status: p.Status}, nil
}

func (f *fakeAPI) CancelOrder(ctx context.Context, id string) error {
	return f.record("DELETE /orders/" + id)
}

var errNetwork = &apiclient.TransportError{Method: "GET", Endpoint: "/orders", Err: errors.New("connection refused")}

// collect собирает отправленные сообщения.
type collect struct {
	msgs []Message
}

func (c *collect) dispatch(msg Message) { c.msgs = append(c.msgs, msg) }
