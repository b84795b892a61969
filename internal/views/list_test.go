package views

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storage-equipment/internal/dto"
	"storage-equipment/pkg/apiclient"
)

func TestListView_LoadFailureAndRetry(t *testing.T) {
	api := &fakeAPI{failWith: &apiclient.Error{Status: http.StatusInternalServerError, Message: "db down"}}
	list := NewListView(EquipmentResource(api), nil, nil)

	err := list.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, ListError, list.State())
	assert.Equal(t, "Failed to load equipment: db down", list.Error())

	api.failWith = nil
	api.equipment = []dto.EquipmentDTO{{ID: "eq-1", Name: "MRI"}}
	require.NoError(t, list.Retry(context.Background()))
	assert.Equal(t, ListLoaded, list.State())
	assert.Empty(t, list.Error())
	assert.Equal(t, []string{"GET /equipment", "GET /equipment"}, api.calls)
}

func TestListView_OrdersTransportFailure(t *testing.T) {
	api := &fakeAPI{failWith: errNetwork}
	list := NewListView(OrderResource(api), nil, nil)

	require.Error(t, list.Load(context.Background()))
	assert.Equal(t, "Failed to load orders. Please check if the backend server is running.", list.Error())
}

func TestListView_Empty(t *testing.T) {
	list := NewListView(EquipmentResource(&fakeAPI{}), nil, nil)
	assert.Equal(t, ListLoading, list.State())

	require.NoError(t, list.Load(context.Background()))
	assert.Equal(t, ListEmpty, list.State())

	list.Add(dto.EquipmentDTO{ID: "eq-2"})
	assert.Equal(t, ListLoaded, list.State())
}

func TestListView_DeleteDeliveredOrderIsDisabled(t *testing.T) {
	api := &fakeAPI{orders: []dto.OrderDTO{
		{ID: "o-1", Status: dto.OrderDelivered},
		{ID: "o-2", Status: dto.OrderPending},
	}}
	list := NewListView(OrderResource(api), nil, nil)
	require.NoError(t, list.Load(context.Background()))

	assert.False(t, list.CanDelete(list.Items()[0]))
	err := list.Delete(context.Background(), "o-1", Confirmed)
	assert.ErrorIs(t, err, ErrActionDisabled)
	assert.Equal(t, []string{"GET /orders"}, api.calls)
}

func TestListView_DeletePendingOrder(t *testing.T) {
	api := &fakeAPI{orders: []dto.OrderDTO{
		{ID: "o-1", Status: dto.OrderDelivered},
		{ID: "o-2", Status: dto.OrderPending},
	}}
	list := NewListView(OrderResource(api), nil, nil)
	require.NoError(t, list.Load(context.Background()))

	var prompt string
	err := list.Delete(context.Background(), "o-2", ConfirmFunc(func(p string) bool {
		prompt = p
		return true
	}))
	require.NoError(t, err)
	assert.Equal(t, "Are you sure you want to cancel this order?", prompt)
	assert.Equal(t, []string{"GET /orders", "DELETE /orders/o-2"}, api.calls)
	require.Len(t, list.Items(), 1)
	assert.Equal(t, "o-1", list.Items()[0].ID)
}

func TestListView_DeleteNotConfirmed(t *testing.T) {
	api := &fakeAPI{equipment: []dto.EquipmentDTO{{ID: "eq-1"}}}
	list := NewListView(EquipmentResource(api), nil, nil)
	require.NoError(t, list.Load(context.Background()))

	err := list.Delete(context.Background(), "eq-1", ConfirmFunc(func(string) bool { return false }))
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Len(t, list.Items(), 1)
	assert.ErrorIs(t, list.Delete(context.Background(), "eq-1", nil), ErrNotConfirmed)
	assert.ErrorIs(t, list.Delete(context.Background(), "nope", Confirmed), ErrUnknownRecord)
}

func TestListView_DeleteFailureKeepsRow(t *testing.T) {
	api := &fakeAPI{equipment: []dto.EquipmentDTO{{ID: "eq-1"}}}
	list := NewListView(EquipmentResource(api), nil, nil)
	require.NoError(t, list.Load(context.Background()))

	api.failWith = &apiclient.Error{Status: http.StatusConflict, Message: "in use"}
	require.Error(t, list.Delete(context.Background(), "eq-1", Confirmed))
	assert.Equal(t, "Failed to delete equipment: in use", list.Error())
	assert.Len(t, list.Items(), 1)
	assert.Equal(t, ListLoaded, list.State())
}

func TestListView_ViewAndEditDispatch(t *testing.T) {
	api := &fakeAPI{orders: []dto.OrderDTO{{ID: "o-1", Status: dto.OrderCancelled}, {ID: "o-2", Status: dto.OrderPending}}}
	var sink collect
	list := NewListView(OrderResource(api), sink.dispatch, nil)
	require.NoError(t, list.Load(context.Background()))

	list.View("o-1")
	assert.ErrorIs(t, list.Edit("o-1"), ErrActionDisabled)
	require.NoError(t, list.Edit("o-2"))

	assert.Equal(t, []Message{
		RecordViewed{Kind: KindOrder, ID: "o-1"},
		RecordEdited{Kind: KindOrder, ID: "o-2"},
	}, sink.msgs)
}
