package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storage-equipment/internal/dto"
)

func TestOrderForm_TotalsFollowEdits(t *testing.T) {
	d := NewOrderFormData()
	i := d.AddItem()
	assert.Equal(t, 1, d.Items[i].Quantity)
	assert.True(t, d.Items[i].TotalPrice.IsZero())

	d.SetUnitPrice(i, dto.NewMoney(19.99))
	assert.Equal(t, "19.99", d.Items[i].TotalPrice.Display())

	d.SetQuantity(i, 3)
	assert.Equal(t, "59.97", d.Items[i].TotalPrice.Display())

	j := d.AddItem()
	d.SetItem(j, ItemUnitPrice, "0.03")
	assert.Equal(t, "60.00", d.Total().Display())
}

func TestOrderForm_SetItemNonNumeric(t *testing.T) {
	d := NewOrderFormData()
	i := d.AddItem()
	d.SetItem(i, ItemQuantity, "abc")
	d.SetItem(i, ItemUnitPrice, "x")

	assert.Equal(t, 0, d.Items[i].Quantity)
	assert.True(t, d.Items[i].UnitPrice.IsZero())
	assert.False(t, d.SetQuantity(5, 1))
}

func TestOrderForm_RemoveItem(t *testing.T) {
	d := NewOrderFormData()
	for _, name := range []string{"a", "b", "c"} {
		d.SetEquipmentName(d.AddItem(), name)
	}

	require.True(t, d.RemoveItem(1))
	require.Len(t, d.Items, 2)
	assert.Equal(t, "a", d.Items[0].EquipmentName)
	assert.Equal(t, "c", d.Items[1].EquipmentName)
	assert.False(t, d.RemoveItem(2))
}

func TestOrderErrors_ShiftItems(t *testing.T) {
	errs := newOrderErrors()
	errs.setItem(0, ItemQuantity, "q0")
	errs.setItem(1, ItemQuantity, "q1")
	errs.setItem(2, ItemEquipmentName, "n2")

	errs.ShiftItems(1)
	assert.Equal(t, "q0", errs.Item(0, ItemQuantity))
	assert.Equal(t, "n2", errs.Item(1, ItemEquipmentName))
	assert.Empty(t, errs.Item(2, ItemEquipmentName))
}

func TestOrderFormFromRecord_RecomputesTotals(t *testing.T) {
	rec := dto.OrderDTO{
		ID:          "order-1",
		RequestedBy: "Nurse Joy",
		Status:      dto.OrderDelivered,
		Items: []dto.OrderItemDTO{
			{EquipmentName: "Gloves", Quantity: 10, UnitPrice: dto.NewMoney(2), TotalPrice: dto.NewMoney(999)},
		},
	}

	d := OrderFormFromRecord(rec)
	assert.Equal(t, dto.OrderDelivered, d.Status)
	assert.Equal(t, "20.00", d.Items[0].TotalPrice.Display())
}

func TestBindOrder(t *testing.T) {
	values := url.Values{
		"requestedBy":            {"Dr. Grey"},
		"items[0].equipmentName": {"Bed"},
		"items[0].quantity":      {"2"},
		"items[0].unitPrice":     {"100"},
		"items[3].equipmentName": {"Lamp"},
		"items[3].quantity":      {"1"},
		"items[3].unitPrice":     {"12.5"},
		"items[x].quantity":      {"9"},
	}

	d := BindOrder(NewOrderFormData(), values)
	assert.Equal(t, "Dr. Grey", d.RequestedBy)
	require.Len(t, d.Items, 2)
	assert.Equal(t, "Lamp", d.Items[1].EquipmentName)
	assert.Equal(t, "212.50", d.Total().Display())

	p := d.Payload()
	assert.Equal(t, dto.OrderPending, p.Status)
	assert.Equal(t, "200.00", p.Items[0].TotalPrice.Display())
}

func TestBindOrder_SparseIndexesAreCompacted(t *testing.T) {
	values := url.Values{
		"requestedBy":                   {"Dr. Grey"},
		"items[2000000000].quantity":    {"1"},
		"items[2000000000].unitPrice":   {"4"},
		"items[7].equipmentName":        {"Tray"},
		"items[99999999999999999999].x": {"ignored"},
	}

	d := BindOrder(NewOrderFormData(), values)
	require.Len(t, d.Items, 2)
	assert.Equal(t, 2, cap(d.Items))
	assert.Equal(t, "Tray", d.Items[0].EquipmentName)
	assert.Equal(t, 1, d.Items[1].Quantity)
	assert.Equal(t, "4.00", d.Items[1].TotalPrice.Display())
}
