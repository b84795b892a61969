package views

import (
	"context"
	"sort"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/events"
	"storage-equipment/internal/forms"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/eventbus"
)

// OrderForm — форма заказа с позициями.
type OrderForm struct {
	api      OrderAPI
	existing *dto.OrderDTO
	dispatch Dispatch
	bus      *eventbus.Bus
	texts    Texts

	Data   forms.OrderFormData
	Errors forms.OrderErrors
	Banner string
}

func NewOrderForm(api OrderAPI, existing *dto.OrderDTO, dispatch Dispatch, bus *eventbus.Bus) *OrderForm {
	f := &OrderForm{
		api:      api,
		existing: existing,
		dispatch: dispatch,
		bus:      bus,
		texts:    OrderResource(api).Texts,
	}
	if existing != nil {
		f.Data = forms.OrderFormFromRecord(*existing)
	} else {
		f.Data = forms.NewOrderFormData()
	}
	return f
}

func (f *OrderForm) Editing() bool { return f.existing != nil }

func (f *OrderForm) ID() string {
	if f.existing == nil {
		return ""
	}
	return f.existing.ID
}

func (f *OrderForm) Change(field forms.OrderField, raw string) {
	f.Data.Set(field, raw)
	f.Errors.Clear(field)
}

// ChangeItem правит поле позиции; totalPrice пересчитывается сразу.
func (f *OrderForm) ChangeItem(index int, field forms.ItemField, raw string) bool {
	if !f.Data.SetItem(index, field, raw) {
		return false
	}
	f.Errors.ClearItem(index, field)
	return true
}

func (f *OrderForm) AddItem() int {
	f.Errors.Clear(forms.OrderItems)
	return f.Data.AddItem()
}

func (f *OrderForm) RemoveItem(index int) bool {
	if !f.Data.RemoveItem(index) {
		return false
	}
	f.Errors.ShiftItems(index)
	return true
}

// Submit: сначала проверка, затем POST для нового заказа или PATCH для существующего.
// Заказ не в статусе pending не отправляется.
func (f *OrderForm) Submit(ctx context.Context) (*dto.OrderDTO, error) {
	if f.existing != nil && !f.existing.Status.Mutable() {
		return nil, ErrActionDisabled
	}

	f.Errors = forms.ValidateOrder(f.Data)
	if !f.Errors.Empty() {
		f.bus.Publish(ctx, events.ValidationRejectedEvent{
			Aggregate: events.AggregateOrder,
			Fields:    keys(f.Errors.Flatten()),
		})
		return nil, apperrors.ErrValidationFailed
	}

	var (
		rec *dto.OrderDTO
		err error
	)
	if f.existing != nil {
		rec, err = f.api.PatchOrder(ctx, f.existing.ID, f.Data.Payload())
	} else {
		rec, err = f.api.CreateOrder(ctx, f.Data.Payload())
	}
	if err != nil {
		f.Banner = failureText(f.texts.SaveFailed, f.texts.SaveFailed, err)
		f.bus.Publish(ctx, events.ActionFailedEvent{
			Aggregate: events.AggregateOrder,
			Action:    "save",
			ID:        f.ID(),
			Err:       err,
		})
		return nil, err
	}

	f.Banner = ""
	if f.existing != nil {
		f.dispatch.send(RecordUpdated{Kind: KindOrder, ID: rec.ID, Record: *rec})
	} else {
		f.dispatch.send(RecordCreated{Kind: KindOrder, ID: rec.ID, Record: *rec})
	}
	return rec, nil
}

func (f *OrderForm) Cancel() {
	if f.existing != nil {
		f.dispatch.send(RecordViewed{Kind: KindOrder, ID: f.existing.ID})
		return
	}
	f.dispatch.send(NavigateBack{Kind: KindOrder})
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
