package views

import (
	"context"
	"time"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/events"
	"storage-equipment/internal/forms"
	apperrors "storage-equipment/pkg/errors"
	"storage-equipment/pkg/eventbus"
)

// EquipmentForm — форма создания и редактирования оборудования.
type EquipmentForm struct {
	api      EquipmentAPI
	existing *dto.EquipmentDTO
	now      time.Time
	dispatch Dispatch
	bus      *eventbus.Bus
	texts    Texts

	Data   forms.EquipmentFormData
	Errors forms.EquipmentErrors
	Banner string
}

// NewEquipmentForm: existing == nil — создание с умолчаниями на дату now.
func NewEquipmentForm(api EquipmentAPI, existing *dto.EquipmentDTO, now time.Time, dispatch Dispatch, bus *eventbus.Bus) *EquipmentForm {
	f := &EquipmentForm{
		api:      api,
		existing: existing,
		now:      now,
		dispatch: dispatch,
		bus:      bus,
		texts:    EquipmentResource(api).Texts,
		Errors:   forms.EquipmentErrors{},
	}
	if existing != nil {
		f.Data = forms.EquipmentFormFromRecord(*existing)
	} else {
		f.Data = forms.NewEquipmentFormData(now)
	}
	return f
}

func (f *EquipmentForm) Editing() bool { return f.existing != nil }

func (f *EquipmentForm) ID() string {
	if f.existing == nil {
		return ""
	}
	return f.existing.ID
}

// Change применяет ввод и снимает ошибку поля.
func (f *EquipmentForm) Change(field forms.EquipmentField, raw string) {
	f.Data.Set(field, raw)
	f.Errors.Clear(field)
}

// Submit проверяет форму и только потом обращается к API: POST для новой
// записи, PUT для существующей. При ошибке введённые значения сохраняются.
func (f *EquipmentForm) Submit(ctx context.Context) (*dto.EquipmentDTO, error) {
	f.Errors = forms.ValidateEquipment(f.Data, f.now)
	if !f.Errors.Empty() {
		f.bus.Publish(ctx, events.ValidationRejectedEvent{
			Aggregate: events.AggregateEquipment,
			Fields:    keys(f.Errors.Flatten()),
		})
		return nil, apperrors.ErrValidationFailed
	}

	var (
		rec *dto.EquipmentDTO
		err error
	)
	if f.existing != nil {
		rec, err = f.api.UpdateEquipment(ctx, f.existing.ID, f.Data.Payload())
	} else {
		rec, err = f.api.CreateEquipment(ctx, f.Data.Payload())
	}
	if err != nil {
		f.Banner = failureText(f.texts.SaveFailed, f.texts.SaveFailed, err)
		f.bus.Publish(ctx, events.ActionFailedEvent{
			Aggregate: events.AggregateEquipment,
			Action:    "save",
			ID:        f.ID(),
			Err:       err,
		})
		return nil, err
	}

	f.Banner = ""
	if f.existing != nil {
		f.dispatch.send(RecordUpdated{Kind: KindEquipment, ID: rec.ID, Record: *rec})
	} else {
		f.dispatch.send(RecordCreated{Kind: KindEquipment, ID: rec.ID, Record: *rec})
	}
	return rec, nil
}

// Cancel закрывает форму без сохранения.
func (f *EquipmentForm) Cancel() {
	if f.existing != nil {
		f.dispatch.send(RecordViewed{Kind: KindEquipment, ID: f.existing.ID})
		return
	}
	f.dispatch.send(NavigateBack{Kind: KindEquipment})
}
