package views

import (
	"context"

	"storage-equipment/internal/events"
	"storage-equipment/pkg/eventbus"
)

type ListState string

const (
	ListLoading ListState = "loading"
	ListError   ListState = "error"
	ListEmpty   ListState = "empty"
	ListLoaded  ListState = "loaded"
)

// ListView — список записей одного вида. Не потокобезопасен:
// экземпляр живёт в пределах одного запроса консоли.
type ListView[T any] struct {
	res      Resource[T]
	dispatch Dispatch
	bus      *eventbus.Bus

	state ListState
	items []T
	err   string
}

func NewListView[T any](res Resource[T], dispatch Dispatch, bus *eventbus.Bus) *ListView[T] {
	return &ListView[T]{res: res, dispatch: dispatch, bus: bus, state: ListLoading}
}

func (v *ListView[T]) State() ListState { return v.state }
func (v *ListView[T]) Items() []T       { return v.items }

// Error — текст ошибки для баннера, пустой при успехе.
func (v *ListView[T]) Error() string { return v.err }

func (v *ListView[T]) Kind() Kind { return v.res.Kind }

func (v *ListView[T]) CanDelete(item T) bool { return v.res.CanDelete(item) }
func (v *ListView[T]) CanEdit(item T) bool   { return v.res.CanEdit(item) }
func (v *ListView[T]) ID(item T) string      { return v.res.ID(item) }

// Load запрашивает список целиком.
func (v *ListView[T]) Load(ctx context.Context) error {
	v.state = ListLoading
	v.err = ""

	items, err := v.res.List(ctx)
	if err != nil {
		v.state = ListError
		v.err = failureText(v.res.Texts.LoadFailed, v.res.Texts.LoadFallback, err)
		v.bus.Publish(ctx, events.LoadFailedEvent{Aggregate: aggregate(v.res.Kind), Err: err})
		return err
	}

	v.items = items
	v.settle()
	return nil
}

// Retry повторяет тот же запрос, что и Load.
func (v *ListView[T]) Retry(ctx context.Context) error {
	return v.Load(ctx)
}

// Delete удаляет запись после подтверждения. Запрос не отправляется, если
// действие недоступно или пользователь не подтвердил его.
// При успехе строка убирается из списка без перезагрузки.
func (v *ListView[T]) Delete(ctx context.Context, id string, confirm Confirmer) error {
	index := v.indexOf(id)
	if index < 0 {
		return ErrUnknownRecord
	}
	if !v.res.CanDelete(v.items[index]) {
		return ErrActionDisabled
	}
	if confirm == nil || !confirm.Confirm(v.res.Texts.ConfirmDelete) {
		return ErrNotConfirmed
	}

	if err := v.res.Delete(ctx, id); err != nil {
		v.err = failureText(v.res.Texts.DeleteFailed, v.res.Texts.DeleteFallback, err)
		v.bus.Publish(ctx, events.ActionFailedEvent{
			Aggregate: aggregate(v.res.Kind),
			Action:    "delete",
			ID:        id,
			Err:       err,
		})
		return err
	}

	v.err = ""
	v.items = append(v.items[:index:index], v.items[index+1:]...)
	v.settle()
	return nil
}

// Add добавляет только что созданную запись в конец списка.
func (v *ListView[T]) Add(item T) {
	v.items = append(v.items, item)
	v.settle()
}

// Replace подменяет запись с тем же id; false, если такой нет.
func (v *ListView[T]) Replace(item T) bool {
	index := v.indexOf(v.res.ID(item))
	if index < 0 {
		return false
	}
	v.items[index] = item
	return true
}

func (v *ListView[T]) View(id string) {
	v.dispatch.send(RecordViewed{Kind: v.res.Kind, ID: id})
}

func (v *ListView[T]) Edit(id string) error {
	if index := v.indexOf(id); index >= 0 && !v.res.CanEdit(v.items[index]) {
		return ErrActionDisabled
	}
	v.dispatch.send(RecordEdited{Kind: v.res.Kind, ID: id})
	return nil
}

func (v *ListView[T]) indexOf(id string) int {
	for i, item := range v.items {
		if v.res.ID(item) == id {
			return i
		}
	}
	return -1
}

func (v *ListView[T]) settle() {
	if len(v.items) == 0 {
		v.state = ListEmpty
		return
	}
	v.state = ListLoaded
}
