package views

import (
	"context"

	"storage-equipment/internal/events"
	"storage-equipment/pkg/apiclient"
	"storage-equipment/pkg/eventbus"
)

type DetailState string

const (
	DetailLoading  DetailState = "loading"
	DetailError    DetailState = "error"
	DetailNotFound DetailState = "not_found"
	DetailLoaded   DetailState = "loaded"
	DetailEditing  DetailState = "editing"
)

// DetailView — карточка одной записи:
// loading → error | not_found | loaded; loaded ⇄ editing; error → loading (повтор).
type DetailView[T any] struct {
	res      Resource[T]
	id       string
	dispatch Dispatch
	bus      *eventbus.Bus

	state  DetailState
	record *T
	err    string
}

func NewDetailView[T any](res Resource[T], id string, dispatch Dispatch, bus *eventbus.Bus) *DetailView[T] {
	return &DetailView[T]{res: res, id: id, dispatch: dispatch, bus: bus, state: DetailLoading}
}

func (v *DetailView[T]) State() DetailState { return v.state }
func (v *DetailView[T]) Record() *T         { return v.record }
func (v *DetailView[T]) Error() string      { return v.err }
func (v *DetailView[T]) ID() string         { return v.id }
func (v *DetailView[T]) Kind() Kind         { return v.res.Kind }

// CanEdit — можно ли сейчас перейти в режим редактирования.
func (v *DetailView[T]) CanEdit() bool {
	return v.state == DetailLoaded && v.record != nil && v.res.CanEdit(*v.record)
}

func (v *DetailView[T]) Load(ctx context.Context) error {
	v.state = DetailLoading
	v.err = ""

	rec, err := v.res.Get(ctx, v.id)
	switch {
	case apiclient.IsNotFound(err), err == nil && rec == nil:
		v.state = DetailNotFound
		v.record = nil
		return nil
	case err != nil:
		v.state = DetailError
		v.err = failureText(v.res.Texts.DetailFailed, v.res.Texts.DetailFallback, err)
		v.bus.Publish(ctx, events.LoadFailedEvent{Aggregate: aggregate(v.res.Kind), ID: v.id, Err: err})
		return err
	}

	v.record = rec
	v.state = DetailLoaded
	return nil
}

// Retry допустим только из состояния error.
func (v *DetailView[T]) Retry(ctx context.Context) error {
	if v.state != DetailError {
		return ErrBadTransition
	}
	return v.Load(ctx)
}

func (v *DetailView[T]) StartEdit() error {
	if v.state != DetailLoaded {
		return ErrBadTransition
	}
	if !v.res.CanEdit(*v.record) {
		return ErrActionDisabled
	}
	v.state = DetailEditing
	v.dispatch.send(RecordEdited{Kind: v.res.Kind, ID: v.id})
	return nil
}

func (v *DetailView[T]) CancelEdit() error {
	if v.state != DetailEditing {
		return ErrBadTransition
	}
	v.state = DetailLoaded
	v.dispatch.send(RecordViewed{Kind: v.res.Kind, ID: v.id})
	return nil
}

// Updated принимает запись, которую вернул сервер, и выходит из редактирования.
func (v *DetailView[T]) Updated(rec T) error {
	if v.state != DetailEditing {
		return ErrBadTransition
	}
	v.record = &rec
	v.state = DetailLoaded
	return nil
}

func (v *DetailView[T]) Back() {
	v.dispatch.send(NavigateBack{Kind: v.res.Kind})
}
