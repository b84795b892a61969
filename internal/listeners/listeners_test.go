package listeners

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storage-equipment/internal/events"
	"storage-equipment/pkg/eventbus"
)

func TestDiagnosticsListener_LogsLoadFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	bus := eventbus.New(logger)
	NewDiagnosticsListener(logger).Register(bus)

	bus.Publish(context.Background(), events.LoadFailedEvent{
		Aggregate: events.AggregateEquipment,
		Err:       errors.New("db down"),
	})
	bus.Wait()

	entries := logs.FilterMessage("ошибка загрузки данных").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "equipment", entries[0].ContextMap()["aggregate"])
}

func TestDiagnosticsListener_RejectsForeignEvent(t *testing.T) {
	l := NewDiagnosticsListener(zap.NewNop())
	err := l.handle(context.Background(), events.OrderChangedEvent{ID: "o-1"})
	assert.Error(t, err)
}

func TestAuditListener_LogsChanges(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)
	bus := eventbus.New(logger)
	NewAuditListener(logger).Register(bus)

	bus.Publish(context.Background(), events.OrderChangedEvent{ID: "o-1", Action: events.ActionDeleted, Status: "pending"})
	bus.Publish(context.Background(), events.EquipmentChangedEvent{ID: "eq-1", Action: events.ActionCreated})
	bus.Wait()

	assert.Equal(t, 1, logs.FilterMessage("заказ изменён").Len())
	assert.Equal(t, 1, logs.FilterMessage("оборудование изменено").Len())
}
