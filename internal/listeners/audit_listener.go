package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storage-equipment/internal/events"
	"storage-equipment/pkg/eventbus"
)

// AuditListener ведёт журнал изменений записей на стороне API.
type AuditListener struct {
	logger *zap.Logger
}

func NewAuditListener(logger *zap.Logger) *AuditListener {
	return &AuditListener{logger: logger.Named("audit")}
}

func (l *AuditListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.EquipmentChangedName, l.handle)
	bus.Subscribe(events.OrderChangedName, l.handle)
}

func (l *AuditListener) handle(_ context.Context, event eventbus.Event) error {
	switch e := event.(type) {
	case events.EquipmentChangedEvent:
		l.logger.Info("оборудование изменено", zap.String("id", e.ID), zap.String("action", e.Action))
	case events.OrderChangedEvent:
		l.logger.Info("заказ изменён",
			zap.String("id", e.ID),
			zap.String("action", e.Action),
			zap.String("status", e.Status),
		)
	default:
		return fmt.Errorf("неожиданное событие %q (%T)", event.Name(), event)
	}
	return nil
}
