package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storage-equipment/internal/events"
	"storage-equipment/pkg/eventbus"
)

// DiagnosticsListener пишет диагностические события консоли в журнал.
type DiagnosticsListener struct {
	logger *zap.Logger
}

func NewDiagnosticsListener(logger *zap.Logger) *DiagnosticsListener {
	return &DiagnosticsListener{logger: logger}
}

func (l *DiagnosticsListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.LoadFailedName, l.handle)
	bus.Subscribe(events.ActionFailedName, l.handle)
	bus.Subscribe(events.ValidationRejectedName, l.handle)
	l.logger.Info("DiagnosticsListener подписан на события диагностики")
}

func (l *DiagnosticsListener) handle(_ context.Context, event eventbus.Event) error {
	switch e := event.(type) {
	case events.LoadFailedEvent:
		l.logger.Warn("ошибка загрузки данных",
			zap.String("aggregate", string(e.Aggregate)),
			zap.String("id", e.ID),
			zap.Error(e.Err),
		)
	case events.ActionFailedEvent:
		l.logger.Warn("действие не выполнено",
			zap.String("aggregate", string(e.Aggregate)),
			zap.String("action", e.Action),
			zap.String("id", e.ID),
			zap.Error(e.Err),
		)
	case events.ValidationRejectedEvent:
		l.logger.Debug("форма отклонена проверкой",
			zap.String("aggregate", string(e.Aggregate)),
			zap.Strings("fields", e.Fields),
		)
	default:
		return fmt.Errorf("неожиданное событие %q (%T)", event.Name(), event)
	}
	return nil
}
