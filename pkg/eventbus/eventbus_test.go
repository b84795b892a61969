package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type pingEvent struct{}

func (pingEvent) Name() string { return "ping" }

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := New(nil)
	var calls int32
	for i := 0; i < 3; i++ {
		bus.Subscribe("ping", func(ctx context.Context, e Event) error {
			atomic.AddInt32(&calls, 1)
			return nil
		})
	}
	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		t.Error("unexpected delivery")
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestBus_ListenerErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := New(zap.New(core))
	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		return errors.New("boom")
	})

	ctx, cancel := context.WithCancel(context.Background())
	bus.Publish(ctx, pingEvent{})
	cancel()
	bus.Wait()

	assert.Equal(t, 1, logs.FilterField(zap.String("event", "ping")).Len())
}

func TestBus_NilIsNoop(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() { bus.Publish(context.Background(), pingEvent{}) })
}

func TestBus_PublishAfterWaitIsDropped(t *testing.T) {
	bus := New(nil)
	var calls int32
	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()
	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestBus_WaitConcurrentWithPublish(t *testing.T) {
	bus := New(nil)
	var calls int32
	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			bus.Publish(context.Background(), pingEvent{})
		}
	}()
	bus.Wait()
	<-done
	bus.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(200))
}
