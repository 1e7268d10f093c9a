package eventbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testEvent struct{ payload string }

func (testEvent) Name() string { return "test.event" }

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	bus := New(zap.NewNop())

	received := make(chan string, 2)
	handler := func(_ context.Context, event Event) error {
		received <- event.(testEvent).payload
		return nil
	}
	bus.Subscribe("test.event", handler)
	bus.Subscribe("test.event", handler)

	bus.Publish(context.Background(), testEvent{payload: "hello"})

	for i := 0; i < 2; i++ {
		select {
		case got := <-received:
			assert.Equal(t, "hello", got)
		case <-time.After(time.Second):
			t.Fatal("listener was not invoked")
		}
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := New(zap.NewNop())
	bus.Publish(context.Background(), testEvent{payload: "ignored"})
}

func TestListenerFailureDoesNotReachPublisher(t *testing.T) {
	bus := New(zap.NewNop())

	done := make(chan struct{})
	bus.Subscribe("test.event", func(_ context.Context, _ Event) error {
		close(done)
		return errors.New("boom")
	})

	bus.Publish(context.Background(), testEvent{payload: "x"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener was not invoked")
	}
}
