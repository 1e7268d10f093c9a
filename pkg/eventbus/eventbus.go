package eventbus

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is anything that can be published on the bus.
type Event interface {
	Name() string
}

// Listener handles a single event.
type Listener func(ctx context.Context, event Event) error

// Bus is an in-process publish/subscribe bus. Publishing is fire-and-forget:
// listeners run in their own goroutines and their failures never propagate
// back to the publisher.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	eventID := uuid.New().String()
	for _, listener := range b.listeners[eventName] {
		go func(l Listener) {
			// Detached context: the publishing request must not be held
			// open by slow listeners.
			lctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := l(lctx, event); err != nil {
				b.logger.Error("event listener failed",
					zap.String("event", eventName),
					zap.String("event_id", eventID),
					zap.Error(err),
				)
			}
		}(listener)
	}
}
