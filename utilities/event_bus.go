package utilities

import "sync"

type EventHandler func(interface{})

// EventBus decouples the scoring core from downstream collaborators
// (appointment offers, notifications). Handlers run asynchronously.
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

// Publish delivers data to every subscriber of event and returns the
// number of handlers the event was handed to, so callers can tell a
// handoff from a publish into the void.
func (eb *EventBus) Publish(event string, data interface{}) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	handlers, found := eb.handlers[event]
	if !found {
		return 0
	}
	for _, handler := range handlers {
		go handler(data) // Run handlers asynchronously
	}
	return len(handlers)
}

// Global instance
var GlobalEventBus = NewEventBus()
