// Package events distributes the host-exposed widget events. Events carry no
// payload beyond their type and the emitting widget's instance ID; consumers
// re-query widget state.
package events

import (
	"log"
	"sync"
)

// Host-exposed event types.
const (
	FetchCard     = "fetchCard"
	FetchError    = "fetchError"
	DisplayCard   = "displayCard"
	HideCard      = "hideCard"
	TouchCard     = "touchCard"
	FetchList     = "fetchList"
	DeckExported  = "deckExported"
	PreviewChange = "previewChange"
)

// Event is a host-visible notification from a widget.
type Event struct {
	// Type is one of the event type constants above.
	Type string

	// Source is the instance ID of the widget the event originated from.
	Source string
}

// Observer is notified of dispatched events.
type Observer interface {
	// OnEvent is called when an event is dispatched.
	OnEvent(event Event) error

	// Name returns a human-readable name for logging.
	Name() string

	// ShouldHandle filters which event types this observer receives.
	ShouldHandle(eventType string) bool
}

// Dispatcher fans events out to registered observers. Safe for concurrent use.
type Dispatcher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		observers: make([]Observer, 0),
	}
}

// Register adds an observer. It will receive all future events its
// ShouldHandle accepts.
func (d *Dispatcher) Register(observer Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.observers = append(d.observers, observer)
	log.Printf("[Events] Registered observer: %s", observer.Name())
}

// Unregister removes an observer.
func (d *Dispatcher) Unregister(observer Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, obs := range d.observers {
		if obs == observer {
			d.observers[i] = d.observers[len(d.observers)-1]
			d.observers = d.observers[:len(d.observers)-1]
			return
		}
	}
}

// Dispatch notifies observers sequentially in registration order. Observer
// errors are logged and do not stop distribution.
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	observers := make([]Observer, len(d.observers))
	copy(observers, d.observers)
	d.mu.RUnlock()

	for _, observer := range observers {
		if !observer.ShouldHandle(event.Type) {
			continue
		}

		if err := observer.OnEvent(event); err != nil {
			log.Printf("[Events] Observer %s failed to handle %s: %v", observer.Name(), event.Type, err)
		}
	}
}

// ObserverCount returns the number of registered observers.
func (d *Dispatcher) ObserverCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.observers)
}

// ObserverFunc adapts a function to the Observer interface, receiving every
// event type. Register the pointer so the observer can later be unregistered.
type ObserverFunc struct {
	ObserverName string
	Fn           func(Event) error
}

// OnEvent invokes the wrapped function.
func (o *ObserverFunc) OnEvent(event Event) error { return o.Fn(event) }

// Name returns the observer's name.
func (o *ObserverFunc) Name() string { return o.ObserverName }

// ShouldHandle accepts every event type.
func (o *ObserverFunc) ShouldHandle(string) bool { return true }
