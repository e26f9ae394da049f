package events

import (
	"errors"
	"testing"
)

type recordingObserver struct {
	name   string
	filter string
	events []Event
	fail   bool
}

func (o *recordingObserver) OnEvent(event Event) error {
	o.events = append(o.events, event)
	if o.fail {
		return errors.New("observer failure")
	}
	return nil
}

func (o *recordingObserver) Name() string { return o.name }

func (o *recordingObserver) ShouldHandle(eventType string) bool {
	return o.filter == "" || o.filter == eventType
}

func TestDispatcher_Dispatch(t *testing.T) {
	d := NewDispatcher()
	obs := &recordingObserver{name: "recorder"}
	d.Register(obs)

	d.Dispatch(Event{Type: FetchCard, Source: "widget-1"})
	d.Dispatch(Event{Type: DisplayCard, Source: "widget-1"})

	if len(obs.events) != 2 {
		t.Fatalf("received %d events, want 2", len(obs.events))
	}
	if obs.events[0].Type != FetchCard || obs.events[0].Source != "widget-1" {
		t.Errorf("events[0] = %+v", obs.events[0])
	}
	if obs.events[1].Type != DisplayCard {
		t.Errorf("events[1] = %+v", obs.events[1])
	}
}

func TestDispatcher_ShouldHandleFilters(t *testing.T) {
	d := NewDispatcher()
	fetchOnly := &recordingObserver{name: "fetch-only", filter: FetchCard}
	all := &recordingObserver{name: "all"}
	d.Register(fetchOnly)
	d.Register(all)

	d.Dispatch(Event{Type: FetchCard, Source: "a"})
	d.Dispatch(Event{Type: HideCard, Source: "a"})

	if len(fetchOnly.events) != 1 {
		t.Errorf("filtered observer received %d events, want 1", len(fetchOnly.events))
	}
	if len(all.events) != 2 {
		t.Errorf("unfiltered observer received %d events, want 2", len(all.events))
	}
}

func TestDispatcher_ObserverErrorDoesNotStopDistribution(t *testing.T) {
	d := NewDispatcher()
	failing := &recordingObserver{name: "failing", fail: true}
	after := &recordingObserver{name: "after"}
	d.Register(failing)
	d.Register(after)

	d.Dispatch(Event{Type: FetchError, Source: "a"})

	if len(after.events) != 1 {
		t.Errorf("observer after a failure received %d events, want 1", len(after.events))
	}
}

func TestDispatcher_Unregister(t *testing.T) {
	d := NewDispatcher()
	obs := &recordingObserver{name: "recorder"}
	d.Register(obs)
	if d.ObserverCount() != 1 {
		t.Fatalf("ObserverCount() = %d, want 1", d.ObserverCount())
	}

	d.Unregister(obs)
	if d.ObserverCount() != 0 {
		t.Fatalf("ObserverCount() = %d after unregister, want 0", d.ObserverCount())
	}

	d.Dispatch(Event{Type: FetchCard})
	if len(obs.events) != 0 {
		t.Errorf("unregistered observer received %d events", len(obs.events))
	}
}

func TestObserverFunc(t *testing.T) {
	var received []Event
	obs := &ObserverFunc{
		ObserverName: "func",
		Fn: func(e Event) error {
			received = append(received, e)
			return nil
		},
	}

	d := NewDispatcher()
	d.Register(obs)
	d.Dispatch(Event{Type: PreviewChange, Source: "deck-1"})
	d.Unregister(obs)
	d.Dispatch(Event{Type: PreviewChange, Source: "deck-1"})

	if len(received) != 1 {
		t.Errorf("received %d events, want 1", len(received))
	}
	if obs.Name() != "func" {
		t.Errorf("Name() = %q", obs.Name())
	}
}
