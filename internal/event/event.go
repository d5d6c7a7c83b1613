package event

import (
	"sync"
	"time"
)

const EventQueueSize = 20

type EventType string

const (
	TypeRegistrationCreated EventType = "registration.created"
	TypeRegistrationUpdated EventType = "registration.updated"
)

type EventSubscriberId int

type Event struct {
	Timestamp time.Time
	Data      any
	Type      EventType
}

func NewEvent(eventType EventType, eventData any) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      eventData,
	}
}

// EventBus is a minimal in-process pub/sub used to push registration
// changes to live viewers. Slow subscribers have events dropped rather
// than blocking the publisher.
type EventBus struct {
	subscribers map[EventType]map[EventSubscriberId]chan Event
	lastSubId   EventSubscriberId
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[EventType]map[EventSubscriberId]chan Event),
	}
}

// Subscribe registers for events of the given type. The returned channel
// is closed by Unsubscribe.
func (e *EventBus) Subscribe(eventType EventType) (EventSubscriberId, <-chan Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastSubId++
	subId := e.lastSubId
	ch := make(chan Event, EventQueueSize)
	if _, ok := e.subscribers[eventType]; !ok {
		e.subscribers[eventType] = make(map[EventSubscriberId]chan Event)
	}
	e.subscribers[eventType][subId] = ch
	return subId, ch
}

func (e *EventBus) Unsubscribe(eventType EventType, subId EventSubscriberId) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if subs, ok := e.subscribers[eventType]; ok {
		if ch, ok := subs[subId]; ok {
			delete(subs, subId)
			close(ch)
		}
	}
}

func (e *EventBus) Publish(eventType EventType, evt Event) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, ch := range e.subscribers[eventType] {
		select {
		case ch <- evt:
		default:
			// subscriber queue full, drop
		}
	}
}
