// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Event types published by the collision system
const (
	ShapeCollision  Type = "shape_collision"
	ShapeAdded      Type = "shape_added"
	ShapeRemoved    Type = "shape_removed"
	UpdateCompleted Type = "update_completed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers. Handlers run on the
// caller's goroutine in subscription order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// CollisionEvent reports that two entities' shapes overlap
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
	NameA   string
	NameB   string
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, entityA, entityB uint64, nameA, nameB string) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: ShapeCollision,
			Source:    source,
		},
		EntityA: entityA,
		EntityB: entityB,
		NameA:   nameA,
		NameB:   nameB,
	}
}

// ShapeEvent reports a shape joining or leaving the collision system
type ShapeEvent struct {
	BaseEvent
	EntityID uint64
	Name     string
}

// NewShapeEvent creates a new shape event
func NewShapeEvent(eventType Type, source interface{}, entityID uint64, name string) *ShapeEvent {
	return &ShapeEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
		Name:     name,
	}
}

// UpdateEvent summarizes one collision pass
type UpdateEvent struct {
	BaseEvent
	Shapes   int
	Pairs    int
	Culled   int
	Contacts int
}
