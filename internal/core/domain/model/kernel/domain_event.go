package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a business operation.
// Events are persisted to the outbox in the same transaction as the aggregate.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// BaseEvent carries the metadata shared by all domain events.
// Concrete events embed it and add their own exported payload fields.
type BaseEvent struct {
	id          UUID
	name        string
	aggregateID UUID
	occurredAt  time.Time
}

// NewBaseEvent stamps a new event with a fresh ID and the current UTC time.
func NewBaseEvent(name string, aggregateID UUID) BaseEvent {
	return BaseEvent{
		id:          NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() UUID {
	return e.id
}

func (e BaseEvent) EventName() string {
	return e.name
}

func (e BaseEvent) AggregateID() UUID {
	return e.aggregateID
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// EventRecorder is embedded by aggregates that emit domain events.
type EventRecorder struct {
	events []DomainEvent
}

// RaiseDomainEvent appends event to the pending list.
func (r *EventRecorder) RaiseDomainEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the pending events in the order they were raised.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	return r.events
}

// ClearDomainEvents drops pending events once they have been stored.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
