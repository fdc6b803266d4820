package kernel

// InitialAggregateVersion is the version assigned to a newly created aggregate
// before its first save.
const InitialAggregateVersion = 1

// BaseAggregate bundles the behavior every aggregate root shares: a stable
// identity, an optimistic-concurrency version counter, and the buffer of
// domain events pending publication. Concrete aggregates embed it by value
// rather than inheriting from an entity hierarchy.
//
// The pending-events buffer is exclusively owned by the aggregate instance.
// PendingEvents never clears the buffer; the orchestrating caller invokes
// ClearPendingEvents only after both the aggregate state and the events have
// been durably persisted. If persistence fails the buffer is kept, so a retry
// resubmits the same events (at-least-once delivery).
type BaseAggregate struct {
	id            UUID
	version       int
	pendingEvents []DomainEvent
}

// NewBaseAggregate creates the base state for a brand-new aggregate at the
// initial version.
func NewBaseAggregate(id UUID) BaseAggregate {
	return BaseAggregate{
		id:      id,
		version: InitialAggregateVersion,
	}
}

// RestoreBaseAggregate reconstructs the base state of an aggregate loaded from
// persistence. The pending-events buffer starts empty: persisted events have
// already been handed to the outbox.
func RestoreBaseAggregate(id UUID, version int) BaseAggregate {
	return BaseAggregate{
		id:      id,
		version: version,
	}
}

// ID returns the aggregate's unique identifier.
func (a *BaseAggregate) ID() UUID {
	return a.id
}

// Version returns the optimistic-concurrency version counter.
// A save must fail if the persisted version has advanced past this value.
func (a *BaseAggregate) Version() int {
	return a.version
}

// IncrementVersion advances the version counter. Called by the repository
// after a successful optimistic-locked save, so the in-memory instance can be
// saved again without reloading.
func (a *BaseAggregate) IncrementVersion() {
	a.version++
}

// PendingEvents returns a snapshot of the events raised since the last clear.
// The read is non-destructive: calling it twice without further mutation
// returns the same sequence. The returned slice is a copy; callers cannot
// alias the internal buffer.
func (a *BaseAggregate) PendingEvents() []DomainEvent {
	events := make([]DomainEvent, len(a.pendingEvents))
	copy(events, a.pendingEvents)
	return events
}

// ClearPendingEvents empties the buffer. Invoke only after the aggregate state
// and its events have been durably persisted or handed to a reliable outbox.
func (a *BaseAggregate) ClearPendingEvents() {
	a.pendingEvents = nil
}

// RaiseEvent appends an event to the pending buffer. Called by concrete
// aggregates at the end of each successful mutating operation.
func (a *BaseAggregate) RaiseEvent(event DomainEvent) {
	a.pendingEvents = append(a.pendingEvents, event)
}
