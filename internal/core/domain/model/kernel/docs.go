// Package kernel provides core domain primitives for the ordering system.
// It implements the fundamental building blocks used throughout the domain
// model, following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money, Quantity, Email, Address: self-validating immutable value objects
//   - DomainEvent and EventMeta: the contract and common data for domain events
//   - BaseAggregate: identity, version counter, and pending-event buffer shared
//     by every aggregate root
//
// These primitives enforce domain invariants at construction time, so domain
// objects are always in a valid state. Value objects are immutable; every
// "mutating" operation returns a new instance.
package kernel
