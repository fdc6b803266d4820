// Package order implements the Order aggregate: the consistency boundary for
// a customer's purchase from draft through delivery.
//
// The aggregate root is Order. It owns its line items exclusively; no caller
// may reach an Item except through root methods, and other aggregates are
// referenced by identifier only. Every successful mutation appends exactly one
// domain event to the root's pending buffer; persistence and publishing are
// the orchestrating caller's responsibility.
//
// The lifecycle is a state machine:
//
//	Draft ──> Confirmed ──> Shipped ──> Delivered
//	  │           │
//	  └───────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal. Items can be added or removed while
// the order is in Draft or Confirmed; cancellation is possible until the
// order has shipped.
package order
