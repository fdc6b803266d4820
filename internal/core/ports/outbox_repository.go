package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// OutboxRepository stages domain events for reliable publication.
// SaveEvents must run inside the same transaction as the aggregate change
// that raised the events; the remaining methods drive the relay job's
// state machine (PENDING -> PROCESSING -> PUBLISHED | FAILED).
type OutboxRepository interface {
	// SaveEvents serializes the given events and inserts them in PENDING
	// status. Unknown event types are rejected.
	SaveEvents(ctx context.Context, events []kernel.DomainEvent) error

	// GetPending retrieves up to limit staged messages in PENDING status,
	// oldest first.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkProcessing claims a PENDING message for publication. Fails when
	// the message was already claimed, so concurrent relays do not double
	// publish within a single claim cycle.
	MarkProcessing(ctx context.Context, eventID string) error

	// MarkPublished records a successful publication.
	MarkPublished(ctx context.Context, eventID string) error

	// MarkFailed records a failed publication attempt. The message returns
	// to PENDING until maxRetries is reached, then parks in FAILED.
	MarkFailed(ctx context.Context, eventID string, maxRetries int) error

	// ReclaimStale returns PROCESSING messages claimed longer ago than
	// olderThan to PENDING, so a relay crash after a claim does not strand
	// them.
	ReclaimStale(ctx context.Context, olderThan time.Duration) error
}
