package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	// relayBatchSize caps how many staged events one tick publishes.
	relayBatchSize = 50
	// relayMaxRetries is how many publish attempts an event gets before it
	// parks in FAILED.
	relayMaxRetries = 5
	// relayClaimTimeout is how long a PROCESSING claim may stand before the
	// event is returned to PENDING. Long enough that a live relay finishes
	// its batch well within it.
	relayClaimTimeout = time.Minute
)

// OutboxRelayJob drains staged domain events from the outbox table to the
// message broker. Runs every second so events reach consumers shortly after
// the transaction that staged them commits.
//
// Delivery is at-least-once: a crash between Publish and MarkPublished leaves
// the event in PROCESSING, and each tick returns claims older than
// relayClaimTimeout to PENDING for republication. Consumers deduplicate by
// event ID.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a relay job over the given outbox and publisher.
func NewOutboxRelayJob(outbox ports.OutboxRepository, publisher ports.EventPublisher, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relayPending publishes one batch of staged events. Stale claims left by a
// crashed relay are recovered first so they rejoin the PENDING queue.
func (j *OutboxRelayJob) relayPending(ctx context.Context) error {
	if err := j.outbox.ReclaimStale(ctx, relayClaimTimeout); err != nil {
		return err
	}

	messages, err := j.outbox.GetPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		// A failed claim means a concurrent relay took the event. Skip it.
		if err := j.outbox.MarkProcessing(ctx, message.EventID); err != nil {
			continue
		}

		if err := j.publisher.Publish(ctx, message); err != nil {
			j.logger.ErrorContext(ctx, "Failed to publish outbox event",
				"event_id", message.EventID,
				"event_name", message.EventName,
				"error", err)

			if markErr := j.outbox.MarkFailed(ctx, message.EventID, relayMaxRetries); markErr != nil {
				j.logger.ErrorContext(ctx, "Failed to mark outbox event as failed",
					"event_id", message.EventID,
					"error", markErr)
			}
			continue
		}

		if err := j.outbox.MarkPublished(ctx, message.EventID); err != nil {
			j.logger.ErrorContext(ctx, "Failed to mark outbox event as published",
				"event_id", message.EventID,
				"error", err)
		}
	}

	return nil
}
