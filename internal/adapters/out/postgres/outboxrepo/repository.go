package outboxrepo

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// SaveEvents serializes the given events and inserts them in PENDING status.
// Must run on a transaction shared with the aggregate write.
func (r *GormOutboxRepository) SaveEvents(ctx context.Context, events []kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxEventDTO, 0, len(events))
	for _, event := range events {
		dto, err := fromDomainEvent(event)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetPending retrieves up to limit staged events in PENDING status, oldest
// first.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxEventDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", string(EventStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			EventID:     dto.ID.String(),
			EventName:   dto.EventName,
			AggregateID: dto.AggregateID.String(),
			Payload:     dto.Payload,
			OccurredAt:  dto.OccurredAt.Unix(),
		})
	}

	return messages, nil
}

// MarkProcessing claims a PENDING event for publication. Fails when the event
// was already claimed by a concurrent relay.
func (r *GormOutboxRepository) MarkProcessing(ctx context.Context, eventID string) error {
	result := r.db.WithContext(ctx).Model(&OutboxEventDTO{}).
		Where("id = ? AND status = ?", eventID, string(EventStatusPending)).
		Update("status", string(EventStatusProcessing))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("outbox event not found or already claimed: %s", eventID)
	}

	return nil
}

// MarkPublished records a successful publication.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, eventID string) error {
	result := r.db.WithContext(ctx).Model(&OutboxEventDTO{}).
		Where("id = ?", eventID).
		Update("status", string(EventStatusPublished))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("outbox event not found: %s", eventID)
	}

	return nil
}

// MarkFailed records a failed publication attempt. The event returns to
// PENDING for another try until maxRetries is reached, then parks in FAILED.
// Increment and status change happen in one statement so concurrent relays
// cannot lose a retry.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, eventID string, maxRetries int) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE outbox_events
		 SET retry_count = retry_count + 1,
		     status = CASE WHEN retry_count + 1 >= ? THEN ? ELSE ? END,
		     updated_at = NOW()
		 WHERE id = ?`,
		maxRetries, string(EventStatusFailed), string(EventStatusPending), eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("outbox event not found: %s", eventID)
	}

	return nil
}

// ReclaimStale returns PROCESSING events whose claim is older than olderThan
// to PENDING. Recovers events stranded by a relay that crashed after claiming
// but before publishing.
func (r *GormOutboxRepository) ReclaimStale(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	return r.db.WithContext(ctx).Model(&OutboxEventDTO{}).
		Where("status = ? AND updated_at < ?", string(EventStatusProcessing), cutoff).
		Update("status", string(EventStatusPending)).Error
}
