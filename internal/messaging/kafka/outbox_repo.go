package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/JaSamMarko/back-office/internal/shared/connection"

	"gorm.io/gorm"
)

const (
	// MaxOutboxRetries is how many failed publishes a row survives before
	// it is parked as dead.
	MaxOutboxRetries = 10

	retryBackoffStep = 15 * time.Second
	maxErrorLength   = 500
)

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, event OutboxEvent, reason string) error
}

type outboxRepository struct {
	db  *gorm.DB
	tx  *sql.Tx
	now func() time.Time
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db, now: time.Now}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx, now: r.now}
}

func (r *outboxRepository) conn(ctx context.Context) *gorm.DB {
	return connection.Session(ctx, r.db, r.tx)
}

// Create must run on the transaction that changed the record, otherwise
// the change and its history event can diverge.
func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	rec := toRecord(event)
	return r.conn(ctx).Create(&rec).Error
}

// ListPending returns pending rows and failed rows whose backoff elapsed,
// oldest first.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	var rows []OutboxRecord
	err := r.conn(ctx).
		Where("status IN ?", []string{OutboxStatusPending, OutboxStatusFailed}).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", r.now().UTC()).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toEvent(row))
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	now := r.now().UTC()
	return r.conn(ctx).
		Model(&OutboxRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusSent,
			"processed_at":  now,
			"error_message": nil,
			"updated_at":    now,
		}).Error
}

// MarkFailed schedules the next attempt with a linear backoff capped at
// MaxOutboxRetries steps, or parks the row once retries run out.
func (r *outboxRepository) MarkFailed(ctx context.Context, event OutboxEvent, reason string) error {
	now := r.now().UTC()
	attempts := event.RetryCount + 1

	if len(reason) > maxErrorLength {
		reason = reason[:maxErrorLength]
	}

	status := OutboxStatusFailed
	if attempts >= MaxOutboxRetries {
		status = OutboxStatusDead
	}
	next := now.Add(time.Duration(attempts) * retryBackoffStep)

	return r.conn(ctx).
		Model(&OutboxRecord{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"status":        status,
			"retry_count":   attempts,
			"error_message": reason,
			"next_retry_at": next,
			"updated_at":    now,
		}).Error
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.RecordType == "" || event.RecordID == "" {
		return errors.New("outbox record reference is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
