package kafka

import "time"

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows exhausted their retries and are no longer relayed.
	OutboxStatusDead = "dead"
)

// OutboxRecord is one queued record change waiting to be relayed.
type OutboxRecord struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	RequestID    string  `gorm:"type:varchar(64);not null;default:''"`
	RecordType   string  `gorm:"type:varchar(50);not null"`
	RecordID     string  `gorm:"type:varchar(64);not null"`
	EventType    string  `gorm:"type:varchar(50);not null"`
	Topic        string  `gorm:"type:varchar(150);not null"`
	Payload      []byte  `gorm:"type:jsonb;not null"`
	Status       string  `gorm:"type:varchar(20);not null;index:idx_outbox_status_created"`
	RetryCount   int     `gorm:"not null;default:0"`
	ErrorMessage *string `gorm:"type:varchar(500)"`
	NextRetryAt  *time.Time
	ProcessedAt  *time.Time
	CreatedAt    time.Time `gorm:"index:idx_outbox_status_created"`
	UpdatedAt    time.Time
}

func (OutboxRecord) TableName() string {
	return "outbox_events"
}

// OutboxEvent is the relay's view of an OutboxRecord.
type OutboxEvent struct {
	ID         string
	RequestID  string
	RecordType string
	RecordID   string
	EventType  string
	Topic      string
	Payload    []byte
	Status     string
	RetryCount int
}

func toRecord(e OutboxEvent) OutboxRecord {
	return OutboxRecord{
		ID:         e.ID,
		RequestID:  e.RequestID,
		RecordType: e.RecordType,
		RecordID:   e.RecordID,
		EventType:  e.EventType,
		Topic:      e.Topic,
		Payload:    e.Payload,
		Status:     e.Status,
		RetryCount: e.RetryCount,
	}
}

func toEvent(r OutboxRecord) OutboxEvent {
	return OutboxEvent{
		ID:         r.ID,
		RequestID:  r.RequestID,
		RecordType: r.RecordType,
		RecordID:   r.RecordID,
		EventType:  r.EventType,
		Topic:      r.Topic,
		Payload:    r.Payload,
		Status:     r.Status,
		RetryCount: r.RetryCount,
	}
}
