package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/shared/contextutil"

	"github.com/google/uuid"
)

// NewRecordChange builds the outbox row announcing a record mutation.
// snapshot is serialised as the record state after the change (or before
// a delete).
func NewRecordChange(ctx context.Context, recordType, recordID, changeType string, snapshot any) (OutboxEvent, error) {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return OutboxEvent{}, err
	}

	meta := contextutil.ExtractMetadata(ctx)
	eventID := uuid.NewString()
	payload, err := json.Marshal(events.RecordChangedEvent{
		EventID:    eventID,
		EventType:  events.EventTypeRecordChanged,
		RequestID:  meta.RequestID,
		RecordType: recordType,
		RecordID:   recordID,
		ChangeType: changeType,
		ChangedBy:  meta.UserID,
		Snapshot:   body,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return OutboxEvent{}, err
	}

	return OutboxEvent{
		ID:         eventID,
		RequestID:  meta.RequestID,
		RecordType: recordType,
		RecordID:   recordID,
		EventType:  events.EventTypeRecordChanged,
		Topic:      events.RecordChangedTopic,
		Payload:    payload,
		Status:     OutboxStatusPending,
	}, nil
}
