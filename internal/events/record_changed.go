package events

import (
	"encoding/json"
	"time"
)

const RecordChangedTopic = "hr.records.history.v1"

const EventTypeRecordChanged = "record_changed"

// Change types follow the +/~/- convention of the history table.
const (
	ChangeCreated = "+"
	ChangeUpdated = "~"
	ChangeDeleted = "-"
)

const (
	RecordDepartment    = "department"
	RecordEmployee      = "employee"
	RecordAbsenceRecord = "absence_record"
)

type RecordChangedEvent struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	RequestID  string          `json:"request_id,omitempty"`
	RecordType string          `json:"record_type"`
	RecordID   string          `json:"record_id"`
	ChangeType string          `json:"change_type"`
	ChangedBy  string          `json:"changed_by,omitempty"`
	Snapshot   json.RawMessage `json:"snapshot"`
	OccurredAt time.Time       `json:"occurred_at"`
}
