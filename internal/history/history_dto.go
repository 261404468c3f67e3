package history

import "encoding/json"

type HistoryResponse struct {
	ID          string          `json:"id"`
	RecordType  string          `json:"record_type"`
	RecordID    string          `json:"record_id"`
	ChangeType  string          `json:"change_type"`
	ChangeLabel string          `json:"change_label"`
	Snapshot    json.RawMessage `json:"snapshot"`
	RequestID   string          `json:"request_id,omitempty"`
	ChangedBy   string          `json:"changed_by,omitempty"`
	ChangedAt   string          `json:"changed_at"`
}
