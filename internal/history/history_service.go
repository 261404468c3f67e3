package history

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/JaSamMarko/back-office/internal/events"
	historyerrors "github.com/JaSamMarko/back-office/internal/history/errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var changeLabels = map[string]string{
	events.ChangeCreated: "Created",
	events.ChangeUpdated: "Changed",
	events.ChangeDeleted: "Deleted",
}

func isKnownRecordType(recordType string) bool {
	switch recordType {
	case events.RecordDepartment, events.RecordEmployee, events.RecordAbsenceRecord:
		return true
	}
	return false
}

type Service interface {
	Record(ctx context.Context, event events.RecordChangedEvent) (bool, error)
	GetByRecord(ctx context.Context, recordType, recordID string) ([]HistoryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{repo: repo, logger: l}
}

// Record appends the event as a history row. Redelivered events are
// recognised by their event id and reported as not written.
func (s *service) Record(ctx context.Context, event events.RecordChangedEvent) (bool, error) {
	if !isKnownRecordType(event.RecordType) {
		return false, historyerrors.ErrInvalidRecordType
	}
	if _, ok := changeLabels[event.ChangeType]; !ok {
		return false, historyerrors.ErrInvalidChangeType
	}
	if strings.TrimSpace(event.RecordID) == "" || strings.TrimSpace(event.EventID) == "" {
		return false, historyerrors.ErrInvalidRecordID
	}

	changedAt := event.OccurredAt
	if changedAt.IsZero() {
		changedAt = time.Now().UTC()
	}

	written, err := s.repo.Append(ctx, &Record{
		EventID:    event.EventID,
		RecordType: event.RecordType,
		RecordID:   event.RecordID,
		ChangeType: event.ChangeType,
		Snapshot:   datatypes.JSON(event.Snapshot),
		RequestID:  event.RequestID,
		ChangedBy:  event.ChangedBy,
		ChangedAt:  changedAt,
	})
	if err != nil {
		s.logger.Error("append history failed",
			zap.String("event_id", event.EventID),
			zap.String("record_type", event.RecordType),
			zap.Error(err),
		)
		return false, err
	}
	if !written {
		s.logger.Debug("duplicate history event ignored", zap.String("event_id", event.EventID))
	}
	return written, nil
}

func (s *service) GetByRecord(ctx context.Context, recordType, recordID string) ([]HistoryResponse, error) {
	if !isKnownRecordType(recordType) {
		return nil, historyerrors.ErrInvalidRecordType
	}
	if strings.TrimSpace(recordID) == "" {
		return nil, historyerrors.ErrInvalidRecordID
	}

	records, err := s.repo.FindByRecord(ctx, recordType, recordID)
	if err != nil {
		s.logger.Error("list history failed", zap.String("record_id", recordID), zap.Error(err))
		return nil, err
	}

	resp := make([]HistoryResponse, len(records))
	for i, r := range records {
		resp[i] = HistoryResponse{
			ID:          r.ID.String(),
			RecordType:  r.RecordType,
			RecordID:    r.RecordID,
			ChangeType:  r.ChangeType,
			ChangeLabel: changeLabels[r.ChangeType],
			Snapshot:    json.RawMessage(r.Snapshot),
			RequestID:   r.RequestID,
			ChangedBy:   r.ChangedBy,
			ChangedAt:   r.ChangedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}
