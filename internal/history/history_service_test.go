package history_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/history"
	historyerrors "github.com/JaSamMarko/back-office/internal/history/errors"
	historyMock "github.com/JaSamMarko/back-office/internal/history/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newEvent(changeType string) events.RecordChangedEvent {
	return events.RecordChangedEvent{
		EventID:    uuid.NewString(),
		EventType:  events.EventTypeRecordChanged,
		RequestID:  "req-1",
		RecordType: events.RecordEmployee,
		RecordID:   uuid.NewString(),
		ChangeType: changeType,
		ChangedBy:  "user-1",
		Snapshot:   json.RawMessage(`{"first_name":"Ana"}`),
		OccurredAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestHistoryService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("appends the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := historyMock.NewMockRepository(ctrl)
		svc := history.NewService(repo)

		event := newEvent(events.ChangeCreated)
		repo.EXPECT().
			Append(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, rec *history.Record) (bool, error) {
				assert.Equal(t, event.EventID, rec.EventID)
				assert.Equal(t, event.RecordID, rec.RecordID)
				assert.Equal(t, "+", rec.ChangeType)
				assert.Equal(t, "user-1", rec.ChangedBy)
				assert.JSONEq(t, `{"first_name":"Ana"}`, string(rec.Snapshot))
				assert.Equal(t, event.OccurredAt, rec.ChangedAt)
				return true, nil
			})

		written, err := svc.Record(ctx, event)
		assert.NoError(t, err)
		assert.True(t, written)
	})

	t.Run("duplicate event is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := historyMock.NewMockRepository(ctrl)
		svc := history.NewService(repo)

		repo.EXPECT().Append(ctx, gomock.Any()).Return(false, nil)

		written, err := svc.Record(ctx, newEvent(events.ChangeUpdated))
		assert.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("unknown record type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := history.NewService(historyMock.NewMockRepository(ctrl))

		event := newEvent(events.ChangeCreated)
		event.RecordType = "payroll"

		_, err := svc.Record(ctx, event)
		assert.ErrorIs(t, err, historyerrors.ErrInvalidRecordType)
	})

	t.Run("unknown change type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := history.NewService(historyMock.NewMockRepository(ctrl))

		_, err := svc.Record(ctx, newEvent("?"))
		assert.ErrorIs(t, err, historyerrors.ErrInvalidChangeType)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := historyMock.NewMockRepository(ctrl)
		svc := history.NewService(repo)

		repo.EXPECT().Append(ctx, gomock.Any()).Return(false, errors.New("db down"))

		_, err := svc.Record(ctx, newEvent(events.ChangeDeleted))
		assert.EqualError(t, err, "db down")
	})
}

func TestHistoryService_GetByRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := historyMock.NewMockRepository(ctrl)
		svc := history.NewService(repo)

		recordID := uuid.NewString()
		stamp := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
		repo.EXPECT().FindByRecord(ctx, events.RecordDepartment, recordID).Return([]history.Record{
			{ID: uuid.New(), RecordType: events.RecordDepartment, RecordID: recordID, ChangeType: "~", Snapshot: []byte(`{}`), ChangedAt: stamp},
		}, nil)

		resp, err := svc.GetByRecord(ctx, events.RecordDepartment, recordID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Changed", resp[0].ChangeLabel)
		assert.Equal(t, stamp.Format(time.RFC3339), resp[0].ChangedAt)
	})

	t.Run("unknown record type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := history.NewService(historyMock.NewMockRepository(ctrl))

		_, err := svc.GetByRecord(ctx, "user", uuid.NewString())
		assert.ErrorIs(t, err, historyerrors.ErrInvalidRecordType)
	})
}
