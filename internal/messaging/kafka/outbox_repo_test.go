package kafka_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	"github.com/JaSamMarko/back-office/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&kafka.OutboxRecord{}))
	return db
}

func newEvent(t *testing.T, recordID string) kafka.OutboxEvent {
	t.Helper()
	event, err := kafka.NewRecordChange(context.Background(), events.RecordEmployee, recordID, events.ChangeUpdated, map[string]string{"id": recordID})
	require.NoError(t, err)
	return event
}

func loadRow(t *testing.T, db *gorm.DB, id string) kafka.OutboxRecord {
	t.Helper()
	var row kafka.OutboxRecord
	require.NoError(t, db.First(&row, "id = ?", id).Error)
	return row
}

func TestNewRecordChange(t *testing.T) {
	ctx := contextutil.WithUserID(contextutil.WithRequestID(context.Background(), "req-9"), "user-3")

	event, err := kafka.NewRecordChange(ctx, events.RecordDepartment, "dep-1", events.ChangeCreated, map[string]string{"code": "HR"})
	require.NoError(t, err)

	assert.Equal(t, events.RecordChangedTopic, event.Topic)
	assert.Equal(t, events.RecordDepartment, event.RecordType)
	assert.Equal(t, "dep-1", event.RecordID)
	assert.Equal(t, "req-9", event.RequestID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.NoError(t, kafka.ValidateOutboxEvent(event))
	assert.Contains(t, string(event.Payload), `"changed_by":"user-3"`)
	assert.Contains(t, string(event.Payload), `"event_id":"`+event.ID+`"`)
}

func TestOutboxRepository_CreateInTransaction(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	repo := kafka.NewOutboxRepository(db)

	committed := newEvent(t, "emp-1")
	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.WithTx(tx).Create(ctx, committed))
	require.NoError(t, tx.Commit())

	rolledBack := newEvent(t, "emp-2")
	tx, err = sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.WithTx(tx).Create(ctx, rolledBack))
	require.NoError(t, tx.Rollback())

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, committed.ID, pending[0].ID)
	assert.Equal(t, "emp-1", pending[0].RecordID)
	assert.JSONEq(t, string(committed.Payload), string(pending[0].Payload))
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	repo := kafka.NewOutboxRepository(newTestDB(t))

	err := repo.Create(context.Background(), kafka.OutboxEvent{ID: "x"})

	assert.Error(t, err)
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := kafka.NewOutboxRepository(db)

	sent := newEvent(t, "emp-1")
	failed := newEvent(t, "emp-2")
	require.NoError(t, repo.Create(ctx, sent))
	require.NoError(t, repo.Create(ctx, failed))

	require.NoError(t, repo.MarkSent(ctx, sent.ID))
	require.NoError(t, repo.MarkFailed(ctx, failed, strings.Repeat("x", 600)))

	row := loadRow(t, db, sent.ID)
	assert.Equal(t, kafka.OutboxStatusSent, row.Status)
	assert.NotNil(t, row.ProcessedAt)

	row = loadRow(t, db, failed.ID)
	assert.Equal(t, kafka.OutboxStatusFailed, row.Status)
	assert.Equal(t, 1, row.RetryCount)
	require.NotNil(t, row.ErrorMessage)
	assert.Len(t, *row.ErrorMessage, 500)
	require.NotNil(t, row.NextRetryAt)
	assert.True(t, row.NextRetryAt.After(time.Now().UTC()))

	// neither the sent row nor the row in backoff is due
	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestOutboxRepository_MarkFailedParksExhaustedRows(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := kafka.NewOutboxRepository(db)

	event := newEvent(t, "emp-1")
	require.NoError(t, repo.Create(ctx, event))

	event.RetryCount = kafka.MaxOutboxRetries - 1
	require.NoError(t, repo.MarkFailed(ctx, event, "broker unavailable"))

	row := loadRow(t, db, event.ID)
	assert.Equal(t, kafka.OutboxStatusDead, row.Status)
	assert.Equal(t, kafka.MaxOutboxRetries, row.RetryCount)
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", RecordType: "employee", RecordID: "e1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusFailed}

	assert.NoError(t, kafka.ValidateOutboxEvent(valid))
	assert.Error(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{}))

	noRecord := valid
	noRecord.RecordID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noRecord))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}
