package producer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	kafkaMock "github.com/JaSamMarko/back-office/internal/messaging/kafka/mock"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor  map[string]bool
	messages []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func outboxEvent(id, recordID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:         id,
		RequestID:  "req-" + id,
		RecordType: events.RecordEmployee,
		RecordID:   recordID,
		EventType:  events.EventTypeRecordChanged,
		Topic:      events.RecordChangedTopic,
		Payload:    []byte(`{"event_id":"` + id + `"}`),
		Status:     kafka.OutboxStatusPending,
	}
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			outboxEvent("e1", "rec-1"),
			outboxEvent("e2", "rec-2"),
		}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "e2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Len(t, writer.messages, 2)
		assert.Equal(t, events.RecordChangedTopic, writer.messages[0].Topic)
		assert.Equal(t, "rec-1", string(writer.messages[0].Key))
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]bool{"rec-1": true}}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			outboxEvent("e1", "rec-1"),
			outboxEvent("e2", "rec-2"),
		}, nil)
		repo.EXPECT().MarkFailed(ctx, outboxEvent("e1", "rec-1"), "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "e2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
		assert.EqualError(t, err, "db down")
	})
}
