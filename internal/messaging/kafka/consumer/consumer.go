package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/history"
	"github.com/JaSamMarko/back-office/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

const maxRetryDelay = 30 * time.Second

// ConsumeRecordChanges appends a history row per record change event
// until ctx is cancelled. Malformed or invalid events are committed and
// dropped. A storage failure is retried on the same message with a
// doubling delay starting at retryDelay, so no later offset is committed
// past an unrecorded event.
func ConsumeRecordChanges(
	ctx context.Context,
	reader MessageReader,
	historyService history.Service,
	logger *zap.Logger,
	retryDelay time.Duration,
) {
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	log := logger.Named("kafka.consumer.record_history")
	log.Info("record history consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("record history consumer stopped")
				return
			}
			log.Error("fetch record change message failed", zap.Error(err))
			if !sleep(ctx, retryDelay) {
				log.Info("record history consumer stopped")
				return
			}
			continue
		}

		if !handleMessage(ctx, reader, historyService, log, msg, retryDelay) {
			log.Info("record history consumer stopped")
			return
		}
	}
}

// sleep waits for d and reports false when ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func handleMessage(
	ctx context.Context,
	reader MessageReader,
	historyService history.Service,
	log *zap.Logger,
	msg kafkago.Message,
	retryDelay time.Duration,
) bool {
	var event events.RecordChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode record change event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return true
	}

	var written bool
	for delay := retryDelay; ; delay = min(delay*2, maxRetryDelay) {
		var err error
		written, err = historyService.Record(ctx, event)
		if err == nil {
			break
		}
		if apperror.HasCode(err, apperror.CodeInvalidInput) {
			log.Warn("invalid record change event dropped",
				zap.String("event_id", event.EventID),
				zap.String("record_type", event.RecordType),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			return true
		}

		log.Error("record history failed, retrying",
			zap.String("event_id", event.EventID),
			zap.String("record_id", event.RecordID),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)
		if !sleep(ctx, delay) {
			return false
		}
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit record change message failed", zap.Error(err))
		return true
	}

	if written {
		log.Info("history recorded",
			zap.String("event_id", event.EventID),
			zap.String("record_type", event.RecordType),
			zap.String("record_id", event.RecordID),
			zap.String("change_type", event.ChangeType),
		)
	}
	return true
}
