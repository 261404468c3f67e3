package app

import (
	"context"
	"fmt"
	"time"

	"github.com/JaSamMarko/back-office/internal/bootstrap"
	"github.com/JaSamMarko/back-office/internal/config"
	"github.com/JaSamMarko/back-office/internal/events"
	"github.com/JaSamMarko/back-office/internal/history"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka/consumer"
	"github.com/JaSamMarko/back-office/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const historyConsumerGroup = "back-office-history"

func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	historyService := history.NewService(history.NewRepository(gormDB), zap.L())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.RecordChangedTopic,
		GroupID:        historyConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRecordChanges(ctx, reader, historyService, logger, time.Second)

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()

	return nil
}
