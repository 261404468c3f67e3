package app

import (
	"context"
	"fmt"
	"time"

	"github.com/JaSamMarko/back-office/internal/bootstrap"
	"github.com/JaSamMarko/back-office/internal/config"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka"
	"github.com/JaSamMarko/back-office/internal/messaging/kafka/producer"
	"github.com/JaSamMarko/back-office/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	sig := bootstrap.WaitForSignal()
	logger.Info("worker shutting down", zap.String("signal", sig.String()))
	cancel()

	return nil
}
