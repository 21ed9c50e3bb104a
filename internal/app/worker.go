package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka/producer"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/config"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to kafka until SIGINT/SIGTERM.
func RunWorker(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, logger)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := gormDB.AutoMigrate(&kafka.OutboxEvent{}); err != nil {
		return err
	}

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.OutboxPollInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("worker shutting down")
	cancel()

	return nil
}
