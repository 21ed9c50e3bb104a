package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/events"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka/consumer"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/report"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/config"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/connection"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/datetime"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroupID = "attendance-report-cache"

// RunConsumer drops cached report summaries as punch and leave events arrive.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Only the cache side of the report service is used here.
	reportService := report.NewService(nil, nil, nil, rdb, datetime.SystemClock(cfg.Timezone), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupID:        consumerGroupID,
		GroupTopics:    []string{events.PunchRecordedTopic, events.LeaveAppliedTopic},
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAttendanceEvents(ctx, reader, reportService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()

	return nil
}
