package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/events"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/datetime"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// SummaryInvalidator drops cached per-day report data.
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context, date time.Time) error
}

type eventEnvelope struct {
	EventType string `json:"event_type"`
}

// ConsumeAttendanceEvents keeps report caches in step with punches and leave
// applications. Undecodable messages are committed and skipped.
func ConsumeAttendanceEvents(
	ctx context.Context,
	reader MessageReader,
	invalidator SummaryInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance")
	log.Info("attendance consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Error(err))
			continue
		}

		dates, err := affectedDates(msg)
		if err != nil {
			log.Error("decode attendance event failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := invalidate(ctx, invalidator, dates); err != nil {
			log.Error("invalidate report summary failed",
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance message failed", zap.Error(err))
			continue
		}

		log.Debug("report summary invalidated",
			zap.String("key", string(msg.Key)),
			zap.Int("dates", len(dates)),
		)
	}
}

func invalidate(ctx context.Context, invalidator SummaryInvalidator, dates []time.Time) error {
	for _, d := range dates {
		if err := invalidator.InvalidateSummary(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// affectedDates lists the attendance dates an event touched.
func affectedDates(msg kafkago.Message) ([]time.Time, error) {
	var env eventEnvelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return nil, err
	}

	switch env.EventType {
	case events.PunchRecordedType:
		var event events.PunchRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return nil, err
		}
		date, err := datetime.ParseDate(event.AttendanceDate)
		if err != nil {
			return nil, err
		}
		return []time.Time{date}, nil

	case events.LeaveAppliedType:
		var event events.LeaveAppliedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return nil, err
		}
		from, err := datetime.ParseDate(event.FromDate)
		if err != nil {
			return nil, err
		}
		to, err := datetime.ParseDate(event.ToDate)
		if err != nil {
			return nil, err
		}
		return datetime.Days(from, to), nil

	default:
		return nil, fmt.Errorf("unknown event type %q", env.EventType)
	}
}
