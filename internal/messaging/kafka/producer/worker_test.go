package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka"
	kafkaMock "github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	fail map[string]error
	sent []kafkago.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := f.fail[string(m.Key)]; err != nil {
			return err
		}
		f.sent = append(f.sent, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	ok := kafka.OutboxEvent{ID: "o-1", AggregateID: "emp-1", EventType: "attendance.punch.recorded", Topic: "attendance.punch.v1", Payload: []byte(`{}`)}
	bad := kafka.OutboxEvent{ID: "o-2", AggregateID: "emp-2", EventType: "attendance.leave.applied", Topic: "attendance.leave.v1", Payload: []byte(`{}`), RetryCount: 2}

	writer := &fakeWriter{fail: map[string]error{"emp-2": errors.New("broker down")}}

	repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{ok, bad}, nil)
	repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "o-2", 2, "broker down").Return(nil)

	sent, err := ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, writer.sent, 1)
	assert.Equal(t, "attendance.punch.v1", writer.sent[0].Topic)
	assert.Equal(t, "event_type", writer.sent[0].Headers[0].Key)
}

func TestProcessPendingEvents_Empty(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)

	repo.EXPECT().ListPending(ctx, 50).Return(nil, nil)

	sent, err := ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
	assert.NoError(t, err)
	assert.Zero(t, sent)
}
