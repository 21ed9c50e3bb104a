package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	next      int
	cancel    context.CancelFunc
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if r.next >= len(r.msgs) {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[r.next]
	r.next++
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type fakeInvalidator struct {
	dates []string
	fail  bool
}

func (f *fakeInvalidator) InvalidateSummary(_ context.Context, date time.Time) error {
	if f.fail {
		return errors.New("redis down")
	}
	f.dates = append(f.dates, date.Format("2006-01-02"))
	return nil
}

func message(t *testing.T, offset int64, v any) kafkago.Message {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return kafkago.Message{Offset: offset, Value: data}
}

func TestConsumeAttendanceEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			message(t, 1, events.PunchRecordedEvent{EventType: events.PunchRecordedType, AttendanceDate: "2024-01-10", PunchType: "in"}),
			message(t, 2, events.LeaveAppliedEvent{EventType: events.LeaveAppliedType, FromDate: "2024-01-11", ToDate: "2024-01-12"}),
			{Offset: 3, Value: []byte("not json")},
			message(t, 4, map[string]string{"event_type": "something.else"}),
		},
	}
	inv := &fakeInvalidator{}

	ConsumeAttendanceEvents(ctx, reader, inv, zap.NewNop())

	assert.Equal(t, []string{"2024-01-10", "2024-01-11", "2024-01-12"}, inv.dates)
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
}

func TestConsumeAttendanceEvents_InvalidateFailureLeavesUncommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			message(t, 7, events.PunchRecordedEvent{EventType: events.PunchRecordedType, AttendanceDate: "2024-01-10"}),
		},
	}

	ConsumeAttendanceEvents(ctx, reader, &fakeInvalidator{fail: true}, zap.NewNop())

	assert.Empty(t, reader.committed)
}

func TestAffectedDates_LeaveWithReversedRange(t *testing.T) {
	msg := message(t, 1, events.LeaveAppliedEvent{EventType: events.LeaveAppliedType, FromDate: "2024-01-12", ToDate: "2024-01-10"})

	dates, err := affectedDates(msg)

	assert.NoError(t, err)
	assert.Empty(t, dates)
}
