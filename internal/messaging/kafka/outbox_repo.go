package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"

	maxErrorMessage = 500
	retryStep       = 15 * time.Second
	maxRetrySteps   = 10
)

type OutboxEvent struct {
	ID            string     `gorm:"column:id;type:varchar(36);primaryKey"`
	RequestID     string     `gorm:"column:request_id;type:varchar(64)"`
	AggregateType string     `gorm:"column:aggregate_type;type:varchar(50);not null"`
	AggregateID   string     `gorm:"column:aggregate_id;type:varchar(64);not null"`
	EventType     string     `gorm:"column:event_type;type:varchar(100);not null"`
	Topic         string     `gorm:"column:topic;type:varchar(150);not null"`
	Payload       []byte     `gorm:"column:payload;not null"`
	Status        string     `gorm:"column:status;type:varchar(20);not null;index:idx_outbox_status_created,priority:1"`
	RetryCount    int        `gorm:"column:retry_count;not null;default:0"`
	NextRetryAt   *time.Time `gorm:"column:next_retry_at"`
	ErrorMessage  *string    `gorm:"column:error_message;type:varchar(500)"`
	ProcessedAt   *time.Time `gorm:"column:processed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;index:idx_outbox_status_created,priority:2"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, retryCount int, reason string) error
}

type outboxRepository struct {
	db  *gorm.DB
	tx  *sql.Tx
	now func() time.Time
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db, now: time.Now}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx, now: r.now}
}

func (r *outboxRepository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	return r.conn(ctx).Create(&event).Error
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	events := make([]OutboxEvent, 0, limit)
	err := r.conn(ctx).
		Where("status IN ?", []string{OutboxStatusPending, OutboxStatusFailed}).
		Where("next_retry_at IS NULL OR next_retry_at <= ?", r.now().UTC()).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	now := r.now().UTC()
	return r.conn(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusSent,
			"processed_at":  now,
			"error_message": nil,
			"updated_at":    now,
		}).Error
}

// MarkFailed schedules the next attempt with a linear back-off capped at maxRetrySteps.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, retryCount int, reason string) error {
	if len(reason) > maxErrorMessage {
		reason = reason[:maxErrorMessage]
	}
	now := r.now().UTC()
	return r.conn(ctx).
		Model(&OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        OutboxStatusFailed,
			"retry_count":   gorm.Expr("retry_count + 1"),
			"error_message": reason,
			"next_retry_at": now.Add(NextRetryDelay(retryCount)),
			"updated_at":    now,
		}).Error
}

func NextRetryDelay(retryCount int) time.Duration {
	steps := retryCount + 1
	if steps > maxRetrySteps {
		steps = maxRetrySteps
	}
	return time.Duration(steps) * retryStep
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
