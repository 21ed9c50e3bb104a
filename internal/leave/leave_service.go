package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance"
	employeeerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/events"
	leaveerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/leave/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/contextutil"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/datetime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const recentLimit = 10

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	GetRecent(ctx context.Context, limit int) ([]LeaveResponse, error)
	ActiveOn(ctx context.Context, employeeID string, date time.Time) (*LeaveResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	attendance attendance.Repository
	outbox     kafka.OutboxRepository
	clock      datetime.Clock
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	attendanceRepo attendance.Repository,
	outbox kafka.OutboxRepository,
	clock datetime.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clock == nil {
		clock = datetime.SystemClock(time.Local)
	}
	return &service{
		db:         db,
		repo:       repo,
		attendance: attendanceRepo,
		outbox:     outbox,
		clock:      clock,
		logger:     l,
	}
}

type leavePlan struct {
	employeeID uuid.UUID
	leaveType  string
	from       time.Time
	to         time.Time
	reason     string
}

func (s *service) plan(req ApplyLeaveRequest) (leavePlan, error) {
	p := leavePlan{leaveType: strings.ToLower(strings.TrimSpace(req.Type))}

	switch p.leaveType {
	case TypeQuick:
		today := datetime.DateOf(s.clock.Now())
		p.from, p.to = today, today
		p.reason = strings.TrimSpace(req.Reason)
		if p.reason == "" {
			p.reason = DefaultLeaveReason
		}
	case TypeCustom:
		from := strings.TrimSpace(req.FromDate)
		to := strings.TrimSpace(req.ToDate)
		p.reason = strings.TrimSpace(req.Reason)
		if from == "" || to == "" || p.reason == "" {
			return leavePlan{}, leaveerrors.ErrMissingField
		}
		var err error
		if p.from, err = datetime.ParseDate(from); err != nil {
			return leavePlan{}, leaveerrors.InvalidDates(err)
		}
		if p.to, err = datetime.ParseDate(to); err != nil {
			return leavePlan{}, leaveerrors.InvalidDates(err)
		}
	default:
		return leavePlan{}, leaveerrors.ErrInvalidLeaveType
	}

	if strings.TrimSpace(req.EmployeeID) == "" {
		return leavePlan{}, leaveerrors.ErrEmployeeIDRequired
	}
	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return leavePlan{}, employeeerrors.ErrInvalidEmployeeID
	}
	p.employeeID = empID
	return p, nil
}

// ApplyLeave appends the leave record and marks every covered day absent in one
// transaction. A reversed range is kept as a record with no days marked.
func (s *service) ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	p, err := s.plan(req)
	if err != nil {
		log.Warn("apply leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ApplicationFailed(err)
	}
	defer tx.Rollback()

	rec := &LeaveRecord{
		EmployeeID: p.employeeID,
		FromDate:   p.from,
		ToDate:     p.to,
		Reason:     p.reason,
		LeaveType:  p.leaveType,
	}
	if err := s.repo.WithTx(tx).Create(ctx, rec); err != nil {
		log.Error("apply leave persist failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return LeaveResponse{}, leaveerrors.ApplicationFailed(err)
	}

	days := datetime.Days(p.from, p.to)
	if len(days) == 0 {
		log.Warn("leave range is empty, no days marked",
			zap.String("employee_id", req.EmployeeID),
			zap.String("from_date", datetime.FormatDate(p.from)),
			zap.String("to_date", datetime.FormatDate(p.to)),
		)
	}

	atx := s.attendance.WithTx(tx)
	for _, day := range days {
		if err := atx.UpsertAbsence(ctx, p.employeeID, day, p.reason); err != nil {
			log.Error("apply leave mark absent failed",
				zap.String("employee_id", req.EmployeeID),
				zap.String("date", datetime.FormatDate(day)),
				zap.Error(err),
			)
			return LeaveResponse{}, leaveerrors.ApplicationFailed(err)
		}
	}

	if s.outbox != nil {
		if err := s.writeEvent(ctx, tx, rec, len(days)); err != nil {
			log.Error("apply leave outbox failed", zap.Error(err))
			return LeaveResponse{}, leaveerrors.ApplicationFailed(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, leaveerrors.ApplicationFailed(err)
	}

	log.Info("apply leave success",
		zap.Uint64("leave_id", rec.ID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("type", p.leaveType),
		zap.Int("days_marked", len(days)),
	)

	resp := mapToResponse(*rec)
	resp.DaysMarked = len(days)
	return resp, nil
}

func (s *service) writeEvent(ctx context.Context, tx *sql.Tx, rec *LeaveRecord, daysMarked int) error {
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"leave",
		rec.EmployeeID.String(),
		events.LeaveAppliedType,
		events.LeaveAppliedTopic,
		events.LeaveAppliedEvent{
			EventType:  events.LeaveAppliedType,
			LeaveID:    rec.ID,
			EmployeeID: rec.EmployeeID.String(),
			LeaveType:  rec.LeaveType,
			FromDate:   datetime.FormatDate(rec.FromDate),
			ToDate:     datetime.FormatDate(rec.ToDate),
			Reason:     rec.Reason,
			DaysMarked: daysMarked,
			OccurredAt: s.clock.Now().UTC(),
		},
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindByEmployee(ctx, empID)
	if err != nil {
		s.logger.Error("list employee leaves failed", zap.Error(err))
		return nil, err
	}

	out := make([]LeaveResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapToResponse(r))
	}
	return out, nil
}

func (s *service) GetRecent(ctx context.Context, limit int) ([]LeaveResponse, error) {
	if limit <= 0 {
		limit = recentLimit
	}

	rows, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		s.logger.Error("list recent leaves failed", zap.Error(err))
		return nil, err
	}

	out := make([]LeaveResponse, 0, len(rows))
	for _, r := range rows {
		resp := mapToResponse(r.LeaveRecord)
		resp.EmployeeName = r.EmployeeName
		out = append(out, resp)
	}
	return out, nil
}

// ActiveOn returns nil when no leave covers date.
func (s *service) ActiveOn(ctx context.Context, employeeID string, date time.Time) (*LeaveResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	rec, err := s.repo.FindActiveOn(ctx, empID, datetime.DateOf(date))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	resp := mapToResponse(*rec)
	return &resp, nil
}

func mapToResponse(l LeaveRecord) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		FromDate:   datetime.FormatDate(l.FromDate),
		ToDate:     datetime.FormatDate(l.ToDate),
		Reason:     l.Reason,
	}
	if !l.CreatedAt.IsZero() {
		resp.CreatedAt = l.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
