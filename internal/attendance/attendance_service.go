package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee"
	employeeerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/events"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/geo"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/contextutil"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/datetime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultSelfAbsentReason  = "No reason given"
	DefaultAdminAbsentReason = "Not specified"

	punchSavedMessage = "Saved"
)

// Directory resolves kiosk and device identities to employees.
type Directory interface {
	LookupByPIN(ctx context.Context, pin string) (employee.EmployeeResponse, error)
	LookupByCode(ctx context.Context, code string) (employee.EmployeeResponse, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	RecordPunch(ctx context.Context, employeeID string, req PunchRequest) (PunchResult, error)
	RecordPinPunch(ctx context.Context, req PinPunchRequest) (PunchResult, error)
	RecordBiometricPunch(ctx context.Context, req BiometricPunchRequest) (PunchResult, error)
	MarkAbsent(ctx context.Context, employeeID string, req MarkAbsentRequest, byAdmin bool) (AttendanceResponse, error)
	Today(ctx context.Context, employeeID string) (TodayResponse, error)
	History(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	directory Directory
	resolver  geo.Resolver
	clock     datetime.Clock
	logger    *zap.Logger
}

// NewService wires the punch recorder. outbox and resolver may be nil: without
// an outbox no events are written, without a resolver IP punches get UnknownLocation.
func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	directory Directory,
	resolver geo.Resolver,
	clock datetime.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if clock == nil {
		clock = datetime.SystemClock(time.Local)
	}
	return &service{
		db:        db,
		repo:      repo,
		outbox:    outbox,
		directory: directory,
		resolver:  resolver,
		clock:     clock,
		logger:    l,
	}
}

func (s *service) RecordPunch(ctx context.Context, employeeID string, req PunchRequest) (PunchResult, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return failedPunch(PunchResult{}, employeeerrors.ErrInvalidEmployeeID)
	}
	return s.recordPunch(ctx, empID, req.Type, req.Location, req.ClientIP, "")
}

func (s *service) RecordPinPunch(ctx context.Context, req PinPunchRequest) (PunchResult, error) {
	if _, err := normalizePunchType(req.Type); err != nil {
		return failedPunch(PunchResult{}, err)
	}

	emp, err := s.directory.LookupByPIN(ctx, req.PIN)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) || errors.Is(err, employeeerrors.ErrInvalidPIN) {
			return failedPunch(PunchResult{}, attendanceerrors.ErrInvalidPIN)
		}
		return failedPunch(PunchResult{}, err)
	}

	empID, err := uuid.Parse(emp.ID)
	if err != nil {
		return failedPunch(PunchResult{}, employeeerrors.ErrInvalidEmployeeID)
	}
	return s.recordPunch(ctx, empID, req.Type, req.Location, req.ClientIP, "")
}

func (s *service) RecordBiometricPunch(ctx context.Context, req BiometricPunchRequest) (PunchResult, error) {
	if _, err := normalizePunchType(req.Type); err != nil {
		return failedPunch(PunchResult{}, err)
	}

	emp, err := s.directory.LookupByCode(ctx, req.EmpCode)
	if err != nil {
		return failedPunch(PunchResult{}, err)
	}

	empID, err := uuid.Parse(emp.ID)
	if err != nil {
		return failedPunch(PunchResult{}, employeeerrors.ErrInvalidEmployeeID)
	}
	return s.recordPunch(ctx, empID, req.Type, nil, req.ClientIP, AuthMethodBiometric)
}

// recordPunch computes time and location first so they are reported even when
// the ledger rejects the punch.
func (s *service) recordPunch(
	ctx context.Context,
	empID uuid.UUID,
	rawType string,
	gps *GPSLocation,
	clientIP string,
	authMethod string,
) (PunchResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	punchType, err := normalizePunchType(rawType)
	if err != nil {
		return failedPunch(PunchResult{}, err)
	}

	now := s.clock.Now()
	location := s.resolveLocation(ctx, gps, clientIP)
	result := PunchResult{
		Time:     datetime.FormatClock(now, nil),
		Location: location,
	}

	if err := s.applyPunch(ctx, empID, punchType, now, location, authMethod); err != nil {
		log.Warn("record punch rejected",
			zap.String("employee_id", empID.String()),
			zap.String("type", punchType),
			zap.Error(err),
		)
		return failedPunch(result, err)
	}

	log.Info("record punch success",
		zap.String("employee_id", empID.String()),
		zap.String("type", punchType),
		zap.String("location", location),
	)

	result.Success = true
	result.Message = punchSavedMessage
	return result, nil
}

func (s *service) applyPunch(
	ctx context.Context,
	empID uuid.UUID,
	punchType string,
	now time.Time,
	location string,
	authMethod string,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	today := datetime.DateOf(now)

	existing, err := qtx.FindByEmployeeAndDate(ctx, empID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	found := err == nil

	var recordID uuid.UUID
	switch punchType {
	case PunchIn:
		// an absence row blocks punching in as well
		if found {
			return attendanceerrors.ErrAlreadyPunchedIn
		}
		rec := &AttendanceRecord{
			ID:             uuid.New(),
			EmployeeID:     empID,
			AttendanceDate: today,
			TimeIn:         &now,
			LocationIn:     &location,
		}
		if err := qtx.InsertPunchIn(ctx, rec); err != nil {
			return err
		}
		recordID = rec.ID
	case PunchOut:
		if !found || existing.TimeIn == nil || existing.TimeOut != nil {
			return attendanceerrors.ErrNotPunchedInOrAlreadyOut
		}
		if err := qtx.SetPunchOut(ctx, existing.ID, now, location); err != nil {
			return err
		}
		recordID = existing.ID
	}

	if authMethod != "" {
		if err := qtx.SetAuthMethod(ctx, recordID, authMethod); err != nil {
			return err
		}
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			"attendance",
			empID.String(),
			events.PunchRecordedType,
			events.PunchRecordedTopic,
			events.PunchRecordedEvent{
				EventType:      events.PunchRecordedType,
				EmployeeID:     empID.String(),
				AttendanceDate: datetime.FormatDate(today),
				PunchType:      punchType,
				Location:       location,
				AuthMethod:     authMethod,
				OccurredAt:     now.UTC(),
			},
		)
		if err != nil {
			return err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// resolveLocation never fails; a broken lookup degrades to UnknownLocation.
func (s *service) resolveLocation(ctx context.Context, gps *GPSLocation, clientIP string) string {
	if gps != nil {
		return FormatGPSLocation(*gps)
	}
	if s.resolver == nil {
		return UnknownLocation
	}

	loc, err := s.resolver.Resolve(ctx, clientIP)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("geolocation failed, using placeholder",
			zap.String("ip", clientIP),
			zap.Error(err),
		)
		return UnknownLocation
	}
	return FormatGeoLocation(loc)
}

func (s *service) MarkAbsent(ctx context.Context, employeeID string, req MarkAbsentRequest, byAdmin bool) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	date := datetime.DateOf(s.clock.Now())
	if v := strings.TrimSpace(req.Date); v != "" {
		if date, err = datetime.ParseDate(v); err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
		}
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = DefaultSelfAbsentReason
		if byAdmin {
			reason = DefaultAdminAbsentReason
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("mark absent begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpsertAbsence(ctx, empID, date, reason); err != nil {
		log.Error("mark absent failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	rec, err := qtx.FindByEmployeeAndDate(ctx, empID, date)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("mark absent commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("mark absent success",
		zap.String("employee_id", employeeID),
		zap.String("date", datetime.FormatDate(date)),
		zap.Bool("by_admin", byAdmin),
	)
	return s.mapToResponse(*rec), nil
}

func (s *service) Today(ctx context.Context, employeeID string) (TodayResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return TodayResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	today := datetime.DateOf(s.clock.Now())
	resp := TodayResponse{Date: datetime.FormatDate(today)}

	rec, err := s.repo.FindByEmployeeAndDate(ctx, empID, today)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resp, nil
	}
	if err != nil {
		s.logger.Error("load today attendance failed", zap.Error(err))
		return TodayResponse{}, err
	}

	zone := s.zone()
	resp.TimeIn = datetime.FormatClockPtr(rec.TimeIn, zone)
	resp.TimeOut = datetime.FormatClockPtr(rec.TimeOut, zone)
	resp.Absent = rec.Absent
	resp.Reason = rec.Reason
	return resp, nil
}

func (s *service) History(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindByEmployee(ctx, empID)
	if err != nil {
		s.logger.Error("load attendance history failed", zap.Error(err))
		return nil, err
	}

	out := make([]AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.mapToResponse(r))
	}
	return out, nil
}

// zone is the display location for stored punch times.
func (s *service) zone() *time.Location {
	return s.clock.Now().Location()
}

func (s *service) mapToResponse(r AttendanceRecord) AttendanceResponse {
	zone := s.zone()
	return AttendanceResponse{
		ID:          r.ID.String(),
		EmployeeID:  r.EmployeeID.String(),
		Date:        datetime.FormatDate(r.AttendanceDate),
		TimeIn:      datetime.FormatClockPtr(r.TimeIn, zone),
		TimeOut:     datetime.FormatClockPtr(r.TimeOut, zone),
		LocationIn:  r.LocationIn,
		LocationOut: r.LocationOut,
		Absent:      r.Absent,
		Reason:      r.Reason,
		AuthMethod:  r.AuthMethod,
	}
}

func normalizePunchType(v string) (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(v)); t {
	case PunchIn, PunchOut:
		return t, nil
	default:
		return "", attendanceerrors.ErrInvalidPunchType
	}
}

// failedPunch keeps the computed time and location and fills the message from err.
func failedPunch(result PunchResult, err error) (PunchResult, error) {
	result.Success = false
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		result.Message = appErr.Message
	} else {
		result.Message = apperror.ErrInternal.Message
	}
	return result, err
}
