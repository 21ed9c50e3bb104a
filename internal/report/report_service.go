package report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance"
	employeeerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/leave"
	reporterrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/report/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/datetime"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	SummaryKeyPrefix = "report:summary:"

	trendDays          = 7
	recentLeaveLimit   = 10
	summaryTTL         = 5 * time.Minute
	monthLayout        = "2006-01"
	monthTitleLayout   = "January 2006"
	trendLabelLayout   = "Jan 02"
	weekdayLabelLayout = "Mon"
)

func GetSummaryKey(date time.Time) string {
	return SummaryKeyPrefix + datetime.FormatDate(date)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	AdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
	Summary(ctx context.Context) (SummaryResponse, error)
	EmployeeDashboard(ctx context.Context, employeeID string) (EmployeeDashboardResponse, error)
	MonthlyReport(ctx context.Context, month string) (MonthlyReportResponse, error)
	ExportMonthly(ctx context.Context, month string) ([]byte, string, error)
	History(ctx context.Context, employeeID string) (HistoryResponse, error)
	InvalidateSummary(ctx context.Context, date time.Time) error
}

type service struct {
	repo       Repository
	attendance attendance.Service
	leave      leave.Service
	rdb        *redis.Client
	sf         *singleflight.Group
	clock      datetime.Clock
	logger     *zap.Logger
}

// NewService builds the read side. rdb may be nil, in which case summaries are not cached.
func NewService(
	repo Repository,
	attendanceService attendance.Service,
	leaveService leave.Service,
	rdb *redis.Client,
	clock datetime.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if clock == nil {
		clock = datetime.SystemClock(time.Local)
	}
	return &service{
		repo:       repo,
		attendance: attendanceService,
		leave:      leaveService,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		clock:      clock,
		logger:     l,
	}
}

func (s *service) AdminDashboard(ctx context.Context) (AdminDashboardResponse, error) {
	today := datetime.DateOf(s.clock.Now())

	counts, err := s.repo.PunchInCounts(ctx, trendDays)
	if err != nil {
		s.logger.Error("load punch-in trend failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}

	roster, err := s.repo.Roster(ctx, today)
	if err != nil {
		s.logger.Error("load roster failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}

	absences, err := s.repo.AbsenceHistory(ctx)
	if err != nil {
		s.logger.Error("load absence history failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}

	leaves, err := s.leave.GetRecent(ctx, recentLeaveLimit)
	if err != nil {
		return AdminDashboardResponse{}, err
	}

	resp := AdminDashboardResponse{
		Date:         datetime.FormatDate(today),
		Trend:        oldestFirst(counts, trendLabelLayout),
		Roster:       make([]RosterEntry, 0, len(roster)),
		Absences:     make([]AbsenceEntry, 0, len(absences)),
		RecentLeaves: leaves,
	}
	zone := s.zone()
	for _, r := range roster {
		resp.Roster = append(resp.Roster, mapRosterEntry(r, zone))
	}
	for _, a := range absences {
		resp.Absences = append(resp.Absences, AbsenceEntry{
			EmployeeName: a.EmployeeName,
			Date:         datetime.FormatDate(a.AttendanceDate),
			Reason:       a.Reason,
		})
	}
	return resp, nil
}

func (s *service) Summary(ctx context.Context) (SummaryResponse, error) {
	today := datetime.DateOf(s.clock.Now())
	cacheKey := GetSummaryKey(today)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp SummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := s.buildSummary(ctx, today)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, summaryTTL).Err(); err != nil {
					s.logger.Warn("cache report summary failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return SummaryResponse{}, err
	}
	return v.(SummaryResponse), nil
}

func (s *service) buildSummary(ctx context.Context, today time.Time) (SummaryResponse, error) {
	total, err := s.repo.CountEmployees(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return SummaryResponse{}, err
	}
	present, err := s.repo.CountPresent(ctx, today)
	if err != nil {
		s.logger.Error("count present failed", zap.Error(err))
		return SummaryResponse{}, err
	}
	counts, err := s.repo.RecordCounts(ctx, trendDays)
	if err != nil {
		s.logger.Error("load record trend failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	return SummaryResponse{
		Date:           datetime.FormatDate(today),
		TotalEmployees: total,
		Present:        present,
		Absent:         total - present,
		Trend:          oldestFirst(counts, trendLabelLayout),
	}, nil
}

// InvalidateSummary drops the cached summary for date. A no-op without redis.
func (s *service) InvalidateSummary(ctx context.Context, date time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, GetSummaryKey(datetime.DateOf(date))).Err()
}

func (s *service) EmployeeDashboard(ctx context.Context, employeeID string) (EmployeeDashboardResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return EmployeeDashboardResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	name, err := s.repo.EmployeeName(ctx, empID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeDashboardResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if err != nil {
		return EmployeeDashboardResponse{}, err
	}

	now := s.clock.Now()
	today, err := s.attendance.Today(ctx, employeeID)
	if err != nil {
		return EmployeeDashboardResponse{}, err
	}

	from := datetime.DateOf(now).AddDate(0, 0, -(trendDays - 1))
	counts, err := s.repo.EmployeeDayCounts(ctx, empID, from)
	if err != nil {
		s.logger.Error("load employee week failed", zap.String("employee_id", employeeID), zap.Error(err))
		return EmployeeDashboardResponse{}, err
	}

	active, err := s.leave.ActiveOn(ctx, employeeID, now)
	if err != nil {
		return EmployeeDashboardResponse{}, err
	}

	resp := EmployeeDashboardResponse{
		EmployeeID: employeeID,
		Name:       name,
		Date:       today.Date,
		TimeIn:     today.TimeIn,
		TimeOut:    today.TimeOut,
		Week:       mapDayCounts(counts, weekdayLabelLayout),
	}
	if active != nil {
		reason := active.Reason
		resp.LeaveReason = &reason
	}
	return resp, nil
}

func (s *service) MonthlyReport(ctx context.Context, month string) (MonthlyReportResponse, error) {
	ref := s.clock.Now()
	if month != "" {
		parsed, err := time.ParseInLocation(monthLayout, month, time.UTC)
		if err != nil {
			return MonthlyReportResponse{}, reporterrors.ErrInvalidMonth
		}
		ref = parsed
	}
	first, last := datetime.MonthBounds(ref)

	rows, err := s.repo.MonthlyRows(ctx, first, last)
	if err != nil {
		s.logger.Error("load monthly report failed", zap.String("month", first.Format(monthLayout)), zap.Error(err))
		return MonthlyReportResponse{}, err
	}

	resp := MonthlyReportResponse{
		Month:   first.Format(monthTitleLayout),
		From:    datetime.FormatDate(first),
		To:      datetime.FormatDate(last),
		Records: make([]MonthlyRow, 0, len(rows)),
	}
	zone := s.zone()
	for _, r := range rows {
		resp.Records = append(resp.Records, mapMonthlyRow(r, zone))
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, employeeID string) (HistoryResponse, error) {
	records, err := s.attendance.History(ctx, employeeID)
	if err != nil {
		return HistoryResponse{}, err
	}
	leaves, err := s.leave.GetByEmployee(ctx, employeeID)
	if err != nil {
		return HistoryResponse{}, err
	}
	return HistoryResponse{Attendance: records, Leave: leaves}, nil
}

func (s *service) zone() *time.Location {
	return s.clock.Now().Location()
}

// oldestFirst flips newest-first counts into chart order.
func oldestFirst(rows []DateCountRow, labelLayout string) []DayCount {
	out := make([]DayCount, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, mapDayCount(rows[i], labelLayout))
	}
	return out
}

func mapDayCounts(rows []DateCountRow, labelLayout string) []DayCount {
	out := make([]DayCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapDayCount(r, labelLayout))
	}
	return out
}

func mapDayCount(r DateCountRow, labelLayout string) DayCount {
	return DayCount{
		Date:  datetime.FormatDate(r.AttendanceDate),
		Label: r.AttendanceDate.Format(labelLayout),
		Count: r.Total,
	}
}

func mapRosterEntry(r RosterRow, zone *time.Location) RosterEntry {
	return RosterEntry{
		EmployeeID:  r.EmployeeID.String(),
		Name:        r.Name,
		EmpCode:     r.EmpCode,
		TimeIn:      datetime.FormatClockPtr(r.TimeIn, zone),
		TimeOut:     datetime.FormatClockPtr(r.TimeOut, zone),
		LocationIn:  r.LocationIn,
		LocationOut: r.LocationOut,
		Absent:      r.Absent != nil && *r.Absent,
		Reason:      r.Reason,
	}
}

func mapMonthlyRow(r RosterRow, zone *time.Location) MonthlyRow {
	row := MonthlyRow{
		EmployeeID:  r.EmployeeID.String(),
		Name:        r.Name,
		Date:        Missing,
		TimeIn:      orMissing(datetime.FormatClockPtr(r.TimeIn, zone)),
		TimeOut:     orMissing(datetime.FormatClockPtr(r.TimeOut, zone)),
		LocationIn:  orMissing(r.LocationIn),
		LocationOut: orMissing(r.LocationOut),
		Absent:      "No",
		Reason:      orMissing(r.Reason),
	}
	if r.AttendanceDate != nil {
		row.Date = datetime.FormatDate(*r.AttendanceDate)
	}
	if r.Absent != nil && *r.Absent {
		row.Absent = "Yes"
	}
	return row
}

func orMissing(v *string) string {
	if v == nil || *v == "" {
		return Missing
	}
	return *v
}
