package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/leave"
	leaveerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/leave/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/messaging/kafka"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/datetime"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// failingLedger fails the upsert for one date so the rollback path can be observed.
type failingLedger struct {
	attendance.Repository
	failOn time.Time
}

func (f failingLedger) WithTx(tx *sql.Tx) attendance.Repository {
	return failingLedger{Repository: f.Repository.WithTx(tx), failOn: f.failOn}
}

func (f failingLedger) UpsertAbsence(ctx context.Context, employeeID uuid.UUID, date time.Time, reason string) error {
	if date.Equal(f.failOn) {
		return errors.New("disk I/O error")
	}
	return f.Repository.UpsertAbsence(ctx, employeeID, date, reason)
}

type reconciler struct {
	db     *gorm.DB
	repo   leave.Repository
	ledger attendance.Repository
	emp    *employee.Employee
}

func newReconciler(t *testing.T) *reconciler {
	t.Helper()
	db := testdb.Open(t, &employee.Employee{}, &attendance.AttendanceRecord{}, &leave.LeaveRecord{}, &kafka.OutboxEvent{})
	emp := &employee.Employee{ID: uuid.New(), Name: "Asha Rao", EmpCode: "E007", Password: "x", PIN: "7777"}
	require.NoError(t, db.Create(emp).Error)
	return &reconciler{db: db, repo: leave.NewRepository(db), ledger: attendance.NewRepository(db), emp: emp}
}

func (r *reconciler) service(t *testing.T, ledger attendance.Repository) leave.Service {
	t.Helper()
	sqlDB, err := r.db.DB()
	require.NoError(t, err)
	clock := datetime.ClockFunc(func() time.Time { return today })
	return leave.NewService(sqlDB, r.repo, ledger, kafka.NewOutboxRepository(r.db), clock)
}

func (r *reconciler) counts(t *testing.T) (leaves, absences, outbox int64) {
	t.Helper()
	require.NoError(t, r.db.Model(&leave.LeaveRecord{}).Count(&leaves).Error)
	require.NoError(t, r.db.Model(&attendance.AttendanceRecord{}).Where("absent = ?", true).Count(&absences).Error)
	require.NoError(t, r.db.Model(&kafka.OutboxEvent{}).Count(&outbox).Error)
	return
}

func TestReconciler_CustomRangeMarksEachDay(t *testing.T) {
	ctx := context.Background()
	r := newReconciler(t)

	_, err := r.service(t, r.ledger).ApplyLeave(ctx, leave.ApplyLeaveRequest{
		EmployeeID: r.emp.ID.String(),
		Type:       "custom",
		FromDate:   "2024-01-10",
		ToDate:     "2024-01-12",
		Reason:     "sick",
	})
	require.NoError(t, err)

	leaves, absences, outbox := r.counts(t)
	assert.Equal(t, int64(1), leaves)
	assert.Equal(t, int64(3), absences)
	assert.Equal(t, int64(1), outbox)

	for _, d := range []int{10, 11, 12} {
		rec, err := r.ledger.FindByEmployeeAndDate(ctx, r.emp.ID, day(d))
		require.NoError(t, err)
		assert.True(t, rec.Absent)
		assert.Equal(t, "sick", *rec.Reason)
	}
}

func TestReconciler_ReversedRangeLogsLeaveOnly(t *testing.T) {
	r := newReconciler(t)

	_, err := r.service(t, r.ledger).ApplyLeave(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: r.emp.ID.String(),
		Type:       "custom",
		FromDate:   "2024-01-12",
		ToDate:     "2024-01-10",
		Reason:     "sick",
	})
	require.NoError(t, err)

	leaves, absences, _ := r.counts(t)
	assert.Equal(t, int64(1), leaves)
	assert.Zero(t, absences)
}

func TestReconciler_FailureRollsBackEverything(t *testing.T) {
	r := newReconciler(t)
	ledger := failingLedger{Repository: r.ledger, failOn: day(11)}

	_, err := r.service(t, ledger).ApplyLeave(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: r.emp.ID.String(),
		Type:       "custom",
		FromDate:   "2024-01-10",
		ToDate:     "2024-01-12",
		Reason:     "sick",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveApplicationFailed)

	leaves, absences, outbox := r.counts(t)
	assert.Zero(t, leaves)
	assert.Zero(t, absences)
	assert.Zero(t, outbox)
}

func TestReconciler_QuickLeaveOverPresence(t *testing.T) {
	ctx := context.Background()
	r := newReconciler(t)

	in := today
	require.NoError(t, r.ledger.InsertPunchIn(ctx, &attendance.AttendanceRecord{
		ID: uuid.New(), EmployeeID: r.emp.ID, AttendanceDate: day(10), TimeIn: &in,
	}))

	_, err := r.service(t, r.ledger).ApplyLeave(ctx, leave.ApplyLeaveRequest{EmployeeID: r.emp.ID.String(), Type: "quick"})
	require.NoError(t, err)

	rec, err := r.ledger.FindByEmployeeAndDate(ctx, r.emp.ID, day(10))
	require.NoError(t, err)
	assert.True(t, rec.Absent)
	assert.Nil(t, rec.TimeIn)
	assert.Equal(t, leave.DefaultLeaveReason, *rec.Reason)
}

func TestLeaveRepository_Queries(t *testing.T) {
	ctx := context.Background()
	r := newReconciler(t)

	for _, l := range []leave.LeaveRecord{
		{EmployeeID: r.emp.ID, FromDate: day(1), ToDate: day(3), Reason: "a", LeaveType: leave.TypeCustom},
		{EmployeeID: r.emp.ID, FromDate: day(10), ToDate: day(12), Reason: "b", LeaveType: leave.TypeCustom},
	} {
		l := l
		require.NoError(t, r.repo.Create(ctx, &l))
	}

	mine, err := r.repo.FindByEmployee(ctx, r.emp.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "b", mine[0].Reason)
	assert.Greater(t, mine[0].ID, mine[1].ID)

	recent, err := r.repo.FindRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Asha Rao", recent[0].EmployeeName)
	assert.Equal(t, "b", recent[0].Reason)

	active, err := r.repo.FindActiveOn(ctx, r.emp.ID, day(11))
	require.NoError(t, err)
	assert.Equal(t, "b", active.Reason)

	_, err = r.repo.FindActiveOn(ctx, r.emp.ID, day(5))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
