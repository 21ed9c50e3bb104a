package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance"
	attendanceerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/datetime"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type ledger struct {
	db      *gorm.DB
	repo    attendance.Repository
	service attendance.Service
	empID   uuid.UUID
	now     time.Time
}

func newLedger(t *testing.T) *ledger {
	t.Helper()

	db := testdb.Open(t, &employee.Employee{}, &attendance.AttendanceRecord{})
	emp := &employee.Employee{ID: uuid.New(), Name: "Asha Rao", EmpCode: "E007", Password: "x", PIN: "7777"}
	require.NoError(t, db.Create(emp).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	l := &ledger{db: db, repo: attendance.NewRepository(db), empID: emp.ID, now: punchTime}
	clock := datetime.ClockFunc(func() time.Time { return l.now })
	l.service = attendance.NewService(sqlDB, l.repo, nil, nil, nil, clock)
	return l
}

func (l *ledger) count(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, l.db.Model(&attendance.AttendanceRecord{}).Where("employee_id = ?", l.empID).Count(&n).Error)
	return n
}

func (l *ledger) punch(t *testing.T, punchType string) (attendance.PunchResult, error) {
	t.Helper()
	return l.service.RecordPunch(context.Background(), l.empID.String(), attendance.PunchRequest{
		Type:     punchType,
		Location: &attendance.GPSLocation{Address: "Office", Latitude: 1, Longitude: 2},
	})
}

func TestLedger_PunchInTwiceKeepsFirstRecord(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	_, err := l.punch(t, "in")
	require.NoError(t, err)
	first, err := l.repo.FindByEmployeeAndDate(ctx, l.empID, punchDay)
	require.NoError(t, err)

	l.now = punchTime.Add(30 * time.Minute)
	result, err := l.punch(t, "in")

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyPunchedIn)
	assert.False(t, result.Success)
	assert.Equal(t, int64(1), l.count(t))

	again, err := l.repo.FindByEmployeeAndDate(ctx, l.empID, punchDay)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, first.TimeIn.Equal(*again.TimeIn))
}

func TestLedger_PunchOutWithoutPunchInCreatesNothing(t *testing.T) {
	l := newLedger(t)

	_, err := l.punch(t, "out")

	assert.ErrorIs(t, err, attendanceerrors.ErrNotPunchedInOrAlreadyOut)
	assert.Zero(t, l.count(t))
}

func TestLedger_InAndOutTimes(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	_, err := l.punch(t, "in")
	require.NoError(t, err)

	l.now = time.Date(2024, 1, 10, 17, 30, 0, 0, time.UTC)
	result, err := l.punch(t, "out")
	require.NoError(t, err)
	assert.Equal(t, "05:30 PM", result.Time)

	today, err := l.service.Today(ctx, l.empID.String())
	require.NoError(t, err)
	assert.Equal(t, "09:00 AM", *today.TimeIn)
	assert.Equal(t, "05:30 PM", *today.TimeOut)

	_, err = l.punch(t, "out")
	assert.ErrorIs(t, err, attendanceerrors.ErrNotPunchedInOrAlreadyOut)

	history, err := l.service.History(ctx, l.empID.String())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Office|1.000000|2.000000", *history[0].LocationOut)
}

func TestLedger_AbsenceSupersedesPresence(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	_, err := l.punch(t, "in")
	require.NoError(t, err)

	resp, err := l.service.MarkAbsent(ctx, l.empID.String(), attendance.MarkAbsentRequest{Reason: "sent home"}, true)
	require.NoError(t, err)
	assert.True(t, resp.Absent)
	assert.Nil(t, resp.TimeIn)
	assert.Nil(t, resp.TimeOut)

	rec, err := l.repo.FindByEmployeeAndDate(ctx, l.empID, punchDay)
	require.NoError(t, err)
	assert.True(t, rec.Absent)
	assert.Nil(t, rec.TimeIn)
	assert.Nil(t, rec.TimeOut)
	assert.Equal(t, "sent home", *rec.Reason)
	assert.Equal(t, int64(1), l.count(t))

	// no clearing path: the absence still blocks a punch-in
	_, err = l.punch(t, "in")
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyPunchedIn)
}

func TestLedger_UpsertAbsenceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	require.NoError(t, l.repo.UpsertAbsence(ctx, l.empID, punchDay, "sick"))
	once, err := l.repo.FindByEmployeeAndDate(ctx, l.empID, punchDay)
	require.NoError(t, err)

	require.NoError(t, l.repo.UpsertAbsence(ctx, l.empID, punchDay, "sick"))
	twice, err := l.repo.FindByEmployeeAndDate(ctx, l.empID, punchDay)
	require.NoError(t, err)

	assert.Equal(t, int64(1), l.count(t))
	assert.Equal(t, once.ID, twice.ID)
	assert.Equal(t, once.Absent, twice.Absent)
	assert.Equal(t, *once.Reason, *twice.Reason)
	assert.Nil(t, twice.TimeIn)
}

func TestLedger_OneRowPerEmployeeAndDate(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	in := punchTime
	err := l.repo.InsertPunchIn(ctx, &attendance.AttendanceRecord{ID: uuid.New(), EmployeeID: l.empID, AttendanceDate: punchDay, TimeIn: &in})
	require.NoError(t, err)

	err = l.repo.InsertPunchIn(ctx, &attendance.AttendanceRecord{ID: uuid.New(), EmployeeID: l.empID, AttendanceDate: punchDay, TimeIn: &in})
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyPunchedIn)

	require.NoError(t, l.repo.UpsertAbsence(ctx, l.empID, punchDay, "x"))
	require.NoError(t, l.repo.UpsertAbsence(ctx, l.empID, punchDay.AddDate(0, 0, 1), "y"))
	assert.Equal(t, int64(2), l.count(t))
}

func TestLedger_SetPunchOutGuards(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	require.NoError(t, l.repo.UpsertAbsence(ctx, l.empID, punchDay, "x"))
	rec, err := l.repo.FindByEmployeeAndDate(ctx, l.empID, punchDay)
	require.NoError(t, err)

	err = l.repo.SetPunchOut(ctx, rec.ID, punchTime, "Office|1|2")
	assert.ErrorIs(t, err, attendanceerrors.ErrNotPunchedInOrAlreadyOut)

	err = l.repo.SetAuthMethod(ctx, uuid.New(), attendance.AuthMethodBiometric)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLedger_MarkAbsentForUnknownEmployee(t *testing.T) {
	l := newLedger(t)

	_, err := l.service.MarkAbsent(context.Background(), uuid.NewString(), attendance.MarkAbsentRequest{}, true)

	assert.Error(t, err)
	assert.Zero(t, l.count(t))
}

func TestLedger_EmployeeDeleteCascades(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	require.NoError(t, l.repo.UpsertAbsence(ctx, l.empID, punchDay, "x"))
	require.NoError(t, l.db.Delete(&employee.Employee{}, "id = ?", l.empID).Error)

	assert.Zero(t, l.count(t))
}
