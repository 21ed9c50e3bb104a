package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DateCountRow struct {
	AttendanceDate time.Time `gorm:"column:attendance_date"`
	Total          int64     `gorm:"column:total"`
}

// RosterRow is an employee left-joined to one day's attendance; the
// attendance columns are nil when the employee has no record.
type RosterRow struct {
	EmployeeID     uuid.UUID  `gorm:"column:employee_id"`
	Name           string     `gorm:"column:name"`
	EmpCode        string     `gorm:"column:emp_code"`
	AttendanceDate *time.Time `gorm:"column:attendance_date"`
	TimeIn         *time.Time `gorm:"column:time_in"`
	TimeOut        *time.Time `gorm:"column:time_out"`
	LocationIn     *string    `gorm:"column:location_in"`
	LocationOut    *string    `gorm:"column:location_out"`
	Absent         *bool      `gorm:"column:absent"`
	Reason         *string    `gorm:"column:reason"`
}

type AbsenceRow struct {
	EmployeeName   string    `gorm:"column:employee_name"`
	AttendanceDate time.Time `gorm:"column:attendance_date"`
	Reason         *string   `gorm:"column:reason"`
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	PunchInCounts(ctx context.Context, limit int) ([]DateCountRow, error)
	RecordCounts(ctx context.Context, limit int) ([]DateCountRow, error)
	EmployeeDayCounts(ctx context.Context, employeeID uuid.UUID, from time.Time) ([]DateCountRow, error)
	Roster(ctx context.Context, date time.Time) ([]RosterRow, error)
	MonthlyRows(ctx context.Context, from, to time.Time) ([]RosterRow, error)
	AbsenceHistory(ctx context.Context) ([]AbsenceRow, error)
	CountEmployees(ctx context.Context) (int64, error)
	CountPresent(ctx context.Context, date time.Time) (int64, error)
	EmployeeName(ctx context.Context, employeeID uuid.UUID) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// PunchInCounts returns the latest dates that have actual punch-ins, newest first.
func (r *repository) PunchInCounts(ctx context.Context, limit int) ([]DateCountRow, error) {
	var rows []DateCountRow
	err := r.db.WithContext(ctx).
		Table("attendance").
		Select("attendance_date, COUNT(*) AS total").
		Where("absent = ? AND time_in IS NOT NULL", false).
		Group("attendance_date").
		Order("attendance_date DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// RecordCounts counts every record per date, absences included, newest first.
func (r *repository) RecordCounts(ctx context.Context, limit int) ([]DateCountRow, error) {
	var rows []DateCountRow
	err := r.db.WithContext(ctx).
		Table("attendance").
		Select("attendance_date, COUNT(*) AS total").
		Group("attendance_date").
		Order("attendance_date DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EmployeeDayCounts(ctx context.Context, employeeID uuid.UUID, from time.Time) ([]DateCountRow, error) {
	var rows []DateCountRow
	err := r.db.WithContext(ctx).
		Table("attendance").
		Select("attendance_date, COUNT(*) AS total").
		Where("employee_id = ? AND attendance_date >= ?", employeeID, from).
		Group("attendance_date").
		Order("attendance_date ASC").
		Scan(&rows).Error
	return rows, err
}

const rosterColumns = "e.id AS employee_id, e.name, e.emp_code, a.attendance_date, " +
	"a.time_in, a.time_out, a.location_in, a.location_out, a.absent, a.reason"

func (r *repository) Roster(ctx context.Context, date time.Time) ([]RosterRow, error) {
	var rows []RosterRow
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select(rosterColumns).
		Joins("LEFT JOIN attendance a ON a.employee_id = e.id AND a.attendance_date = ?", date).
		Order("e.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) MonthlyRows(ctx context.Context, from, to time.Time) ([]RosterRow, error) {
	var rows []RosterRow
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select(rosterColumns).
		Joins("LEFT JOIN attendance a ON a.employee_id = e.id AND a.attendance_date BETWEEN ? AND ?", from, to).
		Order("e.name ASC, e.id ASC, a.attendance_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) AbsenceHistory(ctx context.Context) ([]AbsenceRow, error) {
	var rows []AbsenceRow
	err := r.db.WithContext(ctx).
		Table("attendance AS a").
		Select("e.name AS employee_name, a.attendance_date, a.reason").
		Joins("JOIN employees e ON e.id = a.employee_id").
		Where("a.absent = ?", true).
		Order("a.attendance_date DESC, e.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("employees").Count(&total).Error
	return total, err
}

// CountPresent counts distinct employees with a non-absent record on date.
func (r *repository) CountPresent(ctx context.Context, date time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Table("attendance").
		Where("attendance_date = ? AND absent = ?", date, false).
		Distinct("employee_id").
		Count(&total).Error
	return total, err
}

func (r *repository) EmployeeName(ctx context.Context, employeeID uuid.UUID) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("name").
		Where("id = ?", employeeID).
		Limit(1).
		Scan(&name).Error
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", gorm.ErrRecordNotFound
	}
	return name, nil
}
