package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueEmployeeDate = "uq_attendance_employee_date"

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertAbsence(ctx context.Context, employeeID uuid.UUID, date time.Time, reason string) error
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*AttendanceRecord, error)
	InsertPunchIn(ctx context.Context, rec *AttendanceRecord) error
	SetPunchOut(ctx context.Context, id uuid.UUID, at time.Time, location string) error
	SetAuthMethod(ctx context.Context, id uuid.UUID, method string) error
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]AttendanceRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// UpsertAbsence marks the date absent, clearing any punch times already recorded.
func (r *repository) UpsertAbsence(ctx context.Context, employeeID uuid.UUID, date time.Time, reason string) error {
	now := time.Now().UTC()
	rec := AttendanceRecord{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: date,
		Absent:         true,
		Reason:         &reason,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "attendance_date"}},
			DoUpdates: append(
				clause.AssignmentColumns([]string{"absent", "reason", "updated_at"}),
				clause.Assignment{Column: clause.Column{Name: "time_in"}, Value: nil},
				clause.Assignment{Column: clause.Column{Name: "time_out"}, Value: nil},
			),
		}).
		Create(&rec).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) InsertPunchIn(ctx context.Context, rec *AttendanceRecord) error {
	err := r.conn(ctx).Create(rec).Error
	if dberr.IsUniqueViolation(err, uniqueEmployeeDate, "employee_id", "attendance_date") {
		return attendanceerrors.ErrAlreadyPunchedIn
	}
	return err
}

// SetPunchOut only touches a row that is punched in and not yet out.
func (r *repository) SetPunchOut(ctx context.Context, id uuid.UUID, at time.Time, location string) error {
	res := r.conn(ctx).
		Model(&AttendanceRecord{}).
		Where("id = ?", id).
		Where("time_in IS NOT NULL AND time_out IS NULL").
		Updates(map[string]any{
			"time_out":     at,
			"location_out": location,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return attendanceerrors.ErrNotPunchedInOrAlreadyOut
	}
	return nil
}

func (r *repository) SetAuthMethod(ctx context.Context, id uuid.UUID, method string) error {
	res := r.conn(ctx).
		Model(&AttendanceRecord{}).
		Where("id = ?", id).
		Update("auth_method", method)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}
