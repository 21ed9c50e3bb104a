package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecentLeave is a leave row joined with the employee name for dashboards.
type RecentLeave struct {
	LeaveRecord
	EmployeeName string `gorm:"column:employee_name"`
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRecord) error
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRecord, error)
	FindRecent(ctx context.Context, limit int) ([]RecentLeave, error)
	FindActiveOn(ctx context.Context, employeeID uuid.UUID, date time.Time) (*LeaveRecord, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRecord) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRecord, error) {
	var rows []LeaveRecord
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]RecentLeave, error) {
	var rows []RecentLeave
	err := r.conn(ctx).
		Table("leaves AS l").
		Select("l.*, e.name AS employee_name").
		Joins("JOIN employees e ON e.id = l.employee_id").
		Order("l.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// FindActiveOn returns a leave whose range covers date, or gorm.ErrRecordNotFound.
func (r *repository) FindActiveOn(ctx context.Context, employeeID uuid.UUID, date time.Time) (*LeaveRecord, error) {
	var l LeaveRecord
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("from_date <= ? AND to_date >= ?", date, date).
		Order("id DESC").
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}
