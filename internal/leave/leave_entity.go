package leave

import (
	"time"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance"

	"github.com/google/uuid"
)

const (
	TypeQuick  = "quick"
	TypeCustom = "custom"
)

// LeaveRecord is append-only; ID order is application order.
type LeaveRecord struct {
	ID         uint64                  `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID uuid.UUID               `gorm:"column:employee_id;type:uuid;not null;index:idx_leaves_employee_dates,priority:1"`
	FromDate   time.Time               `gorm:"column:from_date;type:date;not null;index:idx_leaves_employee_dates,priority:2"`
	ToDate     time.Time               `gorm:"column:to_date;type:date;not null;index:idx_leaves_employee_dates,priority:3"`
	Reason     string                  `gorm:"column:reason;type:text;not null"`
	LeaveType  string                  `gorm:"column:leave_type;type:varchar(10);not null"`
	CreatedAt  time.Time               `gorm:"column:created_at"`
	Employee   *attendance.EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (LeaveRecord) TableName() string {
	return "leaves"
}
