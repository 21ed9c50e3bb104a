package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	PunchIn  = "in"
	PunchOut = "out"

	AuthMethodBiometric = "biometric"
)

// AttendanceRecord is one employee's ledger row for a calendar date. An absence
// row has no punch times; a presence row always has TimeIn.
type AttendanceRecord struct {
	ID             uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	TimeIn         *time.Time   `gorm:"column:time_in"`
	TimeOut        *time.Time   `gorm:"column:time_out"`
	LocationIn     *string      `gorm:"column:location_in;type:varchar(255)"`
	LocationOut    *string      `gorm:"column:location_out;type:varchar(255)"`
	Absent         bool         `gorm:"column:absent;not null;default:false"`
	Reason         *string      `gorm:"column:reason;type:text"`
	AuthMethod     *string      `gorm:"column:auth_method;type:varchar(30)"`
	CreatedAt      time.Time    `gorm:"column:created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (AttendanceRecord) TableName() string {
	return "attendance"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
