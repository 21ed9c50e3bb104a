package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(150);not null"`
	EmpCode     string    `gorm:"column:emp_code;type:varchar(50);not null;uniqueIndex:uq_employees_emp_code"`
	Password    string    `gorm:"column:password;type:varchar(255);not null"`
	PIN         string    `gorm:"column:pin;type:varchar(10);not null;uniqueIndex:uq_employees_pin"`
	Email       *string   `gorm:"column:email;type:varchar(255)"`
	Phone       *string   `gorm:"column:phone;type:varchar(50)"`
	Department  *string   `gorm:"column:department;type:varchar(100)"`
	Designation *string   `gorm:"column:designation;type:varchar(100)"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
