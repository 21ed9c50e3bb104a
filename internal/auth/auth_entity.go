package auth

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username  string    `gorm:"column:username;type:varchar(100);not null;uniqueIndex:uq_admins_username"`
	Password  string    `gorm:"column:password;type:varchar(255);not null"`
	PIN       *string   `gorm:"column:pin;type:varchar(10);uniqueIndex:uq_admins_pin"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
