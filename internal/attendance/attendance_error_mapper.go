package attendance

import (
	"errors"

	attendanceerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance/errors"
	employeeerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/dberr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}
	if dberr.IsForeignKeyViolation(err) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}
