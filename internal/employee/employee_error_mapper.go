package employee

import (
	employeeerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/dberr"
)

const (
	constraintEmpCode = "uq_employees_emp_code"
	constraintPIN     = "uq_employees_pin"
)

func isPINViolation(err error) bool {
	return dberr.IsUniqueViolation(err, constraintPIN, "pin")
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if dberr.IsNotFound(err) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if dberr.IsUniqueViolation(err, constraintEmpCode, "emp_code") {
		return employeeerrors.ErrEmpCodeAlreadyExists
	}
	return err
}
