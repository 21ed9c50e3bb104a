package employee

type CreateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	EmpCode     string  `json:"emp_code" binding:"required"`
	Password    string  `json:"password" binding:"required,min=6"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
}

type EmployeeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	EmpCode string `json:"emp_code"`
}

// CreateEmployeeResponse is the only response that carries the quick PIN.
type CreateEmployeeResponse struct {
	EmployeeResponse
	PIN string `json:"pin"`
}

type ProfileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	EmpCode     string `json:"emp_code"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}
