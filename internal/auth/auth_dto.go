package auth

type LoginRequest struct {
	Role     string `json:"role" binding:"required,oneof=admin employee"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PINLoginRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

type AuthResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Name       string `json:"name"`
	EmpCode    string `json:"emp_code,omitempty"`
	Role       string `json:"role"`
}

type LoginResponse struct {
	User        AuthResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   int64        `json:"expires_at"`
}
