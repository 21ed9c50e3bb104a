package domain

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type EnforceRequest struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
