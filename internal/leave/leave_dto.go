package leave

// DefaultLeaveReason applies to quick leave without a reason.
const DefaultLeaveReason = "No reason given"

// ApplyLeaveRequest: Type is required; FromDate, ToDate and Reason are required
// for custom leave only. EmployeeID is taken from the token for employees.
type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type" binding:"required"`
	Reason     string `json:"reason"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
}

type LeaveResponse struct {
	ID           uint64 `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	LeaveType    string `json:"leave_type"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
	Reason       string `json:"reason"`
	DaysMarked   int    `json:"days_marked,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}
