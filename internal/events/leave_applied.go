package events

import "time"

const (
	LeaveAppliedTopic = "attendance.leave.v1"
	LeaveAppliedType  = "attendance.leave.applied"
)

type LeaveAppliedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    uint64    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	FromDate   string    `json:"from_date"`
	ToDate     string    `json:"to_date"`
	Reason     string    `json:"reason"`
	DaysMarked int       `json:"days_marked"`
	OccurredAt time.Time `json:"occurred_at"`
}
