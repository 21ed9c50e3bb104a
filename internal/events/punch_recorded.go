package events

import "time"

const (
	PunchRecordedTopic = "attendance.punch.v1"
	PunchRecordedType  = "attendance.punch.recorded"
)

type PunchRecordedEvent struct {
	EventType      string    `json:"event_type"`
	EmployeeID     string    `json:"employee_id"`
	AttendanceDate string    `json:"attendance_date"`
	PunchType      string    `json:"punch_type"`
	Location       string    `json:"location"`
	AuthMethod     string    `json:"auth_method,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
