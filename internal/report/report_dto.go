package report

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/attendance"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/leave"
)

// Placeholder shown for missing values in the monthly report.
const Missing = "—"

type DayCount struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type RosterEntry struct {
	EmployeeID  string  `json:"employee_id"`
	Name        string  `json:"name"`
	EmpCode     string  `json:"emp_code"`
	TimeIn      *string `json:"time_in"`
	TimeOut     *string `json:"time_out"`
	LocationIn  *string `json:"location_in"`
	LocationOut *string `json:"location_out"`
	Absent      bool    `json:"absent"`
	Reason      *string `json:"reason"`
}

type AbsenceEntry struct {
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	Reason       *string `json:"reason"`
}

type AdminDashboardResponse struct {
	Date         string                `json:"date"`
	Trend        []DayCount            `json:"trend"`
	Roster       []RosterEntry         `json:"roster"`
	Absences     []AbsenceEntry        `json:"absences"`
	RecentLeaves []leave.LeaveResponse `json:"recent_leaves"`
}

type SummaryResponse struct {
	Date           string     `json:"date"`
	TotalEmployees int64      `json:"total_employees"`
	Present        int64      `json:"present"`
	Absent         int64      `json:"absent"`
	Trend          []DayCount `json:"trend"`
}

type EmployeeDashboardResponse struct {
	EmployeeID  string     `json:"employee_id"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	TimeIn      *string    `json:"time_in"`
	TimeOut     *string    `json:"time_out"`
	Week        []DayCount `json:"week"`
	LeaveReason *string    `json:"leave_reason"`
}

type MonthlyRow struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	TimeIn      string `json:"time_in"`
	TimeOut     string `json:"time_out"`
	LocationIn  string `json:"location_in"`
	LocationOut string `json:"location_out"`
	Absent      string `json:"absent"`
	Reason      string `json:"reason"`
}

type MonthlyReportResponse struct {
	Month   string       `json:"month"`
	From    string       `json:"from"`
	To      string       `json:"to"`
	Records []MonthlyRow `json:"records"`
}

type HistoryResponse struct {
	Attendance []attendance.AttendanceResponse `json:"attendance"`
	Leave      []leave.LeaveResponse           `json:"leave"`
}
