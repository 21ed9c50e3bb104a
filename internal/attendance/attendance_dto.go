package attendance

// GPSLocation is what the mobile app sends when the device has a fix.
type GPSLocation struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type PunchRequest struct {
	Type     string       `json:"type" binding:"required"`
	Location *GPSLocation `json:"location"`
	ClientIP string       `json:"-"`
}

type PinPunchRequest struct {
	PIN      string       `json:"pin" binding:"required"`
	Type     string       `json:"type" binding:"required"`
	Location *GPSLocation `json:"location"`
	ClientIP string       `json:"-"`
}

type BiometricPunchRequest struct {
	EmpCode  string `json:"emp_code" binding:"required"`
	Type     string `json:"type" binding:"required"`
	ClientIP string `json:"-"`
}

// MarkAbsentRequest has only optional fields; Date defaults to today.
type MarkAbsentRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

type PunchResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Time     string `json:"time"`
	Location string `json:"location"`
}

type TodayResponse struct {
	Date    string  `json:"date"`
	TimeIn  *string `json:"time_in"`
	TimeOut *string `json:"time_out"`
	Absent  bool    `json:"absent"`
	Reason  *string `json:"reason,omitempty"`
}

type AttendanceResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	TimeIn      *string `json:"time_in"`
	TimeOut     *string `json:"time_out"`
	LocationIn  *string `json:"location_in,omitempty"`
	LocationOut *string `json:"location_out,omitempty"`
	Absent      bool    `json:"absent"`
	Reason      *string `json:"reason"`
	AuthMethod  *string `json:"auth_method,omitempty"`
}
