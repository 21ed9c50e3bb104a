package rbac

import "github.com/ab-rar-6024/Attendance-System-Mobile/internal/domain"

type Policy struct {
	Role     string
	Resource string
	Action   string
}

var DefaultPolicies = []Policy{
	{domain.RoleEmployee, "attendance", "punch"},
	{domain.RoleEmployee, "attendance", "absent"},
	{domain.RoleEmployee, "attendance", "read"},
	{domain.RoleEmployee, "leave", "apply"},
	{domain.RoleEmployee, "leave", "read"},
	{domain.RoleEmployee, "employee", "profile"},

	{domain.RoleAdmin, "attendance", "absent_any"},
	{domain.RoleAdmin, "report", "read"},
	{domain.RoleAdmin, "employee", "manage"},
	{domain.RoleAdmin, "leave", "apply"},
	{domain.RoleAdmin, "leave", "read"},
	{domain.RoleAdmin, "employee", "profile"},
}
