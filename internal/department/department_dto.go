package department

type DepartmentResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	EmployeeCount int64  `json:"employee_count"`
}
