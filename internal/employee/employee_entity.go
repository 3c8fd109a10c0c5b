package employee

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	EmployeeID   string     `gorm:"column:employee_id;primaryKey;size:20"`
	AccountID    uint       `gorm:"column:account_id;not null;uniqueIndex:uq_employees_account_id"`
	Position     *string    `gorm:"column:position;size:100"`
	DepartmentID *uint      `gorm:"column:department_id"`
	ManagerID    *string    `gorm:"column:manager_id;size:20"`
	HireDate     *time.Time `gorm:"column:hire_date;type:date"`
	Status       string     `gorm:"column:status;default:active;not null"`
	CreatedAt    time.Time  `gorm:"column:created;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated;autoUpdateTime"`

	Account    *EmployeeAccount    `gorm:"foreignKey:AccountID;references:ID"`
	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	Workflows  []EmployeeWorkflow  `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

func (Employee) TableName() string {
	return "employees"
}

type EmployeeAccount struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	Email     string `gorm:"column:email"`
	Title     string `gorm:"column:title"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Role      string `gorm:"column:role"`
}

func (EmployeeAccount) TableName() string {
	return "accounts"
}

type EmployeeDepartment struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:department_name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

type EmployeeWorkflow struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id"`
	Type       string    `gorm:"column:type"`
	Details    string    `gorm:"column:details"`
	Status     string    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (EmployeeWorkflow) TableName() string {
	return "workflows"
}
