package workflow

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TypeOnboarding      = "Onboarding"
	TypeTransfer        = "Transfer"
	TypeFieldUpdates    = "Field Updates"
	TypeEmployeeDeleted = "Employee Deleted"
	TypeGeneral         = "General"

	requestTypePrefix = "Request-"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// RequestType names the workflow entry written for a request event,
// e.g. RequestType("Leave") == "Request-Leave".
func RequestType(requestType string) string {
	return requestTypePrefix + requestType
}

// Workflow rows are append-only audit entries; only Status moves after
// creation. EmployeeID is deliberately not a foreign key so entries survive
// the employee they describe.
type Workflow struct {
	ID         uint           `gorm:"column:id;primaryKey"`
	EmployeeID string         `gorm:"column:employee_id;size:20;index;not null"`
	RequestID  *uint          `gorm:"column:request_id"`
	Type       string         `gorm:"column:type;size:50;not null"`
	Details    string         `gorm:"column:details;type:text;not null"`
	Changes    datatypes.JSON `gorm:"column:changes;type:jsonb"`
	Status     string         `gorm:"column:status;default:pending;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Workflow) TableName() string {
	return "workflows"
}
