package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EmployeeOnboarded   = "employee_onboarded"
	EmployeeUpdated     = "employee_updated"
	EmployeeTransferred = "employee_transferred"
	EmployeeDeleted     = "employee_deleted"
)

// EmployeeLifecycleEvent is published once per committed employee mutation.
// DepartmentIDs holds every department whose membership may have changed.
type EmployeeLifecycleEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	DepartmentIDs []uint    `json:"department_ids,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
