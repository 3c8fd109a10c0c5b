package workflow

import "encoding/json"

type ListWorkflowRequest struct {
	EmployeeID string `form:"employee_id"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type WorkflowResponse struct {
	ID         uint            `json:"id"`
	EmployeeID string          `json:"employee_id"`
	RequestID  *uint           `json:"request_id,omitempty"`
	Type       string          `json:"type"`
	Details    string          `json:"details"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
