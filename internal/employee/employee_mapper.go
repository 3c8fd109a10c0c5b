package employee

import (
	"strings"
	"time"
)

const (
	dateLayout          = "2006-01-02"
	latestWorkflowLimit = 5
)

func mapToResponse(e Employee, workflowLimit int) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		AccountID:    e.AccountID,
		Position:     derefString(e.Position),
		DepartmentID: e.DepartmentID,
		ManagerID:    e.ManagerID,
		HireDate:     formatDate(e.HireDate),
		Status:       e.Status,
	}
	if !e.CreatedAt.IsZero() {
		resp.CreatedAt = e.CreatedAt.Format(time.RFC3339)
	}
	if !e.UpdatedAt.IsZero() {
		resp.UpdatedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	if e.Account != nil {
		resp.Email = e.Account.Email
		resp.FullName = strings.TrimSpace(e.Account.FirstName + " " + e.Account.LastName)
		resp.Title = e.Account.Title
		resp.Role = e.Account.Role
	}
	if e.Department != nil {
		resp.DepartmentName = e.Department.Name
	}

	workflows := e.Workflows
	if workflowLimit > 0 && len(workflows) > workflowLimit {
		workflows = workflows[:workflowLimit]
	}
	if len(workflows) > 0 {
		resp.Workflows = make([]EmployeeWorkflowResponse, len(workflows))
		for i, wf := range workflows {
			resp.Workflows[i] = EmployeeWorkflowResponse{
				ID:        wf.ID,
				Type:      wf.Type,
				Details:   wf.Details,
				Status:    wf.Status,
				CreatedAt: wf.CreatedAt.Format(time.RFC3339),
			}
		}
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e, latestWorkflowLimit)
	}
	return res
}

func mapToOptionResponse(employees []Employee) []EmployeeOptionResponse {
	res := make([]EmployeeOptionResponse, len(employees))
	for i, e := range employees {
		opt := EmployeeOptionResponse{EmployeeID: e.EmployeeID}
		if e.Account != nil {
			opt.FullName = strings.TrimSpace(e.Account.FirstName + " " + e.Account.LastName)
			opt.Email = e.Account.Email
		}
		res[i] = opt
	}
	return res
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// trimmedPtr returns nil for a nil or blank input.
func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalUintPtr(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalDate(a, b *time.Time) bool {
	return formatDate(a) == formatDate(b)
}
