package employee

import (
	"bytes"
	"encoding/json"
)

// Nullable distinguishes an absent JSON field (Set == false) from an
// explicit null (Set && !Valid), which clears the stored value.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Valid = false
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

func NullOf[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// CreateEmployeeRequest resolves the account by AccountID, or by Email when
// AccountID is absent. An empty EmployeeID asks for a generated one.
type CreateEmployeeRequest struct {
	EmployeeID   string  `json:"employee_id" binding:"omitempty,max=20"`
	AccountID    *uint   `json:"account_id" binding:"omitempty,gt=0"`
	Email        string  `json:"email" binding:"omitempty,email"`
	Position     *string `json:"position" binding:"omitempty,max=100"`
	DepartmentID *uint   `json:"department_id" binding:"omitempty,gt=0"`
	ManagerID    *string `json:"manager_id" binding:"omitempty,max=20"`
	HireDate     *string `json:"hire_date"`
	Status       string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateEmployeeRequest struct {
	AccountID    *uint            `json:"account_id" binding:"omitempty,gt=0"`
	Email        *string          `json:"email" binding:"omitempty,email"`
	Position     Nullable[string] `json:"position"`
	DepartmentID Nullable[uint]   `json:"department_id"`
	ManagerID    Nullable[string] `json:"manager_id"`
	HireDate     Nullable[string] `json:"hire_date"`
	Status       *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type EmployeeWorkflowResponse struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	Details   string `json:"details"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type EmployeeResponse struct {
	EmployeeID     string                     `json:"employee_id"`
	AccountID      uint                       `json:"account_id"`
	Email          string                     `json:"email,omitempty"`
	FullName       string                     `json:"full_name,omitempty"`
	Title          string                     `json:"title,omitempty"`
	Role           string                     `json:"role,omitempty"`
	Position       string                     `json:"position,omitempty"`
	DepartmentID   *uint                      `json:"department_id,omitempty"`
	DepartmentName string                     `json:"department_name,omitempty"`
	ManagerID      *string                    `json:"manager_id,omitempty"`
	HireDate       string                     `json:"hire_date,omitempty"`
	Status         string                     `json:"status"`
	CreatedAt      string                     `json:"created_at,omitempty"`
	UpdatedAt      string                     `json:"updated_at,omitempty"`
	Workflows      []EmployeeWorkflowResponse `json:"workflows,omitempty"`
}

type EmployeeOptionResponse struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
}

type NextIDResponse struct {
	EmployeeID string `json:"employee_id"`
}
