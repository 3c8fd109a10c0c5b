package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hr-admin/internal/employee"
	employeeerrors "go-hr-admin/internal/employee/errors"
	employeeMock "go-hr-admin/internal/employee/mock"
	"go-hr-admin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error map[string]any  `json:"error"`
}

func setupHandler(t *testing.T) (*gin.Engine, *employeeMock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := employeeMock.NewMockService(gomock.NewController(t))
	h := employee.NewHandler(svc)

	r := gin.New()
	g := r.Group("/employees")
	g.GET("", h.GetAll)
	g.GET("/options", h.GetOptions)
	g.GET("/next-id", h.NextID)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r, svc
}

func doRequest(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().GetAll(gomock.Any()).Return([]employee.EmployeeResponse{
		{EmployeeID: "EMP003", FullName: "Lin Park", Email: "lin@corp.io"},
		{EmployeeID: "EMP001", FullName: "Ada King", Email: "ada@corp.io"},
		{EmployeeID: "EMP002", FullName: "Sam Lee", Email: "sam@corp.io"},
	}, nil)

	w, env := doRequest(r, http.MethodGet, "/employees?q=corp.io&sort_by=id&sort_dir=desc&page=1&page_size=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	var data []employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 2)
	assert.Equal(t, "EMP003", data[0].EmployeeID)
	assert.Equal(t, "EMP002", data[1].EmployeeID)
	assert.EqualValues(t, 3, env.Meta["total"])
	assert.EqualValues(t, 2, env.Meta["totalPages"])
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "jane@corp.io", req.Email)
				require.NotNil(t, req.DepartmentID)
				assert.Equal(t, uint(3), *req.DepartmentID)
				return employee.EmployeeResponse{EmployeeID: "EMP008", Status: employee.StatusActive}, nil
			})

		w, env := doRequest(r, http.MethodPost, "/employees", `{"email":"jane@corp.io","department_id":3}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Ok)
	})

	t.Run("binding failure", func(t *testing.T) {
		r, _ := setupHandler(t)

		w, env := doRequest(r, http.MethodPost, "/employees", `{"email":"not-an-email"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeInvalidInput, env.Error["code"])
	})

	t.Run("conflict from service", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(employee.EmployeeResponse{}, employeeerrors.ErrAccountAlreadyLinked)

		w, env := doRequest(r, http.MethodPost, "/employees", `{"account_id":7}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperror.CodeConflict, env.Error["code"])
	})

	t.Run("exhausted id generation is retryable", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(employee.EmployeeResponse{}, employeeerrors.ErrIDGenerationExhausted)

		w, _ := doRequest(r, http.MethodPost, "/employees", `{"account_id":7}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("explicit null differs from absent", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Update(gomock.Any(), "EMP002", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.True(t, req.DepartmentID.Set)
				assert.False(t, req.DepartmentID.Valid)
				assert.False(t, req.ManagerID.Set)
				assert.True(t, req.Position.Valid)
				assert.Equal(t, "Analyst", req.Position.Value)
				return employee.EmployeeResponse{EmployeeID: "EMP002"}, nil
			})

		w, _ := doRequest(r, http.MethodPut, "/employees/EMP002", `{"department_id":null,"position":"Analyst"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("self manager", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Update(gomock.Any(), "EMP002", gomock.Any()).
			Return(employee.EmployeeResponse{}, employeeerrors.ErrSelfManager)

		w, _ := doRequest(r, http.MethodPut, "/employees/EMP002", `{"manager_id":"EMP002"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_ReadsAndDelete(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().GetByID(gomock.Any(), "EMP404").Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

		w, env := doRequest(r, http.MethodGet, "/employees/EMP404", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Ok)
	})

	t.Run("next id", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().NextID(gomock.Any()).Return(employee.NextIDResponse{EmployeeID: "EMP008"}, nil)

		w, env := doRequest(r, http.MethodGet, "/employees/next-id", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"employee_id":"EMP008"}`, string(env.Data))
	})

	t.Run("options", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().GetOptions(gomock.Any()).Return([]employee.EmployeeOptionResponse{{EmployeeID: "EMP001"}}, nil)

		w, _ := doRequest(r, http.MethodGet, "/employees/options", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Delete(gomock.Any(), "EMP002").Return(nil)

		w, env := doRequest(r, http.MethodDelete, "/employees/EMP002", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted":true}`, string(env.Data))
	})
}
