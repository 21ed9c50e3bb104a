package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee"
	employeeerrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/errors"
	employeeMock "github.com/ab-rar-6024/Attendance-System-Mobile/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestEmployeeHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	r := setupRouter()
	r.POST("/admin/employees", h.Create)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
				assert.Equal(t, "Asha", req.Name)
				return employee.CreateEmployeeResponse{
					EmployeeResponse: employee.EmployeeResponse{ID: "id-1", Name: req.Name, EmpCode: req.EmpCode},
					PIN:              "4821",
				}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/employees",
			strings.NewReader(`{"name":"Asha","emp_code":"E001","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"pin":"4821"`)
	})

	t.Run("validation error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/employees", strings.NewReader(`{"name":"Asha"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(employee.CreateEmployeeResponse{}, employeeerrors.ErrEmpCodeAlreadyExists)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/employees",
			strings.NewReader(`{"name":"Asha","emp_code":"E001","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	r := setupRouter()
	r.GET("/admin/employees", h.Search)

	svc.EXPECT().Search(gomock.Any(), "as").Return([]employee.EmployeeResponse{
		{ID: "1", Name: "Asha"}, {ID: "2", Name: "Asif"}, {ID: "3", Name: "Basant"},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/employees?q=as&page=2&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Basant")
	assert.NotContains(t, w.Body.String(), "Asif")
	assert.Contains(t, w.Body.String(), `"total":3`)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	r := setupRouter()
	r.DELETE("/admin/employees/:id", h.Delete)

	svc.EXPECT().Delete(gomock.Any(), "missing").Return(employeeerrors.ErrEmployeeNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/employees/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_WhoAmI(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	r := setupRouter()
	r.GET("/mobile/whoami/:pin", h.WhoAmI)

	svc.EXPECT().LookupByPIN(gomock.Any(), "1234").Return(employee.EmployeeResponse{ID: "1", Name: "Asha", EmpCode: "E001"}, nil)
	svc.EXPECT().LookupByPIN(gomock.Any(), "12").Return(employee.EmployeeResponse{}, employeeerrors.ErrInvalidPIN)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mobile/whoami/1234", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Asha"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mobile/whoami/12", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad pin")
}

func TestEmployeeHandler_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	r := setupRouter()
	r.GET("/employees/profile/:code", h.Profile)

	svc.EXPECT().Profile(gomock.Any(), "E001").Return(employee.ProfileResponse{Name: "Asha", Email: "N/A"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/profile/E001", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"N/A"`)
}
