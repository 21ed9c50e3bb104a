package report_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/middleware"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/report"
	reporterrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/report/errors"
	reportMock "github.com/ab-rar-6024/Attendance-System-Mobile/internal/report/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(employeeID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextEmployeeID, employeeID)
		c.Next()
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestReportHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := reportMock.NewMockService(ctrl)
	r := setupRouter("")
	r.GET("/admin/reports/summary", report.NewHandler(svc).Summary)

	svc.EXPECT().Summary(gomock.Any()).Return(report.SummaryResponse{TotalEmployees: 4, Present: 3, Absent: 1}, nil)

	w := get(r, "/admin/reports/summary")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"present":3`)
	assert.Contains(t, w.Body.String(), `"absent":1`)
}

func TestReportHandler_Monthly(t *testing.T) {
	t.Run("passes month query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := reportMock.NewMockService(ctrl)
		r := setupRouter("")
		r.GET("/admin/reports/monthly", report.NewHandler(svc).Monthly)

		svc.EXPECT().MonthlyReport(gomock.Any(), "2024-02").Return(report.MonthlyReportResponse{Month: "February 2024"}, nil)

		w := get(r, "/admin/reports/monthly?month=2024-02")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "February 2024")
	})

	t.Run("bad month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := reportMock.NewMockService(ctrl)
		r := setupRouter("")
		r.GET("/admin/reports/monthly", report.NewHandler(svc).Monthly)

		svc.EXPECT().MonthlyReport(gomock.Any(), "feb").Return(report.MonthlyReportResponse{}, reporterrors.ErrInvalidMonth)

		w := get(r, "/admin/reports/monthly?month=feb")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "month must be YYYY-MM")
	})
}

func TestReportHandler_ExportMonthly(t *testing.T) {
	t.Run("streams workbook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := reportMock.NewMockService(ctrl)
		r := setupRouter("")
		r.GET("/admin/reports/monthly/export", report.NewHandler(svc).ExportMonthly)

		svc.EXPECT().ExportMonthly(gomock.Any(), "").Return([]byte("PK-data"), "attendance-2024-01.xlsx", nil)

		w := get(r, "/admin/reports/monthly/export")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="attendance-2024-01.xlsx"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK-data", w.Body.String())
	})

	t.Run("export failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := reportMock.NewMockService(ctrl)
		r := setupRouter("")
		r.GET("/admin/reports/monthly/export", report.NewHandler(svc).ExportMonthly)

		svc.EXPECT().ExportMonthly(gomock.Any(), "").Return(nil, "", reporterrors.ErrExportFailed.WithCause(errors.New("disk")))

		w := get(r, "/admin/reports/monthly/export")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to build report export")
	})
}

func TestReportHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := reportMock.NewMockService(ctrl)
	r := setupRouter("emp-1")
	r.GET("/attendance/history", report.NewHandler(svc).History)

	svc.EXPECT().History(gomock.Any(), "emp-1").Return(report.HistoryResponse{}, nil)

	w := get(r, "/attendance/history")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportHandler_EmployeeDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := reportMock.NewMockService(ctrl)
	r := setupRouter("emp-1")
	r.GET("/employee/dashboard", report.NewHandler(svc).EmployeeDashboard)

	reason := "wedding"
	svc.EXPECT().EmployeeDashboard(gomock.Any(), "emp-1").Return(report.EmployeeDashboardResponse{Name: "Asha", LeaveReason: &reason}, nil)

	w := get(r, "/employee/dashboard")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"leave_reason":"wedding"`)
}
