package report

import (
	"context"
	"fmt"

	reporterrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/report/errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Attendance"

var exportHeader = []interface{}{
	"Employee ID", "Name", "Date", "Time In", "Time Out",
	"Location In", "Location Out", "Absent", "Reason",
}

// ExportMonthly renders the monthly report as an xlsx workbook and returns it with a file name.
func (s *service) ExportMonthly(ctx context.Context, month string) ([]byte, string, error) {
	report, err := s.MonthlyReport(ctx, month)
	if err != nil {
		return nil, "", err
	}

	data, err := buildMonthlyWorkbook(report)
	if err != nil {
		s.logger.Error("build monthly workbook failed", zap.String("month", report.Month), zap.Error(err))
		return nil, "", reporterrors.ErrExportFailed.WithCause(err)
	}

	name := fmt.Sprintf("attendance-%s.xlsx", report.From[:7])
	return data, name, nil
}

func buildMonthlyWorkbook(report MonthlyReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "I1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "A", "I", 18); err != nil {
		return nil, err
	}

	for i, r := range report.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.EmployeeID, r.Name, r.Date, r.TimeIn, r.TimeOut,
			r.LocationIn, r.LocationOut, r.Absent, r.Reason,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
