package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Miraku17/PowerSystems-sub003/config"
	"github.com/Miraku17/PowerSystems-sub003/models"
)

// ExportMeasuringReportsToExcel exports the measuring report register to an
// Excel workbook, one row per non-deleted report.
func ExportMeasuringReportsToExcel(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Model(&models.MeasuringReport{}).Order("created_at DESC")
	if v := r.URL.Query().Get("customerName"); v != "" {
		query = query.Where("customer_name ILIKE ?", "%"+v+"%")
	}

	var reports []models.MeasuringReport
	if err := query.Find(&reports).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list reports: "+err.Error())
		return
	}

	file, err := createReportRegisterExcel(reports)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate Excel file")
		return
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to write Excel file")
		return
	}

	filename := fmt.Sprintf("measuring_reports_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func createReportRegisterExcel(reports []models.MeasuringReport) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := "Reports"
	file.SetSheetName("Sheet1", sheet)

	headers := []string{"Job Order No", "Customer", "Report Date", "Engine Model", "Engine Serial No", "Technician", "Created At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		file.SetCellValue(sheet, cell, header)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		file.SetCellStyle(sheet, "A1", "G1", headerStyle)
	}

	for i, report := range reports {
		row := i + 2
		values := []interface{}{
			report.JobOrderNo,
			report.CustomerName,
			time.Time(report.ReportDate).Format("2006-01-02"),
			report.EngineModel,
			report.EngineSerialNo,
			report.TechnicianName,
			report.CreatedAt.Format("2006-01-02 15:04"),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			file.SetCellValue(sheet, cell, value)
		}
	}

	return file, nil
}
