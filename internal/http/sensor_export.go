package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"roomwatch/internal/domain"
)

// SensorExportHeader 导出表头
var SensorExportHeader = []string{
	"Sensor ID",
	"X",
	"Y",
	"Room ID",
	"Room Name",
	"Area Name",
	"Status",
	"Created At",
	"Updated At",
}

// Export streams the sensor inventory as an .xlsx workbook (admin only).
func (h *SensorHandler) Export(w http.ResponseWriter, r *http.Request, user *domain.User) {
	rows, err := h.sensors.ListSensors(r.Context())
	if err != nil {
		h.logger.Error("Failed to list sensors for export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	data, err := generateSensorExport(rows)
	if err != nil {
		h.logger.Error("Failed to generate sensor export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, FailServer(err))
		return
	}

	h.logger.Info("Sensor export generated",
		zap.Int("rows", len(rows)),
		zap.String("by", user.Username),
	)

	filename := fmt.Sprintf("sensors_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, _ = w.Write(data)
}

func generateSensorExport(rows []domain.SensorRow) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open; close only on the error paths

	sheetName := "Sensors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range SensorExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		values := []any{
			row.ID,
			row.X,
			row.Y,
			row.RoomID,
			row.RoomName,
			row.AreaName,
			row.Status,
			row.CreatedAt.Format(time.RFC3339),
			row.UpdatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "I", 18)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
