package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Hebelub/train-booker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/xuri/excelize/v2"
)

// ExportSessions writes the full schedule as an XLSX attendance report,
// one row per session with occurrence-scoped counts.
func (h *Handler) ExportSessions(c *ginext.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := time.Now()

	f := excelize.NewFile()
	sheetName := "Sessions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "create sheet"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Next occurrence", "Instructor", "Location", "Capacity", "Attending", "Waiting", "Status"}
	for i, head := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, s := range sessions {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), s.Session.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), s.OccurrenceStartTime.Format("2006-01-02 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), s.Session.InstructorName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), s.Session.Location)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), s.Session.MaxAttendees)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), len(s.Attending()))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), len(s.Waiting()))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), string(s.Status(now)))
	}

	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "D", 20)
	f.SetColWidth(sheetName, "E", "G", 10)
	f.SetColWidth(sheetName, "H", "H", 10)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"sessions_%s.xlsx\"",
		now.Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		c.Set("error", err.Error())
	}
}
