package handlers

import (
	"net/http"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportService *services.ReportService
	exportService *services.ExportService
	now           func() time.Time
}

func NewReportHandler(reportService *services.ReportService, exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{reportService: reportService, exportService: exportService, now: time.Now}
}

// ledger resolves the date range and loads the report rows, writing the error response on failure
func (h *ReportHandler) ledger(c *gin.Context) ([]models.ReportRow, time.Time, time.Time, bool) {
	start, end, err := dateRange(c, h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, start, end, false
	}
	rows, err := h.reportService.GenerateReport(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return nil, start, end, false
	}
	return rows, start, end, true
}

// @Summary Period Summary
// @Description Revenue, expenses and net profit for a date range (defaults to the current month)
// @Tags Reports
// @Produce json
// @Param start_date query string false "From (YYYY-MM-DD)"
// @Param end_date query string false "To (YYYY-MM-DD, inclusive)"
// @Success 200 {object} models.PeriodSummary
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	start, end, err := dateRange(c, h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := h.reportService.PeriodSummary(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// @Summary Ledger Report
// @Description One row per payment in the range, ordered by payment date
// @Tags Reports
// @Produce json
// @Param start_date query string false "From (YYYY-MM-DD)"
// @Param end_date query string false "To (YYYY-MM-DD, inclusive)"
// @Success 200 {array} models.ReportRow
// @Router /reports/ledger [get]
func (h *ReportHandler) Ledger(c *gin.Context) {
	rows, start, end, ok := h.ledger(c)
	if !ok {
		return
	}
	if rows == nil {
		rows = []models.ReportRow{}
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "start_date": start, "end_date": end})
}

// @Summary Ledger CSV
// @Tags Reports
// @Produce text/csv
// @Param start_date query string false "From (YYYY-MM-DD)"
// @Param end_date query string false "To (YYYY-MM-DD, inclusive)"
// @Success 200 {file} file "ledger.csv"
// @Router /reports/ledger_csv [get]
func (h *ReportHandler) LedgerCSV(c *gin.Context) {
	rows, start, end, ok := h.ledger(c)
	if !ok {
		return
	}
	buf, err := h.reportService.LedgerCSV(rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+exportName(start, end, "csv"))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// @Summary Ledger XLSX
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "From (YYYY-MM-DD)"
// @Param end_date query string false "To (YYYY-MM-DD, inclusive)"
// @Success 200 {file} file "ledger.xlsx"
// @Router /reports/ledger_xlsx [get]
func (h *ReportHandler) LedgerXLSX(c *gin.Context) {
	rows, start, end, ok := h.ledger(c)
	if !ok {
		return
	}
	data, filename, err := h.exportService.LedgerXLSX(rows, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// @Summary Ledger PDF
// @Tags Reports
// @Produce application/pdf
// @Param start_date query string false "From (YYYY-MM-DD)"
// @Param end_date query string false "To (YYYY-MM-DD, inclusive)"
// @Success 200 {file} file "ledger.pdf"
// @Router /reports/ledger_pdf [get]
func (h *ReportHandler) LedgerPDF(c *gin.Context) {
	rows, start, end, ok := h.ledger(c)
	if !ok {
		return
	}
	data, filename, err := h.exportService.LedgerPDF(rows, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Doctor Earnings
// @Description Per-doctor share totals for a date range
// @Tags Reports
// @Produce json
// @Param start_date query string false "From (YYYY-MM-DD)"
// @Param end_date query string false "To (YYYY-MM-DD, inclusive)"
// @Success 200 {array} models.DoctorEarning
// @Router /reports/doctor_earnings [get]
func (h *ReportHandler) DoctorEarnings(c *gin.Context) {
	start, end, err := dateRange(c, h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	earnings, err := h.reportService.DoctorEarnings(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	if earnings == nil {
		earnings = []models.DoctorEarning{}
	}
	c.JSON(http.StatusOK, gin.H{"doctors": earnings, "start_date": start, "end_date": end})
}

func exportName(start, end time.Time, ext string) string {
	return "ledger_" + start.Format(dateLayout) + "_" + end.Format(dateLayout) + "." + ext
}
