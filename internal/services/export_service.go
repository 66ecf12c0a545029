package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportService renders ledger reports as spreadsheets and printable PDFs
type ExportService struct {
	clinicName string
}

func NewExportService(clinicName string) *ExportService {
	return &ExportService{clinicName: clinicName}
}

// ledgerTotals sums the money columns of a report
func ledgerTotals(rows []models.ReportRow) (total, clinic, doctor decimal.Decimal) {
	for _, r := range rows {
		total = total.Add(r.TotalAmount)
		clinic = clinic.Add(r.ClinicShare)
		doctor = doctor.Add(r.DoctorShare)
	}
	return total, clinic, doctor
}

func exportFilename(prefix string, start, end time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", prefix, start.Format("2006-01-02"), end.Format("2006-01-02"), ext)
}

// LedgerXLSX writes the report rows to a single sheet with a totals line
func (s *ExportService) LedgerXLSX(rows []models.ReportRow, start, end time.Time) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Ledger"
	_ = f.SetSheetName("Sheet1", sheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	moneyFormat := "#,##0.00"
	moneyStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	dateFormat := "yyyy-mm-dd hh:mm"
	dateStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("%s - Ledger %s to %s", s.clinicName, start.Format("2006-01-02"), end.Format("2006-01-02")))
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	const headerRow = 3
	for i, col := range ReportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		_ = f.SetCellValue(sheet, cell, col)
	}
	_ = f.SetCellStyle(sheet, "A3", "E3", headerStyle)

	row := headerRow + 1
	for _, r := range rows {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.AppointmentID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.TotalAmount.InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.ClinicShare.InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.DoctorShare.InexactFloat64())
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.DatePaid)
		row++
	}

	total, clinic, doctor := ledgerTotals(rows)
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), total.InexactFloat64())
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), clinic.InexactFloat64())
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), doctor.InexactFloat64())
	_ = f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), headerStyle)

	_ = f.SetCellStyle(sheet, fmt.Sprintf("B%d", headerRow+1), fmt.Sprintf("D%d", row), moneyStyle)
	if len(rows) > 0 {
		_ = f.SetCellStyle(sheet, fmt.Sprintf("E%d", headerRow+1), fmt.Sprintf("E%d", row-1), dateStyle)
	}
	_ = f.SetColWidth(sheet, "A", "D", 16)
	_ = f.SetColWidth(sheet, "E", "E", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), exportFilename("ledger", start, end, "xlsx"), nil
}

// LedgerPDF draws the report as a paginated table. The header row repeats on every page.
func (s *ExportService) LedgerPDF(rows []models.ReportRow, start, end time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	widths := []float64{30, 35, 35, 35, 45}

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(224, 224, 224)
		for i, col := range ReportColumns {
			pdf.CellFormat(widths[i], 8, col, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s - Ledger Report", s.clinicName), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		drawHeader()
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	for _, r := range rows {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", r.AppointmentID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.TotalAmount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.ClinicShare.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.DoctorShare.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, r.DatePaid.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	total, clinic, doctor := ledgerTotals(rows)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(widths[0], 7, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[1], 7, total.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 7, clinic.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 7, doctor.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, "", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), exportFilename("ledger", start, end, "pdf"), nil
}
