package services

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

//go:embed templates/patient_statement.html
var patientStatementTemplate string

var statementTmpl = template.Must(template.New("patient_statement").Parse(patientStatementTemplate))

// StatementService renders a patient's statement of account as HTML and converts it to PDF
// with wkhtmltopdf, which must be installed on the host.
type StatementService struct {
	reports    *ReportService
	clinicName string
}

func NewStatementService(reports *ReportService, clinicName string) *StatementService {
	return &StatementService{reports: reports, clinicName: clinicName}
}

type statementLine struct {
	AppointmentID uint
	Date          string
	Treatment     string
	BaseCost      string
	Paid          string
	Due           string
}

type statementData struct {
	ClinicName string
	Date       string
	Patient    struct {
		Name    string
		Phone   string
		Address string
	}
	Lines    []statementLine
	TotalDue string
}

// RenderHTML builds the statement page for the patient
func (s *StatementService) RenderHTML(ctx context.Context, patientID uint) ([]byte, error) {
	statement, err := s.reports.PatientStatement(ctx, patientID)
	if err != nil {
		return nil, err
	}

	data := statementData{
		ClinicName: s.clinicName,
		Date:       statement.GeneratedAt.Format("02/01/2006"),
		TotalDue:   statement.TotalDue.StringFixed(2),
	}
	data.Patient.Name = statement.Patient.Name
	data.Patient.Phone = statement.Patient.Phone
	data.Patient.Address = statement.Patient.Address

	for _, l := range statement.Lines {
		data.Lines = append(data.Lines, statementLine{
			AppointmentID: l.AppointmentID,
			Date:          l.Date.Format("02/01/2006"),
			Treatment:     l.TreatmentName,
			BaseCost:      l.BaseCost.StringFixed(2),
			Paid:          l.Paid.StringFixed(2),
			Due:           l.Due.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := statementTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF returns the statement as a PDF document
func (s *StatementService) RenderPDF(ctx context.Context, patientID uint) (*bytes.Buffer, error) {
	html, err := s.RenderHTML(ctx, patientID)
	if err != nil {
		return nil, err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("%w: pdf generator unavailable: %w", ErrConfiguration, err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.Encoding.Set("utf-8")
	pdfg.AddPage(page)

	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}
	return pdfg.Buffer(), nil
}
