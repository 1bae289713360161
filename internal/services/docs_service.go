package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/oeangg/simago-backend/internal/domain"
	"github.com/oeangg/simago-backend/internal/domain/models"
	"github.com/oeangg/simago-backend/internal/repositories"
	"github.com/oeangg/simago-backend/internal/util"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF nota penerimaan & ringkasan survey.
type DocsService struct {
	MaterialInRepo repositories.MaterialInRepository
	SurveyRepo     repositories.SurveyRepository
	RequestID      string
}

func (s DocsService) GenerateReceivingNote(materialInID int64) ([]byte, string, error) {
	m, err := s.MaterialInRepo.GetByID(materialInID)
	if err != nil {
		return nil, "", err
	}
	util.LogEvent(s.RequestID, "docs", "generate_receiving_note", fmt.Sprintf("material_in_id=%d", materialInID))
	return buildReceivingNotePDF(m)
}

func (s DocsService) GenerateSurveySummary(surveyID int64) ([]byte, string, error) {
	sv, err := s.SurveyRepo.GetByID(surveyID)
	if err != nil {
		return nil, "", err
	}
	util.LogEvent(s.RequestID, "docs", "generate_survey_summary", fmt.Sprintf("survey_id=%d", surveyID))
	return buildSurveySummaryPDF(sv)
}

func buildReceivingNotePDF(m models.MaterialIn) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Nota Penerimaan Barang", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "NOTA PENERIMAAN BARANG")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	head := []string{
		fmt.Sprintf("No Transaksi : %s", safe(m.TransactionNo, "-")),
		fmt.Sprintf("Tanggal      : %s", safe(m.Date, "-")),
		fmt.Sprintf("Supplier     : %s", safe(m.SupplierName, "-")),
		fmt.Sprintf("Status Bayar : %s", safe(m.PaymentStatus, "-")),
		fmt.Sprintf("Dicetak      : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, line := range head {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian Barang:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, it := range m.Items {
		line := fmt.Sprintf("%d) %s  x%d @ %s = %s",
			i+1, safe(it.MaterialName, "-"), it.Quantity,
			util.FormatRupiah(it.UnitPrice), util.FormatRupiah(it.Total),
		)
		pdf.MultiCell(0, 6, line, "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Pajak       : "+util.FormatRupiah(m.Tax))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Biaya Lain  : "+util.FormatRupiah(m.OtherCosts))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Grand Total: "+util.FormatRupiah(m.GrandTotal))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Barang diterima dalam kondisi baik sesuai rincian di atas.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("NOTA_%s.pdf", safeFilenamePart(m.TransactionNo))
	return buf.Bytes(), filename, nil
}

func buildSurveySummaryPDF(sv models.Survey) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ringkasan Survey", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RINGKASAN SURVEY MUATAN")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	head := []string{
		fmt.Sprintf("No Survey : %s", safe(sv.SurveyNo, "-")),
		fmt.Sprintf("Tanggal   : %s", safe(sv.SurveyDate, "-")),
		fmt.Sprintf("Customer  : %s", safe(sv.CustomerName, "-")),
		fmt.Sprintf("Rute      : %s -> %s", safe(sv.Origin, "-"), safe(sv.Destination, "-")),
		fmt.Sprintf("Status    : %s", safe(sv.Status, "-")),
	}
	for _, line := range head {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian Muatan:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, it := range sv.CargoItems {
		line := fmt.Sprintf("%d) %s  x%d (%.0fx%.0fx%.0f cm) = %s m3",
			i+1, safe(it.Name, "-"), it.Quantity,
			it.WidthCm, it.LengthCm, it.HeightCm,
			domain.FormatCBM(it.CBM),
		)
		pdf.MultiCell(0, 6, line, "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total Volume: "+domain.FormatCBM(sv.TotalCBM)+" m3")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Volume dihitung dari dimensi barang saat survey dan dapat berbeda dengan hasil timbang akhir.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("SURVEY_%s.pdf", safeFilenamePart(sv.SurveyNo))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
