package report

// pdf.go — the PDF rendering of the report: the same sections as the text
// report, with a colored domain table. Core fonts only; text is transcoded
// to Windows-1252 for them.

import (
	"bytes"
	"fmt"
	"io"

	gofpdf "github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"resilience/internal/assess"
	"resilience/internal/model"
	"resilience/internal/risk"
)

var pdfBandColors = map[assess.Band][]int{
	assess.BandGreen:  {22, 163, 74},
	assess.BandYellow: {202, 138, 4},
	assess.BandRed:    {220, 38, 38},
}

var pdfPriorityColors = map[model.Priority][]int{
	model.PriorityHigh:   {220, 38, 38},
	model.PriorityMedium: {202, 138, 4},
	model.PriorityLow:    {100, 116, 139},
}

var pdfTierColors = map[risk.Tier][]int{
	risk.Low:    {22, 163, 74},
	risk.Medium: {202, 138, 4},
	risk.High:   {220, 38, 38},
}

// PDF renders the report as a PDF document.
func PDF(res model.Result, meta Meta) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, res, meta); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePDF writes the PDF report to w. Output is reproducible for a given
// result and Meta.
func WritePDF(w io.Writer, res model.Result, meta Meta) error {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	tr := func(s string) string {
		out, err := enc.String(s)
		if err != nil {
			return s
		}
		return out
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(meta.Generated.UTC())
	pdf.SetTitle("EU Digital Resilience Assessment Report", true)
	pdf.SetCreator("EU Digital Resilience Toolkit", true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title block.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 10, "EU Digital Resilience Assessment Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	for _, line := range []string{
		"Generated: " + meta.Timestamp(),
		"Sector: " + meta.Sector,
		"Regulatory Scope: " + meta.Scope,
	} {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Executive summary.
	pdfSection(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(60, 8, fmt.Sprintf("Total Risk Score: %d/%d", res.Total, model.MaxTotalScore), "", 0, "L", false, 0, "")
	c := pdfTierColors[res.Tier]
	if c == nil {
		c = []int{128, 128, 128}
	}
	pdf.SetTextColor(c[0], c[1], c[2])
	pdf.CellFormat(0, 8, "Risk Classification: "+string(res.Tier), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Domain table.
	sum := assess.Summarize(res)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(80, 7, "Domain", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Score", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Percent", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, d := range sum.Domains {
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(80, 7, d.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d/%d", d.Score, model.MaxDomainScore), "1", 0, "C", false, 0, "")
		bc := pdfBandColors[d.Band]
		pdf.SetTextColor(bc[0], bc[1], bc[2])
		pdf.CellFormat(30, 7, fmt.Sprintf("%d%%", d.Percent), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Regulatory gaps.
	pdfSection(pdf, "Regulatory Gaps Identified")
	for _, g := range res.Gaps {
		if len(g.Gaps) == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(30, 41, 59)
		pdf.CellFormat(0, 6, tr(g.Domain), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(60, 60, 60)
		for _, gap := range g.Gaps {
			pdf.MultiCell(0, 5, tr("- "+gap), "", "L", false)
		}
		pdf.Ln(2)
	}

	// Findings.
	pdfSection(pdf, fmt.Sprintf("Findings (%d items)", len(res.Findings)))
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(60, 60, 60)
	for i, f := range res.Findings {
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, f)), "", "L", false)
	}
	pdf.Ln(2)

	// Recommendations.
	pdfSection(pdf, fmt.Sprintf("Recommendations (%d items)", len(res.Recommendations)))
	for _, r := range assess.Prioritize(res.Recommendations, assess.ReportPriority) {
		pc := pdfPriorityColors[r.Priority]
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(pc[0], pc[1], pc[2])
		pdf.CellFormat(20, 5, "["+string(r.Priority)+"]", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(0, 5, tr(r.Text), "", "L", false)
	}
	pdf.Ln(2)

	// Disclaimer.
	pdfSection(pdf, "Disclaimer")
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 4, tr(disclaimer), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func pdfSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(30, 41, 59)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}
