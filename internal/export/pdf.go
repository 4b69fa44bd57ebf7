package export

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/alexanderramin/wardrisk/internal/domain"
)

// writePDF writes the printable document: same content as the DOCX, fixed
// width body font, automatic page breaks. Text passes through a cp1252
// translator so characters outside the core fonts' encoding transliterate
// instead of aborting the export. The finished file is validated with
// pdfcpu before it is accepted.
func writePDF(path string, sub *domain.Submission) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Hazard Risk Assessment for %s", sub.Ward), true)
	pdf.AddPage()

	pdf.SetFont("Courier", "B", 14)
	pdf.MultiCell(0, 8, tr(fmt.Sprintf("Hazard Risk Assessment for %s", sub.Ward)), "", "L", false)

	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Respondent: %s", sub.RespondentName)), "", "L", false)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Ward: %s", sub.Ward)), "", "L", false)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Email: %s", sub.Email)), "", "L", false)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Date: %s", metadataDate(sub.Date))), "", "L", false)
	pdf.Ln(4)

	for _, r := range sub.Records {
		pdf.MultiCell(0, 5, tr(recordLine(r)), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return err
	}
	return api.ValidateFile(path, nil)
}
