package export

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"

	"github.com/alexanderramin/wardrisk/internal/domain"
)

// recordLine is the shared one-line rendering used by the document formats.
func recordLine(r domain.ResponseRecord) string {
	return fmt.Sprintf("Hazard: %s | Question: %s | Response: %s", r.Hazard, r.Question, r.Response)
}

// writeDocx writes the titled rich-text document: heading, respondent
// metadata block, then one line per record.
func writeDocx(path string, sub *domain.Submission) error {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.AddText(fmt.Sprintf("Hazard Risk Assessment for %s", sub.Ward)).Size("36").Bold()

	doc.AddParagraph().AddText(fmt.Sprintf("Respondent: %s", sub.RespondentName))
	doc.AddParagraph().AddText(fmt.Sprintf("Ward: %s", sub.Ward))
	doc.AddParagraph().AddText(fmt.Sprintf("Email: %s", sub.Email))
	doc.AddParagraph().AddText(fmt.Sprintf("Date: %s", metadataDate(sub.Date)))

	doc.AddParagraph() // spacer before the response table

	for _, r := range sub.Records {
		doc.AddParagraph().AddText(recordLine(r))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
