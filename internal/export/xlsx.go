package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/wardrisk/internal/domain"
)

const responsesSheet = "Responses"

// writeXLSX writes the same table as the CSV onto a "Responses" sheet.
func writeXLSX(path string, sub *domain.Submission) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(responsesSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(responsesSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range sub.Records {
		row := []any{
			sub.RespondentName,
			sub.Ward,
			sub.Email,
			metadataDate(sub.Date),
			r.Hazard,
			r.Question,
			r.Response,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(responsesSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
