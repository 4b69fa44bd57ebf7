package export

import (
	"encoding/csv"
	"os"

	"github.com/alexanderramin/wardrisk/internal/domain"
)

var csvHeader = []string{"Name", "Ward", "Email", "Date", "Hazard", "Question", "Response"}

// writeCSV writes one row per response record with the respondent metadata
// prefixed as columns. Values go out verbatim, no coercion.
func writeCSV(path string, sub *domain.Submission) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return err
	}
	for _, r := range sub.Records {
		row := []string{
			sub.RespondentName,
			sub.Ward,
			sub.Email,
			metadataDate(sub.Date),
			r.Hazard,
			r.Question,
			r.Response,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
