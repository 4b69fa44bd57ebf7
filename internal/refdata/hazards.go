// Package refdata loads the read-only survey reference inputs.
package refdata

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// HazardSheet is the workbook sheet carrying the hazard reference list.
const HazardSheet = "Hazard information"

// LoadHazards reads the ordered hazard name list from the assessment
// workbook: first column of the hazard sheet, one header row skipped,
// blanks dropped. Modern workbooks (.xlsx/.xlsm) and legacy .xls are both
// accepted, switched on extension.
func LoadHazards(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadHazardsXLSX(path)
	case ".xls":
		return loadHazardsXLS(path)
	default:
		return nil, fmt.Errorf("unsupported hazard workbook format %q", filepath.Ext(path))
	}
}

func loadHazardsXLSX(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening hazard workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(HazardSheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", HazardSheet, err)
	}
	return firstColumn(rows), nil
}

func loadHazardsXLS(path string) ([]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening hazard workbook: %w", err)
	}

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil || sheet.Name != HazardSheet {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			rows = append(rows, []string{row.Col(0)})
		}
		return firstColumn(rows), nil
	}
	return nil, fmt.Errorf("sheet %q not found in %s", HazardSheet, path)
}

// firstColumn extracts column A below the header row.
func firstColumn(rows [][]string) []string {
	var out []string
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}
