package refdata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeHazardWorkbook(t *testing.T, names ...string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(HazardSheet)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(HazardSheet, "A1", "Hazard"))
	for i, name := range names {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(HazardSheet, cell, name))
	}

	path := filepath.Join(t.TempDir(), "RiskAssessmentTool.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadHazards_FirstColumnSkipsHeader(t *testing.T) {
	path := writeHazardWorkbook(t, "Flood", "Drought", "Wildfire")

	hazards, err := LoadHazards(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Flood", "Drought", "Wildfire"}, hazards)
}

func TestLoadHazards_DropsBlankRows(t *testing.T) {
	path := writeHazardWorkbook(t, "Flood", "", "  ", "Storm surge")

	hazards, err := LoadHazards(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Flood", "Storm surge"}, hazards)
}

func TestLoadHazards_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := LoadHazards(path)
	assert.Error(t, err)
}

func TestLoadHazards_UnsupportedExtension(t *testing.T) {
	_, err := LoadHazards("hazards.csv")
	assert.ErrorContains(t, err, "unsupported hazard workbook format")
}

func TestLoadHazards_MissingFile(t *testing.T) {
	_, err := LoadHazards(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
