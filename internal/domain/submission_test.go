package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmission_Hazards_DistinctInOrder(t *testing.T) {
	sub := &Submission{
		Records: []ResponseRecord{
			{Hazard: "Flood", Question: "Occurrence history", Response: "4 - Annually"},
			{Hazard: "Flood", Question: "Frequency of occurrence", Response: "3 - Regular"},
			{Hazard: "Drought", Question: "Occurrence history", Response: "2 - Once in the last decade"},
		},
	}
	assert.Equal(t, []string{"Flood", "Drought"}, sub.Hazards())
}

func TestSession_SelectWard_LastWriteWins(t *testing.T) {
	s := &Session{}
	s.SelectWard("Ward3", true)
	s.SelectWard("Ward7", false)

	assert.Equal(t, "Ward7", s.Ward)
	assert.False(t, s.WardFromMap)
}

func TestSession_CompleteSubmission_ClearsForm(t *testing.T) {
	s := &Session{ShowForm: true}
	s.CompleteSubmission()
	assert.False(t, s.ShowForm)
}

func TestExportBundle_Attachments_ExcludesZip(t *testing.T) {
	b := &ExportBundle{
		CSVPath:  "a.csv",
		XLSXPath: "a.xlsx",
		DocxPath: "a.docx",
		PDFPath:  "a.pdf",
		ZipPath:  "a.zip",
	}
	assert.Equal(t, []string{"a.csv", "a.xlsx", "a.docx", "a.pdf"}, b.Attachments())
}

func TestValidationError_MessageNamesFields(t *testing.T) {
	err := &ValidationError{Missing: []string{"Flood / frequency"}}
	assert.Contains(t, err.Error(), "Flood / frequency")

	err = &ValidationError{Missing: []string{"a", "b", "c"}}
	assert.Contains(t, err.Error(), "3 answers missing")
}
