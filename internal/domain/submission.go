package domain

import (
	"fmt"
	"strings"
	"time"
)

// ResponseRecord is one normalized answer row: a hazard, one catalog
// question, and the option label the respondent picked.
type ResponseRecord struct {
	Hazard   string
	Question string
	Response string
}

// AnswerKey addresses one answer within a submission-in-progress.
type AnswerKey struct {
	Hazard     string
	QuestionID string
}

// AnswerSet holds the collected answers before aggregation, keyed by
// (hazard, question ID).
type AnswerSet map[AnswerKey]string

// Submission is one completed survey. It is assembled at submit time and
// never mutated afterwards; once exported and mailed it lives on only as
// files on disk.
type Submission struct {
	ID             string
	RespondentName string
	Ward           string
	Email          string
	Date           time.Time
	Records        []ResponseRecord
}

// Hazards returns the distinct hazard names in record order.
func (s *Submission) Hazards() []string {
	seen := make(map[string]bool, 4)
	var out []string
	for _, r := range s.Records {
		if !seen[r.Hazard] {
			seen[r.Hazard] = true
			out = append(out, r.Hazard)
		}
	}
	return out
}

// ExportBundle is the set of files rendered for one submission. All paths
// share one base name and live in the same dated directory.
type ExportBundle struct {
	Base     string
	CSVPath  string
	XLSXPath string
	DocxPath string
	PDFPath  string
	ZipPath  string
}

// Attachments returns the files mailed with a submission, in the order they
// are listed in the delivery summary. The zip stays on disk only.
func (b *ExportBundle) Attachments() []string {
	return []string{b.CSVPath, b.XLSXPath, b.DocxPath, b.PDFPath}
}

// Session is the per-interaction state that survives sequential re-renders
// of the survey flow. A new ward resolution overwrites the previous one;
// completing a submission clears the form flag.
type Session struct {
	Ward        string
	WardFromMap bool
	ShowForm    bool
}

// SelectWard records a resolved ward, replacing any earlier selection.
func (s *Session) SelectWard(ward string, fromMap bool) {
	s.Ward = ward
	s.WardFromMap = fromMap
}

// CompleteSubmission resets the form state after a successful submit.
func (s *Session) CompleteSubmission() {
	s.ShowForm = false
}

// ValidationError reports answers or respondent fields missing at submit
// time. Nothing is written or mailed while one is outstanding.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 1 {
		return fmt.Sprintf("missing answer for %s", e.Missing[0])
	}
	return fmt.Sprintf("%d answers missing: %s", len(e.Missing), strings.Join(e.Missing, ", "))
}
