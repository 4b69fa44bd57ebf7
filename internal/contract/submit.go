// Package contract defines the request/response types exchanged between the
// CLI layer and the services.
package contract

import (
	"github.com/alexanderramin/wardrisk/internal/domain"
)

// SubmitRequest carries one completed survey form.
type SubmitRequest struct {
	RespondentName string
	Ward           string
	Email          string
	Hazards        []string
	CustomHazard   string
	Answers        domain.AnswerSet
}

// SubmitResult reports a completed submission. DeliveryWarnings holds
// mail-transport failures, which do not fail the submission: the exported
// files remain on disk for manual follow-up.
type SubmitResult struct {
	SubmissionID     string
	RecordCount      int
	HazardCount      int
	Bundle           *domain.ExportBundle
	RespondentMailed bool
	AdminMailed      bool
	DeliveryWarnings []string
}
