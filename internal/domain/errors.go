package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNameRequired indicates the respondent name field was left blank.
	ErrNameRequired = errors.New("respondent name is required")

	// ErrWardRequired indicates no ward was selected or entered.
	ErrWardRequired = errors.New("ward is required (pick one from the map or enter it manually)")
)

// ExportError wraps a filesystem failure during rendering. It is fatal to
// the submission: no files are kept and nothing is mailed.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed writing %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// DeliveryError wraps a mail transport failure. The export has already
// succeeded by the time it can occur, so callers surface it as a warning
// and leave the files in place.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
