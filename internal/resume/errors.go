package resume

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument signals that extraction recovered no text. The workflow
// surfaces its message verbatim as the run failure reason.
var ErrEmptyDocument = errors.New("document not accessible or text extraction failed")

// UnsupportedFormatError is returned for file extensions outside txt/docx/pdf.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format: %s", e.Ext)
}
