package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"go.uber.org/zap"
)

// OCRConverter rasterizes a PDF and recognizes its text. It is consulted only
// when the text layer of a PDF yields nothing; deployments without an OCR
// toolchain leave it nil, in which case image-only PDFs extract to empty text.
type OCRConverter interface {
	Convert(path string) (string, error)
}

// Extractor reads raw text out of txt, docx and pdf documents.
type Extractor struct {
	ocr    OCRConverter
	logger *zap.Logger
}

// ExtractorOption customizes an Extractor.
type ExtractorOption func(*Extractor)

// WithOCR installs the OCR fallback used for image-only PDFs.
func WithOCR(ocr OCRConverter) ExtractorOption {
	return func(e *Extractor) { e.ocr = ocr }
}

func NewExtractor(logger *zap.Logger, opts ...ExtractorOption) *Extractor {
	e := &Extractor{logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the raw text of the document at path. The file must exist
// and carry a supported extension. Only file reads happen here; an empty
// result is returned as-is and judged by the caller.
func (e *Extractor) Extract(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("resume file not found: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading text file: %w", err)
		}
		return string(content), nil

	case ".docx":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("converting docx: %w", err)
		}
		return res.Body, nil

	case ".pdf":
		return e.extractPDF(path)

	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

func (e *Extractor) extractPDF(path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", fmt.Errorf("converting pdf: %w", err)
	}

	text := res.Body
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	if e.ocr == nil {
		e.logger.Warn("pdf has no extractable text layer and no OCR fallback is configured",
			zap.String("path", path),
		)
		return text, nil
	}

	e.logger.Warn("pdf has no extractable text layer, falling back to OCR",
		zap.String("path", path),
	)

	text, err = e.ocr.Convert(path)
	if err != nil {
		return "", fmt.Errorf("ocr fallback: %w", err)
	}

	return text, nil
}
