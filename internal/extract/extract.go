// Package extract normalizes raw uploaded bytes into plain text.
package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/maint-agent/backend/internal/models"
)

// DecodeError reports a text upload that is not valid UTF-8.
type DecodeError struct {
	Filename string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: content is not valid UTF-8", e.Filename)
}

// ExtractionError reports a PDF that could not be parsed.
type ExtractionError struct {
	Filename string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting text from %s: %v", e.Filename, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// Text converts raw uploaded bytes into a normalized text string.
// A PDF with no text layer (scanned images) yields an empty string,
// which is a valid outcome rather than an error.
func Text(filename string, raw []byte, kind models.DocumentKind) (string, error) {
	switch kind {
	case models.KindPDF:
		return pdfText(filename, raw)
	default:
		if !utf8.Valid(raw) {
			return "", &DecodeError{Filename: filename}
		}
		return string(raw), nil
	}
}

func pdfText(filename string, raw []byte) (content string, err error) {
	// ledongthuc/pdf panics on some malformed inputs; treat that the
	// same as a parse error so a bad upload cannot take the server down.
	defer func() {
		if r := recover(); r != nil {
			content = ""
			err = &ExtractionError{Filename: filename, Cause: fmt.Errorf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", &ExtractionError{Filename: filename, Cause: err}
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Filename: filename, Cause: fmt.Errorf("page %d: %w", i, err)}
		}
		pages = append(pages, text)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
