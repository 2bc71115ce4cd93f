package extract

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/maint-agent/backend/internal/models"
)

func TestTextPlain(t *testing.T) {
	content, err := Text("manual.txt", []byte("Replace the bearing every 500 hours."), models.KindText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "Replace the bearing every 500 hours." {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestTextInvalidUTF8(t *testing.T) {
	_, err := Text("bad.txt", []byte{0xff, 0xfe, 0x41}, models.KindText)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T", err)
	}
	if decodeErr.Filename != "bad.txt" {
		t.Errorf("expected filename in error, got %s", decodeErr.Filename)
	}
}

func makePDF(t *testing.T, lines ...string) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		doc.AddPage()
		doc.Cell(40, 10, line)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("building test pdf: %v", err)
	}
	return buf.Bytes()
}

func TestTextPDF(t *testing.T) {
	raw := makePDF(t, "bearing replacement schedule")

	content, err := Text("manual.pdf", raw, models.KindPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, "bearing") {
		t.Errorf("expected extracted text to contain page content, got %q", content)
	}
	if content != strings.TrimSpace(content) {
		t.Errorf("extracted text must be trimmed")
	}
}

func TestTextPDFPageOrder(t *testing.T) {
	raw := makePDF(t, "alpha section", "omega section")

	content, err := Text("manual.pdf", raw, models.KindPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alphaAt := strings.Index(content, "alpha")
	omegaAt := strings.Index(content, "omega")
	if alphaAt == -1 || omegaAt == -1 {
		t.Fatalf("missing page content: %q", content)
	}
	if alphaAt > omegaAt {
		t.Errorf("pages extracted out of order")
	}
}

func TestTextMalformedPDF(t *testing.T) {
	_, err := Text("broken.pdf", []byte("%PDF-1.4 this is not a real pdf"), models.KindPDF)
	if err == nil {
		t.Fatalf("expected extraction error")
	}
	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Errorf("expected ExtractionError, got %T", err)
	}
}

func TestTextNotAPDFAtAll(t *testing.T) {
	_, err := Text("fake.pdf", []byte("plain text pretending"), models.KindPDF)
	if err == nil {
		t.Fatalf("expected extraction error")
	}
}
