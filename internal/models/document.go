package models

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DocumentKind identifies the source format of an uploaded document.
type DocumentKind string

const (
	KindText DocumentKind = "txt"
	KindPDF  DocumentKind = "pdf"
)

// KindForFilename maps a filename extension to a DocumentKind.
// The second return value is false for unsupported extensions.
func KindForFilename(name string) (DocumentKind, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return KindText, true
	case ".pdf":
		return KindPDF, true
	default:
		return "", false
	}
}

// Document is one uploaded manual or maintenance note, normalized to text.
// The filename doubles as the document identifier.
type Document struct {
	ID      string       `json:"filename" msgpack:"filename"`
	Content string       `json:"content" msgpack:"content"`
	Size    int          `json:"size" msgpack:"size"`
	Kind    DocumentKind `json:"kind" msgpack:"kind"`
}

// NewDocument builds a Document with Size derived from the content.
// Size is a character count, not a byte count.
func NewDocument(id, content string, kind DocumentKind) Document {
	return Document{
		ID:      id,
		Content: content,
		Size:    utf8.RuneCountInString(content),
		Kind:    kind,
	}
}

// DocumentInfo is the listing view of a stored document (no content).
type DocumentInfo struct {
	Filename string       `json:"filename"`
	Size     int          `json:"size"`
	Kind     DocumentKind `json:"kind"`
}

// Section is one displayable excerpt of a matched document.
type Section struct {
	Source  string `json:"source"`
	Excerpt string `json:"content"`
}

// QueryResult is the full response to one question.
type QueryResult struct {
	Answer     string    `json:"answer"`
	Sections   []Section `json:"relevant_sections"`
	Confidence float64   `json:"confidence"`
}
