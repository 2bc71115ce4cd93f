// handlers_documents.go - Document ingestion, listing, export and deletion
package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/maint-agent/backend/internal/extract"
	"github.com/maint-agent/backend/internal/models"
)

type processedDocument struct {
	Filename string              `json:"filename"`
	Size     int                 `json:"size"`
	Kind     models.DocumentKind `json:"kind"`
}

type uploadResponse struct {
	Message            string              `json:"message"`
	ProcessedDocuments []processedDocument `json:"processed_documents"`
}

// HandleUploadDocuments accepts one or more manuals via multipart
// form-data (repeated "files" field), extracts their text and stores
// them under their filename. A re-upload of an existing filename
// overwrites the stored document.
func (h *Handler) HandleUploadDocuments(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return NewBadRequestError("invalid multipart form", err)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return NewValidationError("files")
	}

	// Validate every extension before storing anything, so a rejected
	// batch leaves no partial state behind.
	for _, fh := range files {
		if _, ok := models.KindForFilename(fh.Filename); !ok {
			return NewUnsupportedFileError(fh.Filename)
		}
	}

	processed := make([]processedDocument, 0, len(files))
	for _, fh := range files {
		kind, _ := models.KindForFilename(fh.Filename)

		src, err := fh.Open()
		if err != nil {
			return NewInternalError("failed to open uploaded file", err)
		}
		raw, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return NewInternalError("failed to read uploaded file", err)
		}

		content, err := extract.Text(fh.Filename, raw, kind)
		if err != nil {
			var decodeErr *extract.DecodeError
			var extractErr *extract.ExtractionError
			switch {
			case errors.As(err, &decodeErr):
				return NewInternalError("failed to decode document", err)
			case errors.As(err, &extractErr):
				return NewInternalError("failed to extract document text", err)
			default:
				return NewInternalError("failed to process document", err)
			}
		}

		doc := h.store.Put(fh.Filename, content, kind)
		processed = append(processed, processedDocument{
			Filename: doc.ID,
			Size:     doc.Size,
			Kind:     doc.Kind,
		})
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Message:            "Documents processed successfully",
		ProcessedDocuments: processed,
	})
}

// HandleListDocuments returns metadata for every stored document.
func (h *Handler) HandleListDocuments(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"documents": h.store.List(),
	})
}

// HandleExportDocuments returns the full corpus snapshot in MessagePack
// format, content included.
func (h *Handler) HandleExportDocuments(c echo.Context) error {
	docs := h.store.Snapshot()

	data, err := msgpack.Marshal(map[string]interface{}{
		"documents": docs,
		"count":     len(docs),
	})
	if err != nil {
		return NewInternalError("failed to encode corpus snapshot", err)
	}

	return c.Blob(http.StatusOK, "application/msgpack", data)
}

// HandleDeleteDocument removes a document by filename.
func (h *Handler) HandleDeleteDocument(c echo.Context) error {
	filename := c.Param("filename")
	if filename == "" {
		return NewValidationError("filename")
	}

	if !h.store.Delete(filename) {
		return NewNotFoundError("document", filename)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Document " + filename + " deleted successfully",
	})
}
