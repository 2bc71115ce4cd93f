package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maint-agent/backend/internal/docstore"
	"github.com/maint-agent/backend/internal/models"
)

// QueryService answers one free-text question against the corpus.
type QueryService interface {
	Answer(ctx context.Context, question string) models.QueryResult
}

// AIStatus exposes the completion-service configuration for the status
// endpoint.
type AIStatus interface {
	Configured() bool
	Model() string
}

// Handler handles API requests.
type Handler struct {
	store   *docstore.Store
	query   QueryService
	ai      AIStatus
	version string
}

// NewHandler creates a new API handler.
func NewHandler(store *docstore.Store, query QueryService, ai AIStatus, version string) *Handler {
	return &Handler{
		store:   store,
		query:   query,
		ai:      ai,
		version: version,
	}
}

// HandleHealth returns server health status
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleStatus reports completion-service configuration and corpus size.
func (h *Handler) HandleStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ai_configured":   h.ai.Configured(),
		"documents_count": h.store.Count(),
		"model":           h.ai.Model(),
	})
}
