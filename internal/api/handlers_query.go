// handlers_query.go - Question answering endpoint
package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type queryRequest struct {
	Question string `json:"question"`
}

func (r *queryRequest) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return NewValidationError("question")
	}
	return nil
}

// HandleQuery answers a free-text question against the stored corpus.
// Degraded-mode answers (unconfigured or unreachable AI service) are
// still a 200 response; only a malformed request fails.
func (h *Handler) HandleQuery(c echo.Context) error {
	var req queryRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}

	if err := req.validate(); err != nil {
		return err
	}

	result := h.query.Answer(c.Request().Context(), req.Question)
	return c.JSON(http.StatusOK, result)
}
