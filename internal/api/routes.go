// routes.go - Route registration
package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	apiGroup := e.Group("/api")

	apiGroup.GET("/health", h.HandleHealth)
	apiGroup.GET("/status", h.HandleStatus)

	apiGroup.POST("/documents/upload", h.HandleUploadDocuments)
	apiGroup.GET("/documents", h.HandleListDocuments)
	apiGroup.GET("/documents/export", h.HandleExportDocuments)
	apiGroup.DELETE("/documents/:filename", h.HandleDeleteDocument)

	apiGroup.POST("/query", h.HandleQuery)
}
