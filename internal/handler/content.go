package handler

import (
	"net/http"

	"github.com/devcell/portal/internal/service"
)

// ContentHandler handles public site content endpoints
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// Home handles GET /v1/content/home
func (h *ContentHandler) Home(w http.ResponseWriter, r *http.Request) {
	sections := h.contentService.HomeContent()

	WriteData(w, http.StatusOK, struct {
		Sections []service.CarouselSection `json:"sections"`
	}{Sections: sections}, map[string]string{
		"login": "/v1/auth/login",
	})
}
