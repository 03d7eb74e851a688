package v1

import (
	"net/http"

	"pharmaplus-backend/internal/usecase"
)

type SitemapHandler struct {
	sitemapUC *usecase.SitemapUsecase
}

func NewSitemapHandler(uc *usecase.SitemapUsecase) *SitemapHandler {
	return &SitemapHandler{sitemapUC: uc}
}

// GET /sitemap.xml
func (h *SitemapHandler) GetSitemap(w http.ResponseWriter, r *http.Request) {
	body, err := h.sitemapUC.GetSitemapXML(r.Context())
	if err != nil {
		http.Error(w, "Failed to build sitemap", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=21600")
	w.Write(body)
}
