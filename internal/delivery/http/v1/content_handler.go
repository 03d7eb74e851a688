package v1

import (
	"errors"
	"net/http"

	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/usecase"
	"pharmaplus-backend/pkg/utils"
)

type ContentHandler struct {
	contentUC *usecase.ContentUsecase
}

func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{contentUC: uc}
}

// GET /api/v1/pages/{slug}
func (h *ContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		utils.WriteError(w, http.StatusBadRequest, "Page slug required")
		return
	}

	page, err := h.contentUC.GetPage(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrPageNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Page not found")
			return
		}
		utils.WriteError(w, http.StatusBadGateway, "Failed to fetch page")
		return
	}

	utils.WriteJSON(w, http.StatusOK, page)
}
