package v1

import (
	"encoding/json"
	"net/http"

	"pharmaplus-backend/internal/domain"
	"pharmaplus-backend/internal/usecase"
	"pharmaplus-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// GET /api/v1/products?page=1&perPage=20&search=&category=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Page:     utils.ParseInt(q.Get("page"), 1),
		PerPage:  utils.ParseInt(q.Get("perPage"), 20),
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}

	products, err := h.catalogUC.ListProducts(r.Context(), filter)
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, "Failed to fetch products")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"products": products,
		"page":     filter.Page,
		"perPage":  filter.PerPage,
	})
}

// GET /api/v1/products/{slug}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product slug required")
		return
	}

	product, err := h.catalogUC.GetProductBySlug(r.Context(), slug)
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, "Failed to fetch product")
		return
	}
	if product == nil {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, product)
}

// GET /api/v1/categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUC.GetCategories(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusBadGateway, "Failed to fetch categories")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"categories": categories,
	})
}
